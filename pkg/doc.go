// Package pkg provides the core libraries for chartkit.
//
// # Overview
//
// chartkit builds chart configuration documents for a browser charting
// engine, mounts them on page elements and keeps them in sync. The pkg
// directory is organized into four main areas:
//
//  1. Builders - [element], [component], [series] and [chart] describe a
//     chart as typed optional-field records
//  2. Rendering - [render] drives the engine lifecycle; [render/sink],
//     [render/headless] and [render/wasm] are its output and host bindings
//  3. Orchestration - [chartfile] and [pipeline] turn definition files into
//     documents and artifacts; [preview] serves them to live pages
//  4. Support - [cache], [errors], [observability] and [buildinfo]
//
// # Architecture
//
// The typical data flow through chartkit:
//
//	chart definition (TOML, YAML, JSON)
//	         ↓
//	    [chartfile] package (decode + build)
//	         ↓
//	    [chart] package (Serialize)
//	         ↓
//	    [render/sink] JSON/HTML artifacts, or [render] handle on a live page
//
// # Quick Start
//
// Build a chart and attach it to an element:
//
//	import (
//	    "github.com/matzehuels/chartkit/pkg/chart"
//	    "github.com/matzehuels/chartkit/pkg/component"
//	    "github.com/matzehuels/chartkit/pkg/render"
//	    "github.com/matzehuels/chartkit/pkg/series"
//	)
//
//	c := chart.New().
//	    XAxis(component.NewAxis().Type(component.AxisCategory).Data("Mon", "Tue")).
//	    YAxis(component.NewAxis().Type(component.AxisValue)).
//	    Series(series.NewBar().Data(series.Values(120, 200)...))
//
//	h, err := render.New(render.WithTheme(chart.ThemeDark)).
//	    Render(ctx, host, engine, "chart", c)
//	if err != nil {
//	    return err
//	}
//	defer h.Dispose(ctx)
//
// # Main Packages
//
// ## Builders
//
// [element] - Leaf value types shared by every component: colors, text
// styles, axis labels, animation and the easing curves.
//
// [component] - Titles, tooltips, legends, grids, axes and free-form
// graphic elements.
//
// [series] - Bar, line, scatter and pie series and their data points.
//
// [chart] - The root configuration record, themes and [chart.Serialize].
//
// ## Rendering
//
// [render] - The render bridge. [render.Renderer] mounts documents on host
// elements and returns a [render.Handle] whose state machine runs from
// attached to disposed. Listeners registered through a handle are tracked
// by a [render.Registry] and cancelled on dispose.
//
//   - [render/sink]: Standalone JSON documents and HTML pages
//   - [render/headless]: In-memory host and recording engine for tests and dry runs
//   - [render/wasm]: Browser binding for GOOS=js builds
//
// ## Orchestration
//
// [chartfile] - Chart definitions in TOML, YAML or JSON, decoded strictly
// and built into a [chart.Chart].
//
// [pipeline] - Load, serialize and sink with artifact caching. Used by the
// CLI for build, serve and export.
//
// [preview] - HTTP and WebSocket server whose connected pages act as render
// hosts, so the bridge drives real browsers remotely.
//
// ## Support
//
// [cache] - File, Redis and null caches for artifacts and exported images.
//
// [errors] - Coded errors and input validation.
//
// [observability] - Hook interfaces for the pipeline, render bridge and
// preview server.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/render/...          # Specific package
//	go test -run Example ./pkg/chart  # Examples only
//
// [element]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/element
// [component]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/component
// [series]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/series
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chart
// [render]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render/sink
// [render/headless]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render/headless
// [render/wasm]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/render/wasm
// [chartfile]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/chartfile
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/pipeline
// [preview]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/preview
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/chartkit/pkg/buildinfo
package pkg
