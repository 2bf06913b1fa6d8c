// Package render bridges serialized chart documents to a live rendering
// engine.
//
// # Overview
//
// The package owns the lifecycle of one render target. It never draws
// anything itself: the engine (echarts in a browser, a remote preview
// session, or the recording engine in [headless]) does the drawing. The
// bridge locates the host element, creates the engine instance, pushes the
// document and keeps the instance in sync.
//
//	r := render.New(render.WithTheme(chart.ThemeDark), render.WithSize(800, 600))
//	h, err := r.Render(ctx, host, engine, "chart", c)
//	if err != nil {
//	    // *render.HostLookupError when the window, document or element is missing
//	}
//	defer h.Dispose(ctx)
//
//	cancel, _ := h.OnResize()  // refresh layout when the window resizes
//	defer cancel()
//
//	url, err := h.Export(ctx, render.ImageOptions{Type: render.ImagePNG, PixelRatio: 2})
//
// # Lifecycle
//
// A [Handle] moves through Attached, Updated and Disposed. Every document
// push resends the whole document; nothing is diffed. Update calls on one
// handle are applied in the order issued. Once disposed, every operation
// reports [ErrDisposed].
//
// # Listeners
//
// Host event callbacks registered through a handle stay registered until
// their [Cancel] is called or the handle is disposed, whichever comes first.
//
// # Hosts and Engines
//
// [Host] and [Engine] are the two external collaborators. Implementations
// live in [headless] (in-memory, for tests and dry runs), [wasm] (the
// browser, built with GOOS=js GOARCH=wasm) and the preview package (a
// browser driven over a websocket).
//
// [headless]: github.com/matzehuels/chartkit/pkg/render/headless
// [wasm]: github.com/matzehuels/chartkit/pkg/render/wasm
package render
