// Package wasm binds the render bridge to a real browser.
//
// It is only built for GOOS=js GOARCH=wasm. [Host] wraps the global window
// and document; [Engine] wraps the global echarts object, which the page
// must load before the module runs.
//
//	h, err := render.New(render.WithTheme(chart.ThemeDark)).
//	    Render(ctx, wasm.Host(), wasm.Engine(), "chart", c)
package wasm
