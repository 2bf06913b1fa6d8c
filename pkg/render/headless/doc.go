// Package headless provides an in-memory [render.Host] and a recording
// [render.Engine].
//
// Nothing is drawn. The host holds a set of element identifiers and
// delivers window events on demand through [Host.Dispatch]; the engine
// records every call it receives so tests and dry runs can inspect the
// exact documents and options the bridge sent.
//
//	host := headless.NewHost(headless.WithElements("chart"))
//	engine := headless.NewEngine()
//	h, _ := render.New().Render(ctx, host, engine, "chart", c)
//	for _, call := range engine.Calls() {
//	    fmt.Println(call)
//	}
package headless
