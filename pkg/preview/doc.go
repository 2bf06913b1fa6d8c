// Package preview drives a browser as a remote rendering engine.
//
// A [Server] serves a small page that loads echarts and opens a websocket
// back to the server. Each connected page becomes a [Session], which
// implements both [render.Host] and [render.Engine]: element lookups are
// answered from the element ids the page reported, window events arrive as
// websocket messages, and every engine call is a request the page answers.
//
//	srv := preview.NewServer(preview.WithLogger(logger))
//	go srv.ListenAndServe(ctx, "127.0.0.1:8808")
//	for sess := range srv.Sessions() {
//	    h, err := render.New().Render(ctx, sess, sess, "chart", c)
//	    ...
//	}
//
// # Protocol
//
// Messages are JSON objects with a "type" key. The page sends hello (its
// element ids), event (a window event name) and reply (the answer to a
// request). The server sends init, setOption, resize, getDataURL and
// dispose requests; each carries a unique id that the reply echoes.
//
// Closing the connection counts as removing every element of the page, so
// handles attached through a session dispose themselves when it ends.
package preview
