package preview

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/component"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/series"
)

// pageRequest is a server request as seen by the page.
type pageRequest struct {
	Type     string          `json:"type"`
	ID       string          `json:"id"`
	Instance string          `json:"instance"`
	Target   string          `json:"target"`
	Theme    *string         `json:"theme"`
	Width    *uint32         `json:"width"`
	Option   json.RawMessage `json:"option"`
	Options  json.RawMessage `json:"options"`
}

// fakePage plays the browser side of the protocol.
type fakePage struct {
	conn    *websocket.Conn
	dataURL string
	fail    map[string]string

	mu       sync.Mutex
	requests []pageRequest
}

func dialPage(t *testing.T, ts *httptest.Server, elements ...string) *fakePage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("websocket.Dial() error: %v", err)
	}
	if err := wsjson.Write(ctx, conn, map[string]any{"type": "hello", "elements": elements}); err != nil {
		t.Fatalf("write hello: %v", err)
	}
	p := &fakePage{conn: conn, dataURL: "data:image/png;base64,aGVsbG8=", fail: map[string]string{}}
	go p.serve()
	t.Cleanup(func() { conn.CloseNow() })
	return p
}

func (p *fakePage) serve() {
	ctx := context.Background()
	for {
		var req pageRequest
		if err := wsjson.Read(ctx, p.conn, &req); err != nil {
			return
		}
		p.mu.Lock()
		p.requests = append(p.requests, req)
		failure := p.fail[req.Type]
		p.mu.Unlock()

		reply := map[string]any{"type": "reply", "id": req.ID}
		switch {
		case failure != "":
			reply["error"] = failure
		case req.Type == "getDataURL":
			reply["data"] = p.dataURL
		}
		if err := wsjson.Write(ctx, p.conn, reply); err != nil {
			return
		}
	}
}

func (p *fakePage) sendEvent(t *testing.T, event string) {
	t.Helper()
	if err := wsjson.Write(context.Background(), p.conn, map[string]any{"type": "event", "event": event}); err != nil {
		t.Fatalf("write event: %v", err)
	}
}

func (p *fakePage) byType(typ string) []pageRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []pageRequest
	for _, r := range p.requests {
		if r.Type == typ {
			out = append(out, r)
		}
	}
	return out
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func newTestServer(t *testing.T, opts ...Option) (*Server, *httptest.Server) {
	t.Helper()
	opts = append([]Option{WithLogger(log.New(io.Discard))}, opts...)
	srv := NewServer(opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func nextSession(t *testing.T, srv *Server) *Session {
	t.Helper()
	select {
	case sess := <-srv.Sessions():
		return sess
	case <-time.After(5 * time.Second):
		t.Fatal("no session delivered")
		return nil
	}
}

func sampleChart() chart.Chart {
	return chart.New().
		XAxis(component.NewAxis().Type(component.AxisCategory).Data("a")).
		YAxis(component.NewAxis()).
		Series(series.NewBar().Data(series.Value(1)))
}

func TestSessionAttachUpdateExport(t *testing.T) {
	srv, ts := newTestServer(t)
	page := dialPage(t, ts, "chart")
	sess := nextSession(t, srv)
	ctx := context.Background()

	if got := sess.Elements(); len(got) != 1 || got[0] != "chart" {
		t.Errorf("Elements() = %v, want [chart]", got)
	}

	h, err := render.New(render.WithTheme(chart.ThemeDark), render.WithSize(300, 200)).
		Render(ctx, sess, sess, "chart", sampleChart())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	inits := page.byType("init")
	if len(inits) != 1 || inits[0].Target != "chart" || inits[0].Theme == nil || *inits[0].Theme != "dark" {
		t.Fatalf("init requests = %+v", inits)
	}
	if inits[0].Width == nil || *inits[0].Width != 300 {
		t.Errorf("init width = %v, want 300", inits[0].Width)
	}
	sets := page.byType("setOption")
	if len(sets) != 1 || string(sets[0].Option) != string(chart.MustSerialize(sampleChart())) {
		t.Fatalf("setOption requests = %+v", sets)
	}
	if sets[0].Instance != inits[0].Instance {
		t.Errorf("setOption instance = %q, want %q", sets[0].Instance, inits[0].Instance)
	}

	if err := h.Update(ctx, sampleChart().AnimationDuration(5)); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if n := len(page.byType("setOption")); n != 2 {
		t.Errorf("setOption requests = %d, want 2", n)
	}

	url, err := h.Export(ctx, render.ImageOptions{Type: render.ImageJPEG, PixelRatio: 2})
	if err != nil {
		t.Fatalf("Export() error: %v", err)
	}
	if url != page.dataURL {
		t.Errorf("Export() = %q, want %q", url, page.dataURL)
	}
	if got := page.byType("getDataURL"); len(got) != 1 || string(got[0].Options) != `{"type":"jpeg","pixelRatio":2}` {
		t.Errorf("getDataURL requests = %+v", got)
	}

	if err := h.Dispose(ctx); err != nil {
		t.Fatalf("Dispose() error: %v", err)
	}
	if n := len(page.byType("dispose")); n != 1 {
		t.Errorf("dispose requests = %d, want 1", n)
	}
}

func TestSessionMissingElement(t *testing.T) {
	srv, ts := newTestServer(t)
	dialPage(t, ts, "chart")
	sess := nextSession(t, srv)

	_, err := render.New().Attach(context.Background(), sess, sess, "missing-id", []byte(`{}`))
	if !errors.Is(err, errors.ErrCodeHostLookup) || !strings.Contains(err.Error(), "missing-id") {
		t.Errorf("Attach() error = %v, want host lookup error naming missing-id", err)
	}
}

func TestSessionPageError(t *testing.T) {
	srv, ts := newTestServer(t)
	page := dialPage(t, ts, "chart")
	page.mu.Lock()
	page.fail["setOption"] = "bad option"
	page.mu.Unlock()
	sess := nextSession(t, srv)

	_, err := render.New().Attach(context.Background(), sess, sess, "chart", []byte(`{}`))
	if !errors.Is(err, errors.ErrCodeEngine) || !strings.Contains(err.Error(), "bad option") {
		t.Errorf("Attach() error = %v, want engine error with page message", err)
	}
	waitFor(t, "dispose after failed attach", func() bool { return len(page.byType("dispose")) == 1 })
}

func TestSessionResizeEvent(t *testing.T) {
	srv, ts := newTestServer(t)
	page := dialPage(t, ts, "chart")
	sess := nextSession(t, srv)

	h, err := render.New().Render(context.Background(), sess, sess, "chart", sampleChart())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if _, err := h.OnResize(); err != nil {
		t.Fatalf("OnResize() error: %v", err)
	}

	page.sendEvent(t, "resize")
	waitFor(t, "resize request", func() bool { return len(page.byType("resize")) == 1 })
	if got := page.byType("resize")[0]; len(got.Options) != 0 {
		t.Errorf("resize options = %s, want none", got.Options)
	}
}

func TestSessionDisconnectDisposesHandles(t *testing.T) {
	srv, ts := newTestServer(t)
	page := dialPage(t, ts, "chart")
	sess := nextSession(t, srv)

	h, err := render.New().Render(context.Background(), sess, sess, "chart", sampleChart())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	page.conn.Close(websocket.StatusNormalClosure, "")

	select {
	case <-sess.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("session did not end")
	}
	waitFor(t, "handle disposal", func() bool { return h.State() == render.StateDisposed })
	if sess.Err() != nil {
		t.Errorf("Err() = %v, want nil after normal closure", sess.Err())
	}
	if _, ok := sess.Window(); ok {
		t.Error("Window() = true after disconnect")
	}
	waitFor(t, "live count", func() bool { return srv.Live() == 0 })
}

func TestSessionRequestTimeout(t *testing.T) {
	srv, ts := newTestServer(t, WithRequestTimeout(50*time.Millisecond))

	ctx := context.Background()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("websocket.Dial() error: %v", err)
	}
	defer conn.CloseNow()
	if err := wsjson.Write(ctx, conn, map[string]any{"type": "hello", "elements": []string{"chart"}}); err != nil {
		t.Fatalf("write hello: %v", err)
	}
	// Read requests without answering them.
	go func() {
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()
	sess := nextSession(t, srv)

	_, err = render.New().Attach(ctx, sess, sess, "chart", []byte(`{}`))
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("Attach() error = %v, want TIMEOUT", err)
	}
}

func TestPageAndHealth(t *testing.T) {
	_, ts := newTestServer(t, WithElementID("main"), WithTheme(chart.ThemeRoma), WithAssetsHost("https://cdn.example.com/e"))

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("GET / error: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	page := string(body)
	for _, want := range []string{
		`<div id="main" data-chart></div>`,
		`<script src="https://cdn.example.com/e/dist/echarts.min.js"></script>`,
		`<script src="https://cdn.example.com/e/theme/roma.js"></script>`,
		`<script src="/assets/client.js"></script>`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}

	resp, err = http.Get(ts.URL + "/assets/client.js")
	if err != nil {
		t.Fatalf("GET client.js error: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("GET client.js status = %d, want 200", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz error: %v", err)
	}
	defer resp.Body.Close()
	var health struct {
		Status   string `json:"status"`
		Sessions int    `json:"sessions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if health.Status != "ok" || health.Sessions != 0 {
		t.Errorf("health = %+v", health)
	}
}

func TestHandshakeRequiresHello(t *testing.T) {
	srv, ts := newTestServer(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("websocket.Dial() error: %v", err)
	}
	defer conn.CloseNow()
	wsjson.Write(ctx, conn, map[string]any{"type": "event", "event": "resize"})

	_, _, err = conn.Read(ctx)
	if websocket.CloseStatus(err) != websocket.StatusPolicyViolation {
		t.Errorf("close status = %v, want policy violation", websocket.CloseStatus(err))
	}
	if srv.Live() != 0 {
		t.Errorf("Live() = %d, want 0", srv.Live())
	}
}

func TestServeShutsDownOnCancel(t *testing.T) {
	srv := NewServer(WithLogger(log.New(io.Discard)))
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe(ctx, "127.0.0.1:0") }()
	time.Sleep(20 * time.Millisecond)
	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("ListenAndServe() error = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("ListenAndServe() did not return")
	}
}

func TestListenAndServeInvalidAddr(t *testing.T) {
	srv := NewServer(WithLogger(log.New(io.Discard)))
	if err := srv.ListenAndServe(context.Background(), "nope"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ListenAndServe() error = %v, want INVALID_INPUT", err)
	}
}
