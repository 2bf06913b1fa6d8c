package preview

import (
	"context"
	"embed"
	"encoding/json"
	stderrors "errors"
	"html/template"
	"io/fs"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/render/sink"
)

//go:embed assets
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "assets/index.html"))

// DefaultRequestTimeout bounds each request to the page unless the caller's
// context carries its own deadline.
const DefaultRequestTimeout = 30 * time.Second

// helloTimeout bounds the wait for the page's hello message.
const helloTimeout = 10 * time.Second

// Option configures a [Server].
type Option func(*Server)

// WithLogger sets the server logger. A nil logger selects log.Default().
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithElementID sets the id of the chart element on the served page.
func WithElementID(id string) Option { return func(s *Server) { s.elementID = id } }

// WithTheme makes the page load the theme script for t.
func WithTheme(t chart.Theme) Option { return func(s *Server) { s.theme = t } }

// WithAssetsHost sets the base URL the echarts scripts are loaded from.
func WithAssetsHost(host string) Option { return func(s *Server) { s.assetsHost = host } }

// WithRequestTimeout bounds each request to the page. Zero disables the
// bound.
func WithRequestTimeout(d time.Duration) Option { return func(s *Server) { s.timeout = d } }

// WithOriginPatterns allows cross-origin websocket connections from the
// given host patterns.
func WithOriginPatterns(patterns ...string) Option {
	return func(s *Server) { s.originPatterns = patterns }
}

// Server serves the preview page and accepts its websocket connections.
type Server struct {
	logger         *log.Logger
	elementID      string
	theme          chart.Theme
	assetsHost     string
	timeout        time.Duration
	originPatterns []string

	router   chi.Router
	sessions chan *Session

	mu   sync.Mutex
	live map[string]*Session
}

// NewServer returns a server configured by opts.
func NewServer(opts ...Option) *Server {
	s := &Server{
		elementID:  "chart",
		assetsHost: sink.DefaultAssetsHost,
		timeout:    DefaultRequestTimeout,
		sessions:   make(chan *Session),
		live:       make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/", s.handlePage)
	r.Get("/healthz", s.handleHealth)
	r.Get("/ws", s.handleWebSocket)
	static, _ := fs.Sub(assets, "assets")
	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(static))))
	s.router = r
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.router }

// Sessions delivers each page once it has reported its elements. Sessions
// that end before they are received are not delivered.
func (s *Server) Sessions() <-chan *Session { return s.sessions }

// Live returns the number of connected pages.
func (s *Server) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}

// ListenAndServe serves on addr until ctx is cancelled, then closes every
// session and shuts the server down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if err := errors.ValidateListenAddr(addr); err != nil {
		return err
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is like ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	s.logger.Info("preview server listening", "addr", "http://"+ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.closeSessions()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) closeSessions() {
	s.mu.Lock()
	live := make([]*Session, 0, len(s.live))
	for _, sess := range s.live {
		live = append(live, sess)
	}
	s.mu.Unlock()
	for _, sess := range live {
		sess.Close()
	}
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data := struct {
		ElementID   string
		Theme       string
		AssetsHost  string
		ThemeScript string
	}{
		ElementID:  s.elementID,
		Theme:      s.theme.Name(),
		AssetsHost: s.assetsHost,
	}
	if !s.theme.Builtin() {
		data.ThemeScript = s.assetsHost + "/theme/" + s.theme.Name() + ".js"
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.logger.Error("render preview page", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"status": "ok", "sessions": s.Live()})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: s.originPatterns})
	if err != nil {
		s.logger.Debug("websocket accept", "err", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	helloCtx, cancel := context.WithTimeout(ctx, helloTimeout)
	var hello inbound
	err = wsjson.Read(helloCtx, conn, &hello)
	cancel()
	if err != nil || hello.Type != msgHello {
		s.logger.Warn("page did not say hello", "remote", r.RemoteAddr, "err", err)
		conn.Close(websocket.StatusPolicyViolation, "expected hello")
		return
	}

	sess := newSession(conn, hello.Elements, s.timeout, s.logger)
	s.mu.Lock()
	s.live[sess.id] = sess
	s.mu.Unlock()
	observability.Preview().OnConnect(ctx, sess.id, len(hello.Elements))
	s.logger.Info("page connected", "session", sess.id, "elements", hello.Elements)

	go func() {
		select {
		case s.sessions <- sess:
		case <-sess.done:
		}
	}()

	readErr := sess.readLoop(ctx)
	if status := websocket.CloseStatus(readErr); status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
		readErr = nil
	}
	sess.shutdown(readErr)

	s.mu.Lock()
	delete(s.live, sess.id)
	s.mu.Unlock()
	observability.Preview().OnDisconnect(ctx, sess.id, sess.Err())
	s.logger.Info("page disconnected", "session", sess.id)
}

// logRequests logs each HTTP request at debug level.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
