package preview

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"

	"github.com/matzehuels/chartkit/pkg/observability"
	"github.com/matzehuels/chartkit/pkg/render"
)

// ErrSessionClosed is returned by requests on a session whose page has
// disconnected.
var ErrSessionClosed = stderrors.New("preview session closed")

// Session is one connected page. It implements render.Host and
// render.Engine and is safe for concurrent use.
type Session struct {
	id       string
	conn     *websocket.Conn
	logger   *log.Logger
	timeout  time.Duration
	elements []string

	writeMu sync.Mutex

	mu        sync.Mutex
	pending   map[string]chan inbound
	listeners map[string]map[uint64]func()
	onRemove  map[uint64]func()
	next      uint64
	closed    bool
	err       error
	done      chan struct{}
	events    chan []func()
}

var (
	_ render.Host   = (*Session)(nil)
	_ render.Engine = (*Session)(nil)
)

func newSession(conn *websocket.Conn, elements []string, timeout time.Duration, logger *log.Logger) *Session {
	s := &Session{
		id:        uuid.NewString(),
		conn:      conn,
		logger:    logger,
		timeout:   timeout,
		elements:  slices.Clone(elements),
		pending:   make(map[string]chan inbound),
		listeners: make(map[string]map[uint64]func()),
		onRemove:  make(map[uint64]func()),
		done:      make(chan struct{}),
		events:    make(chan []func(), 16),
	}
	go s.dispatchEvents()
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Elements returns the element ids the page reported.
func (s *Session) Elements() []string { return slices.Clone(s.elements) }

// Done is closed when the page disconnects.
func (s *Session) Done() <-chan struct{} { return s.done }

// Err returns the reason the session ended, or nil while it is live or
// after a normal closure.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close ends the session.
func (s *Session) Close() error {
	err := s.conn.Close(websocket.StatusNormalClosure, "")
	s.shutdown(nil)
	return err
}

// readLoop routes replies and events until the connection fails.
func (s *Session) readLoop(ctx context.Context) error {
	for {
		var msg inbound
		if err := wsjson.Read(ctx, s.conn, &msg); err != nil {
			return err
		}
		switch msg.Type {
		case msgReply:
			s.mu.Lock()
			ch, ok := s.pending[msg.ID]
			delete(s.pending, msg.ID)
			s.mu.Unlock()
			if ok {
				ch <- msg
			} else {
				s.logger.Debug("reply for unknown request", "session", s.id, "id", msg.ID)
			}
		case msgEvent:
			s.mu.Lock()
			fns := sortedByKey(s.listeners[msg.Event])
			s.mu.Unlock()
			if len(fns) > 0 {
				select {
				case s.events <- fns:
				default:
					s.logger.Warn("dropping event, listeners are busy", "session", s.id, "event", msg.Event)
				}
			}
		default:
			s.logger.Debug("ignoring message", "session", s.id, "type", msg.Type)
		}
	}
}

// dispatchEvents runs listener callbacks off the read loop, since callbacks
// usually issue requests whose replies the read loop must deliver.
func (s *Session) dispatchEvents() {
	for {
		select {
		case fns := <-s.events:
			for _, fn := range fns {
				fn()
			}
		case <-s.done:
			return
		}
	}
}

// shutdown marks the session closed, fails pending requests and notifies
// removal listeners. Only the first call has an effect.
func (s *Session) shutdown(err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.err = err
	s.pending = make(map[string]chan inbound)
	removals := sortedByKey(s.onRemove)
	s.onRemove = make(map[uint64]func())
	close(s.done)
	s.mu.Unlock()

	for _, fn := range removals {
		fn()
	}
}

// request sends req and waits for the matching reply.
func (s *Session) request(ctx context.Context, req request) (inbound, error) {
	if s.timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}
	}

	req.ID = uuid.NewString()
	ch := make(chan inbound, 1)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return inbound{}, ErrSessionClosed
	}
	s.pending[req.ID] = ch
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, req.ID)
		s.mu.Unlock()
	}()

	start := time.Now()
	reply, err := s.roundTrip(ctx, req, ch)
	observability.Preview().OnRequest(ctx, s.id, req.Type, time.Since(start), err)
	return reply, err
}

func (s *Session) roundTrip(ctx context.Context, req request, ch <-chan inbound) (inbound, error) {
	s.writeMu.Lock()
	err := wsjson.Write(ctx, s.conn, req)
	s.writeMu.Unlock()
	if err != nil {
		return inbound{}, fmt.Errorf("send %s: %w", req.Type, err)
	}

	select {
	case reply := <-ch:
		if reply.Error != "" {
			return reply, fmt.Errorf("%s: %s", req.Type, reply.Error)
		}
		return reply, nil
	case <-ctx.Done():
		return inbound{}, fmt.Errorf("%s: %w", req.Type, ctx.Err())
	case <-s.done:
		return inbound{}, ErrSessionClosed
	}
}

// =============================================================================
// render.Host
// =============================================================================

// Window implements render.Host. A disconnected session has no window.
func (s *Session) Window() (render.Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, false
	}
	return sessionWindow{s}, true
}

type sessionWindow struct{ s *Session }

func (w sessionWindow) Document() (render.Document, bool) { return sessionDocument{w.s}, true }

func (w sessionWindow) AddEventListener(event string, fn func()) (func(), error) {
	s := w.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrSessionClosed
	}
	id := s.next
	s.next++
	if s.listeners[event] == nil {
		s.listeners[event] = make(map[uint64]func())
	}
	s.listeners[event][id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners[event], id)
	}, nil
}

type sessionDocument struct{ s *Session }

func (d sessionDocument) ElementByID(id string) (render.Element, bool) {
	if !slices.Contains(d.s.elements, id) {
		return nil, false
	}
	return &sessionElement{s: d.s, id: id}, true
}

type sessionElement struct {
	s  *Session
	id string
}

func (e *sessionElement) ID() string { return e.id }

// OnRemove implements render.RemovalNotifier. Page elements disappear
// together when the connection ends.
func (e *sessionElement) OnRemove(fn func()) func() {
	s := e.s
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		go fn()
		return func() {}
	}
	id := s.next
	s.next++
	s.onRemove[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.onRemove, id)
	}
}

// =============================================================================
// render.Engine
// =============================================================================

// Init implements render.Engine.
func (s *Session) Init(ctx context.Context, el render.Element, theme string, size render.SizeOptions) (render.Instance, error) {
	inst := &remoteInstance{s: s, id: uuid.NewString()}
	_, err := s.request(ctx, request{
		Type:     reqInit,
		Instance: inst.id,
		Target:   el.ID(),
		Theme:    &theme,
		Width:    size.Width,
		Height:   size.Height,
	})
	if err != nil {
		return nil, err
	}
	return inst, nil
}

type remoteInstance struct {
	s  *Session
	id string
}

func (i *remoteInstance) SetOption(ctx context.Context, doc []byte) error {
	if !json.Valid(doc) {
		return fmt.Errorf("setOption: document is not valid JSON")
	}
	_, err := i.s.request(ctx, request{Type: reqSetOption, Instance: i.id, Option: json.RawMessage(doc)})
	return err
}

func (i *remoteInstance) Resize(ctx context.Context, opts *render.ResizeOptions) error {
	req := request{Type: reqResize, Instance: i.id}
	if opts != nil {
		req.Options = opts
	}
	_, err := i.s.request(ctx, req)
	return err
}

func (i *remoteInstance) GetDataURL(ctx context.Context, opts render.ImageOptions) (string, error) {
	reply, err := i.s.request(ctx, request{Type: reqGetDataURL, Instance: i.id, Options: opts})
	if err != nil {
		return "", err
	}
	return reply.Data, nil
}

func (i *remoteInstance) Dispose(ctx context.Context) error {
	_, err := i.s.request(ctx, request{Type: reqDispose, Instance: i.id})
	if stderrors.Is(err, ErrSessionClosed) {
		// The page is gone and took the instance with it.
		return nil
	}
	return err
}

// sortedByKey returns the map values ordered by key.
func sortedByKey(m map[uint64]func()) []func() {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	out := make([]func(), len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}
