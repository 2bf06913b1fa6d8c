package headless

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/matzehuels/chartkit/pkg/render"
)

// DefaultDataURL is the image returned by GetDataURL unless configured
// otherwise: a 1x1 transparent PNG.
const DefaultDataURL = "data:image/png;base64," +
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

// Call is one recorded engine call.
type Call struct {
	Instance int    // 1-based instance number; 0 for a failed init
	Name     string // init, setOption, resize, getDataURL, dispose
	Target   string // element identifier, set for init
	Theme    string // theme name, set for init
	Payload  string // document or JSON options; empty for a parameterless call
	Err      error  // injected failure, if any
}

func (c Call) String() string {
	s := fmt.Sprintf("#%d %s", c.Instance, c.Name)
	if c.Name == "init" {
		s += fmt.Sprintf(" target=%q theme=%q", c.Target, c.Theme)
	}
	if c.Payload != "" {
		s += " " + c.Payload
	}
	if c.Err != nil {
		s += " err=" + c.Err.Error()
	}
	return s
}

// EngineOption configures an [Engine].
type EngineOption func(*Engine)

// WithDataURL sets the data URL returned by GetDataURL.
func WithDataURL(url string) EngineOption { return func(e *Engine) { e.dataURL = url } }

// WithFailure makes every call with the given name fail with err.
func WithFailure(call string, err error) EngineOption {
	return func(e *Engine) { e.failures[call] = err }
}

// Engine records every call it receives. It is safe for concurrent use.
type Engine struct {
	mu        sync.Mutex
	dataURL   string
	failures  map[string]error
	calls     []Call
	instances int
	live      int
}

var _ render.Engine = (*Engine)(nil)

// NewEngine returns a recording engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{dataURL: DefaultDataURL, failures: make(map[string]error)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fail makes subsequent calls with the given name fail with err. A nil err
// clears the failure.
func (e *Engine) Fail(call string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err == nil {
		delete(e.failures, call)
		return
	}
	e.failures[call] = err
}

// Calls returns a copy of the recorded calls in order.
func (e *Engine) Calls() []Call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Call(nil), e.calls...)
}

// CallNames returns the names of the recorded calls in order.
func (e *Engine) CallNames() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	names := make([]string, len(e.calls))
	for i, c := range e.calls {
		names[i] = c.Name
	}
	return names
}

// Live returns the number of instances created and not yet disposed.
func (e *Engine) Live() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.live
}

// Init implements render.Engine.
func (e *Engine) Init(ctx context.Context, el render.Element, theme string, size render.SizeOptions) (render.Instance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	payload := ""
	if size.Explicit() {
		payload = mustJSON(size)
	}
	call := Call{Name: "init", Target: el.ID(), Theme: theme, Payload: payload}
	if err := e.failures["init"]; err != nil {
		call.Err = err
		e.calls = append(e.calls, call)
		return nil, err
	}
	e.instances++
	e.live++
	call.Instance = e.instances
	e.calls = append(e.calls, call)
	return &instance{engine: e, n: e.instances}, nil
}

func (e *Engine) record(n int, name, payload string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	err := e.failures[name]
	e.calls = append(e.calls, Call{Instance: n, Name: name, Payload: payload, Err: err})
	return err
}

type instance struct {
	engine *Engine
	n      int

	mu       sync.Mutex
	disposed bool
}

func (i *instance) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.disposed {
		return fmt.Errorf("instance #%d is disposed", i.n)
	}
	return nil
}

func (i *instance) SetOption(ctx context.Context, doc []byte) error {
	if err := i.check(ctx); err != nil {
		return err
	}
	return i.engine.record(i.n, "setOption", string(doc))
}

func (i *instance) Resize(ctx context.Context, opts *render.ResizeOptions) error {
	if err := i.check(ctx); err != nil {
		return err
	}
	payload := ""
	if opts != nil {
		payload = mustJSON(opts)
	}
	return i.engine.record(i.n, "resize", payload)
}

func (i *instance) GetDataURL(ctx context.Context, opts render.ImageOptions) (string, error) {
	if err := i.check(ctx); err != nil {
		return "", err
	}
	if err := i.engine.record(i.n, "getDataURL", mustJSON(opts)); err != nil {
		return "", err
	}
	i.engine.mu.Lock()
	defer i.engine.mu.Unlock()
	return i.engine.dataURL, nil
}

func (i *instance) Dispose(ctx context.Context) error {
	i.mu.Lock()
	if i.disposed {
		i.mu.Unlock()
		return fmt.Errorf("instance #%d is disposed", i.n)
	}
	i.disposed = true
	i.mu.Unlock()

	if err := i.engine.record(i.n, "dispose", ""); err != nil {
		return err
	}
	i.engine.mu.Lock()
	i.engine.live--
	i.engine.mu.Unlock()
	return nil
}

func mustJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(data)
}
