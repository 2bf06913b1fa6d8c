package render

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/observability"
)

// State is the lifecycle state of a [Handle].
type State int

// Handle states. Disposed is terminal.
const (
	StateUninitialized State = iota
	StateAttached
	StateUpdated
	StateDisposed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateAttached:
		return "attached"
	case StateUpdated:
		return "updated"
	case StateDisposed:
		return "disposed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Handle is a live render target returned by [Renderer.Attach]. Its methods
// may be called from any goroutine; calls are applied one at a time in the
// order they acquire the handle.
type Handle struct {
	id        string
	target    string
	window    Window
	instance  Instance
	listeners *Registry
	logger    *log.Logger

	mu          sync.Mutex
	state       State
	doc         []byte
	stopRemoval func()
}

// ID returns the handle's unique identifier.
func (h *Handle) ID() string { return h.id }

// Target returns the identifier of the element the handle is attached to.
func (h *Handle) Target() string { return h.target }

// State returns the current lifecycle state.
func (h *Handle) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Document returns a copy of the most recently pushed document.
func (h *Handle) Document() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return bytes.Clone(h.doc)
}

// Update serializes c and pushes it as the new document.
func (h *Handle) Update(ctx context.Context, c chart.Chart) error {
	doc, err := chart.Serialize(c)
	if err != nil {
		return err
	}
	return h.UpdateDocument(ctx, doc)
}

// UpdateDocument pushes doc, replacing the whole configuration.
func (h *Handle) UpdateDocument(ctx context.Context, doc []byte) error {
	return h.call(ctx, "setOption", func() error {
		if err := h.instance.SetOption(ctx, doc); err != nil {
			return err
		}
		h.state = StateUpdated
		h.doc = bytes.Clone(doc)
		return nil
	})
}

// Resize recomputes the layout. A nil opts refreshes against the element's
// current size; otherwise its width, height, silent flag and animation are
// forwarded to the engine.
func (h *Handle) Resize(ctx context.Context, opts *ResizeOptions) error {
	if opts != nil {
		o := *opts
		opts = &o
	}
	return h.call(ctx, "resize", func() error {
		return h.instance.Resize(ctx, opts)
	})
}

// Export renders the current state as an image and returns its data URL.
// Use [DecodeDataURL] to obtain the image bytes.
func (h *Handle) Export(ctx context.Context, opts ImageOptions) (string, error) {
	opts, err := opts.normalize()
	if err != nil {
		return "", err
	}
	var url string
	err = h.call(ctx, "getDataURL", func() error {
		var err error
		url, err = h.instance.GetDataURL(ctx, opts)
		return err
	})
	return url, err
}

// Listen registers fn for a host window event. The registration lives
// until the returned Cancel is called or the handle is disposed.
func (h *Handle) Listen(event string, fn func()) (Cancel, error) {
	h.mu.Lock()
	disposed := h.state == StateDisposed
	h.mu.Unlock()
	if disposed {
		return nil, ErrDisposed
	}

	cancel, err := h.listeners.Register(h.window, event, fn)
	if err != nil {
		return nil, err
	}
	observability.Render().OnListener(context.Background(), h.id, event, h.listeners.Len())
	return func() {
		cancel()
		observability.Render().OnListener(context.Background(), h.id, event, h.listeners.Len())
	}, nil
}

// OnResize refreshes the layout whenever the host window resizes.
func (h *Handle) OnResize() (Cancel, error) {
	return h.Listen("resize", func() {
		if err := h.Resize(context.Background(), nil); err != nil {
			h.logger.Debug("resize on window event", "handle", h.id, "err", err)
		}
	})
}

// Listeners returns the number of live listener registrations.
func (h *Handle) Listeners() int { return h.listeners.Len() }

// Dispose cancels every listener, releases the engine instance and moves
// the handle to Disposed. Disposing an already disposed handle is a no-op.
func (h *Handle) Dispose(ctx context.Context) error {
	h.mu.Lock()
	if h.state == StateDisposed {
		h.mu.Unlock()
		return nil
	}
	h.state = StateDisposed
	stop := h.stopRemoval
	h.stopRemoval = nil
	h.mu.Unlock()

	h.listeners.Close()
	if stop != nil {
		stop()
	}

	start := time.Now()
	err := h.instance.Dispose(ctx)
	observability.Render().OnCall(ctx, h.id, "dispose", time.Since(start), err)
	h.logger.Debug("disposed", "handle", h.id, "target", h.target)
	if err != nil {
		return engineError("dispose", err)
	}
	return nil
}

func (h *Handle) disposeOnRemoval() {
	if err := h.Dispose(context.Background()); err != nil {
		h.logger.Debug("dispose on element removal", "handle", h.id, "err", err)
	}
}

// call runs fn under the handle lock unless the handle is disposed.
func (h *Handle) call(ctx context.Context, name string, fn func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == StateDisposed {
		return ErrDisposed
	}
	start := time.Now()
	err := fn()
	observability.Render().OnCall(ctx, h.id, name, time.Since(start), err)
	if err != nil {
		return engineError(name, err)
	}
	return nil
}
