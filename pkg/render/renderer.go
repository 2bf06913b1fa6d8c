package render

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/observability"
)

// Option configures a [Renderer].
type Option func(*Renderer)

// WithTheme selects the engine theme. The default theme is used otherwise.
func WithTheme(t chart.Theme) Option { return func(r *Renderer) { r.theme = t } }

// WithSize sets an explicit instance size in pixels.
func WithSize(width, height uint32) Option {
	return func(r *Renderer) { r.size = SizeOptions{Width: &width, Height: &height} }
}

// WithSizeOptions sets the instance size, allowing a single dimension to be
// fixed while the other follows the element's layout.
func WithSizeOptions(s SizeOptions) Option { return func(r *Renderer) { r.size = s } }

// WithLogger sets the logger for attach and handle events. A nil logger
// selects log.Default().
func WithLogger(l *log.Logger) Option { return func(r *Renderer) { r.logger = l } }

// Renderer attaches chart documents to host elements. Its configuration is
// fixed at construction and it holds no per-chart state, so one Renderer can
// attach any number of charts.
type Renderer struct {
	theme  chart.Theme
	size   SizeOptions
	logger *log.Logger
}

// New returns a Renderer configured by opts.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Theme returns the configured theme.
func (r *Renderer) Theme() chart.Theme { return r.theme }

// Render serializes c and attaches it to the element with the given id.
func (r *Renderer) Render(ctx context.Context, host Host, engine Engine, id string, c chart.Chart) (*Handle, error) {
	doc, err := chart.Serialize(c)
	if err != nil {
		return nil, err
	}
	return r.Attach(ctx, host, engine, id, doc)
}

// Attach locates the element with the given id, creates an engine instance
// on it and pushes doc. On failure no handle is returned and any instance
// created along the way is disposed. A missing window, document or element
// is reported as a *HostLookupError.
func (r *Renderer) Attach(ctx context.Context, host Host, engine Engine, id string, doc []byte) (*Handle, error) {
	start := time.Now()
	h, err := r.attach(ctx, host, engine, id, doc)
	observability.Render().OnAttach(ctx, id, r.theme.Name(), time.Since(start), err)
	if err != nil {
		r.logger.Debug("attach failed", "target", id, "err", err)
		return nil, err
	}
	r.logger.Debug("attached", "target", id, "theme", r.theme, "handle", h.id)
	return h, nil
}

func (r *Renderer) attach(ctx context.Context, host Host, engine Engine, id string, doc []byte) (*Handle, error) {
	window, ok := host.Window()
	if !ok || window == nil {
		return nil, &HostLookupError{Target: LookupWindow}
	}
	document, ok := window.Document()
	if !ok || document == nil {
		return nil, &HostLookupError{Target: LookupDocument}
	}
	el, ok := document.ElementByID(id)
	if !ok || el == nil {
		return nil, &HostLookupError{Target: LookupElement, ID: id}
	}

	inst, err := engine.Init(ctx, el, r.theme.Name(), r.size)
	if err != nil {
		return nil, engineError("init", err)
	}
	if err := inst.SetOption(ctx, doc); err != nil {
		if derr := inst.Dispose(ctx); derr != nil {
			r.logger.Debug("dispose after failed attach", "target", id, "err", derr)
		}
		return nil, engineError("setOption", err)
	}

	h := &Handle{
		id:        uuid.NewString(),
		target:    id,
		window:    window,
		instance:  inst,
		listeners: NewRegistry(),
		logger:    r.logger,
		state:     StateAttached,
		doc:       bytes.Clone(doc),
	}
	if n, ok := el.(RemovalNotifier); ok {
		h.stopRemoval = n.OnRemove(h.disposeOnRemoval)
	}
	return h, nil
}
