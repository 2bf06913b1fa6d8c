package cli

import (
	"context"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/pipeline"
	"github.com/matzehuels/chartkit/pkg/render"
)

// liveChart is one chart attached to a connected page.
type liveChart struct {
	session  string
	handle   *render.Handle
	host     render.Host
	engine   render.Engine
	onResize render.Cancel
}

// previewer keeps every connected page in sync with the latest build.
type previewer struct {
	runner *pipeline.Runner
	logger *log.Logger
	status statusReporter

	mu      sync.Mutex
	current *pipeline.Result
	charts  map[string]*liveChart
}

func newPreviewer(runner *pipeline.Runner, result *pipeline.Result, logger *log.Logger, status statusReporter) *previewer {
	return &previewer{
		runner:  runner,
		logger:  logger,
		status:  status,
		current: result,
		charts:  make(map[string]*liveChart),
	}
}

// attach mounts the current build on a page and keeps it registered until
// done is closed. A resize listener refreshes the layout when the page
// window changes size.
func (p *previewer) attach(ctx context.Context, session string, host render.Host, engine render.Engine, done <-chan struct{}) error {
	p.mu.Lock()
	result := p.current
	p.mu.Unlock()

	lc, err := p.mount(ctx, session, host, engine, result)
	if err != nil {
		p.status.connected(session, err)
		return err
	}

	p.mu.Lock()
	p.charts[session] = lc
	n := len(p.charts)
	p.mu.Unlock()
	p.status.connected(session, nil)
	p.status.pages(n)

	go func() {
		<-done
		p.detach(session)
	}()
	return nil
}

func (p *previewer) mount(ctx context.Context, session string, host render.Host, engine render.Engine, result *pipeline.Result) (*liveChart, error) {
	h, err := p.runner.Attach(ctx, host, engine, result)
	if err != nil {
		return nil, err
	}
	cancel, err := h.OnResize()
	if err != nil {
		p.logger.Warn("resize listener unavailable", "session", session, "err", err)
		cancel = func() {}
	}
	return &liveChart{session: session, handle: h, host: host, engine: engine, onResize: cancel}, nil
}

// detach forgets a page. The handle has already been disposed by the
// element removal that ends a session; disposing again is a no-op.
func (p *previewer) detach(session string) {
	p.mu.Lock()
	lc, ok := p.charts[session]
	delete(p.charts, session)
	n := len(p.charts)
	p.mu.Unlock()
	if !ok {
		return
	}
	lc.onResize()
	if err := lc.handle.Dispose(context.Background()); err != nil {
		p.logger.Debug("dispose on disconnect", "session", session, "err", err)
	}
	p.status.disconnected(session)
	p.status.pages(n)
}

// reload pushes a new build to every page. A theme or size change needs a
// fresh engine instance, so those pages are remounted.
func (p *previewer) reload(ctx context.Context, result *pipeline.Result) int {
	p.mu.Lock()
	prev := p.current
	p.current = result
	charts := make([]*liveChart, 0, len(p.charts))
	for _, lc := range p.charts {
		charts = append(charts, lc)
	}
	p.mu.Unlock()
	sort.Slice(charts, func(i, j int) bool { return charts[i].session < charts[j].session })

	remount := needsRemount(prev, result)
	updated := 0
	for _, lc := range charts {
		var err error
		if remount {
			err = p.remount(ctx, lc, result)
		} else {
			err = lc.handle.UpdateDocument(ctx, result.Document)
		}
		if err != nil {
			p.logger.Warn("update page", "session", lc.session, "err", err)
			continue
		}
		updated++
	}
	return updated
}

func (p *previewer) remount(ctx context.Context, lc *liveChart, result *pipeline.Result) error {
	lc.onResize()
	if err := lc.handle.Dispose(ctx); err != nil {
		return err
	}
	fresh, err := p.mount(ctx, lc.session, lc.host, lc.engine, result)
	if err != nil {
		p.mu.Lock()
		delete(p.charts, lc.session)
		p.mu.Unlock()
		return err
	}
	p.mu.Lock()
	if _, ok := p.charts[lc.session]; ok {
		p.charts[lc.session] = fresh
	}
	p.mu.Unlock()
	return nil
}

// count returns the number of attached pages.
func (p *previewer) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.charts)
}

// close disposes every attached chart.
func (p *previewer) close(ctx context.Context) {
	p.mu.Lock()
	charts := p.charts
	p.charts = make(map[string]*liveChart)
	p.mu.Unlock()
	for _, lc := range charts {
		lc.onResize()
		if err := lc.handle.Dispose(ctx); err != nil {
			p.logger.Debug("dispose", "session", lc.session, "err", err)
		}
	}
}

func needsRemount(prev, next *pipeline.Result) bool {
	if prev == nil {
		return false
	}
	a, b := prev.Settings, next.Settings
	return a.Theme != b.Theme || !sameSize(a.Width, b.Width) || !sameSize(a.Height, b.Height)
}

func sameSize(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
