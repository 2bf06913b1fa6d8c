package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/observability"
)

// logHooks reports pipeline, render and preview events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PipelineHooks = logHooks{}
	_ observability.RenderHooks   = logHooks{}
	_ observability.PreviewHooks  = logHooks{}
)

func registerHooks(logger *log.Logger) {
	h := logHooks{logger: logger}
	observability.SetPipelineHooks(h)
	observability.SetRenderHooks(h)
	observability.SetPreviewHooks(h)
}

func (h logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("load start", "path", path)
}

func (h logHooks) OnLoadComplete(_ context.Context, path string, series int, d time.Duration, err error) {
	h.logger.Debug("load complete", "path", path, "series", series, "duration", d, "err", err)
}

func (h logHooks) OnSinkStart(_ context.Context, formats []string) {
	h.logger.Debug("sink start", "formats", formats)
}

func (h logHooks) OnSinkComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("sink complete", "formats", formats, "duration", d, "err", err)
}

func (h logHooks) OnAttach(_ context.Context, target, theme string, d time.Duration, err error) {
	h.logger.Debug("attach", "target", target, "theme", theme, "duration", d, "err", err)
}

func (h logHooks) OnCall(_ context.Context, handle, call string, d time.Duration, err error) {
	h.logger.Debug("engine call", "handle", handle, "call", call, "duration", d, "err", err)
}

func (h logHooks) OnListener(_ context.Context, handle, event string, active int) {
	h.logger.Debug("listener", "handle", handle, "event", event, "active", active)
}

func (h logHooks) OnConnect(_ context.Context, session string, elements int) {
	h.logger.Debug("page connected", "session", session, "elements", elements)
}

func (h logHooks) OnDisconnect(_ context.Context, session string, err error) {
	h.logger.Debug("page disconnected", "session", session, "err", err)
}

func (h logHooks) OnRequest(_ context.Context, session, kind string, d time.Duration, err error) {
	h.logger.Debug("page request", "session", session, "kind", kind, "duration", d, "err", err)
}
