// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about pipeline runs, render bridge calls, and preview
// sessions.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, so the library packages
// never import a backend.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    observability.SetPreviewHooks(&myPreviewHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	err := instance.SetOption(ctx, doc)
//	observability.Render().OnCall(ctx, handleID, "setOption", time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the build pipeline.
type PipelineHooks interface {
	// Load events
	OnLoadStart(ctx context.Context, path string)
	OnLoadComplete(ctx context.Context, path string, seriesCount int, duration time.Duration, err error)

	// Sink events
	OnSinkStart(ctx context.Context, formats []string)
	OnSinkComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from the render bridge.
type RenderHooks interface {
	// OnAttach records an attach attempt against a host element.
	OnAttach(ctx context.Context, target, theme string, duration time.Duration, err error)

	// OnCall records one engine call (setOption, resize, getDataURL, dispose)
	// issued through a handle.
	OnCall(ctx context.Context, handleID, call string, duration time.Duration, err error)

	// OnListener records a listener registration change; active is the
	// number of listeners the handle holds afterwards.
	OnListener(ctx context.Context, handleID, event string, active int)
}

// =============================================================================
// Preview Hooks
// =============================================================================

// PreviewHooks receives events from the live preview server.
type PreviewHooks interface {
	// OnConnect records a browser connection.
	OnConnect(ctx context.Context, sessionID string, elements int)

	// OnDisconnect records the end of a browser connection.
	OnDisconnect(ctx context.Context, sessionID string, err error)

	// OnRequest records a request/reply round trip with the browser.
	OnRequest(ctx context.Context, sessionID, kind string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string) {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnSinkStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnSinkComplete(context.Context, []string, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnAttach(context.Context, string, string, time.Duration, error) {}
func (NoopRenderHooks) OnCall(context.Context, string, string, time.Duration, error)   {}
func (NoopRenderHooks) OnListener(context.Context, string, string, int)                {}

// NoopPreviewHooks is a no-op implementation of PreviewHooks.
type NoopPreviewHooks struct{}

func (NoopPreviewHooks) OnConnect(context.Context, string, int)                          {}
func (NoopPreviewHooks) OnDisconnect(context.Context, string, error)                     {}
func (NoopPreviewHooks) OnRequest(context.Context, string, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	renderHooks   RenderHooks   = NoopRenderHooks{}
	previewHooks  PreviewHooks  = NoopPreviewHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline runs.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetRenderHooks registers custom render bridge hooks.
// This should be called once at application startup before any chart is attached.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetPreviewHooks registers custom preview hooks.
// This should be called once at application startup before the preview server starts.
func SetPreviewHooks(h PreviewHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		previewHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Render returns the registered render bridge hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Preview returns the registered preview hooks.
func Preview() PreviewHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return previewHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	renderHooks = NoopRenderHooks{}
	previewHooks = NoopPreviewHooks{}
}
