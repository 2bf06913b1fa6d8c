package render

import "context"

// Engine creates rendering engine instances. It is the bridge's view of the
// global echarts object.
type Engine interface {
	// Init creates an instance drawing into el. theme is the engine theme
	// name (empty for the default theme); size carries an optional explicit
	// size, otherwise the engine sizes the instance from el's layout.
	Init(ctx context.Context, el Element, theme string, size SizeOptions) (Instance, error)
}

// Instance is one live engine instance.
type Instance interface {
	// SetOption replaces the instance configuration with doc.
	SetOption(ctx context.Context, doc []byte) error

	// Resize recomputes the layout. A nil opts asks for a plain refresh
	// against the element's current size.
	Resize(ctx context.Context, opts *ResizeOptions) error

	// GetDataURL renders the current state as an image data URL.
	GetDataURL(ctx context.Context, opts ImageOptions) (string, error)

	// Dispose releases the instance.
	Dispose(ctx context.Context) error
}
