package render

// Host is the environment a chart is attached in. It corresponds to the
// browser's global scope.
type Host interface {
	// Window returns the host window, or false when none exists.
	Window() (Window, bool)
}

// Window delivers host-level events and exposes the document.
type Window interface {
	// Document returns the window's document, or false when none exists.
	Document() (Document, bool)

	// AddEventListener registers fn for the named event. The returned
	// function removes the registration; calling it more than once is
	// allowed.
	AddEventListener(event string, fn func()) (remove func(), err error)
}

// Document looks up elements by identifier.
type Document interface {
	ElementByID(id string) (Element, bool)
}

// Element is a host element a chart can be attached to.
type Element interface {
	ID() string
}

// RemovalNotifier is implemented by elements that report their removal
// from the document. A handle attached to such an element disposes itself
// when the element goes away.
type RemovalNotifier interface {
	// OnRemove registers fn to run once when the element is removed. The
	// returned function unregisters it.
	OnRemove(fn func()) (cancel func())
}
