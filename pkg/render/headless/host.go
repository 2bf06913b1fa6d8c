package headless

import (
	"sort"
	"sync"

	"github.com/matzehuels/chartkit/pkg/render"
)

// Option configures a [Host].
type Option func(*Host)

// WithoutWindow makes the host report no window.
func WithoutWindow() Option { return func(h *Host) { h.noWindow = true } }

// WithoutDocument makes the host window report no document.
func WithoutDocument() Option { return func(h *Host) { h.noDocument = true } }

// WithElements adds elements with the given identifiers.
func WithElements(ids ...string) Option {
	return func(h *Host) {
		for _, id := range ids {
			h.elements[id] = newElement(id)
		}
	}
}

// Host is an in-memory host environment. It is safe for concurrent use.
type Host struct {
	noWindow   bool
	noDocument bool

	mu        sync.Mutex
	elements  map[string]*Element
	listeners map[string]map[uint64]func()
	next      uint64
}

var _ render.Host = (*Host)(nil)

// NewHost returns a host with a window and a document and the elements
// named by the options.
func NewHost(opts ...Option) *Host {
	h := &Host{
		elements:  make(map[string]*Element),
		listeners: make(map[string]map[uint64]func()),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Window implements render.Host.
func (h *Host) Window() (render.Window, bool) {
	if h.noWindow {
		return nil, false
	}
	return window{h}, true
}

// AddElement adds an element, replacing any element with the same id.
func (h *Host) AddElement(id string) *Element {
	el := newElement(id)
	h.mu.Lock()
	h.elements[id] = el
	h.mu.Unlock()
	return el
}

// RemoveElement removes an element and notifies its removal listeners.
// It reports whether the element existed.
func (h *Host) RemoveElement(id string) bool {
	h.mu.Lock()
	el, ok := h.elements[id]
	delete(h.elements, id)
	h.mu.Unlock()
	if ok {
		el.removed()
	}
	return ok
}

// Elements returns the identifiers of all elements, sorted.
func (h *Host) Elements() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	ids := make([]string, 0, len(h.elements))
	for id := range h.elements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dispatch invokes every listener registered for event and returns how many
// ran. Listeners run on the calling goroutine, in registration order.
func (h *Host) Dispatch(event string) int {
	h.mu.Lock()
	ids := make([]uint64, 0, len(h.listeners[event]))
	for id := range h.listeners[event] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fns := make([]func(), len(ids))
	for i, id := range ids {
		fns[i] = h.listeners[event][id]
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// ListenerCount returns the number of listeners registered for event.
func (h *Host) ListenerCount(event string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners[event])
}

func (h *Host) addListener(event string, fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	if h.listeners[event] == nil {
		h.listeners[event] = make(map[uint64]func())
	}
	h.listeners[event][id] = fn
	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.listeners[event], id)
	}
}

type window struct{ h *Host }

func (w window) Document() (render.Document, bool) {
	if w.h.noDocument {
		return nil, false
	}
	return document{w.h}, true
}

func (w window) AddEventListener(event string, fn func()) (func(), error) {
	return w.h.addListener(event, fn), nil
}

type document struct{ h *Host }

func (d document) ElementByID(id string) (render.Element, bool) {
	d.h.mu.Lock()
	defer d.h.mu.Unlock()
	el, ok := d.h.elements[id]
	if !ok {
		return nil, false
	}
	return el, true
}

// Element is an in-memory host element. It implements
// render.RemovalNotifier.
type Element struct {
	id string

	mu       sync.Mutex
	onRemove map[uint64]func()
	next     uint64
}

var (
	_ render.Element         = (*Element)(nil)
	_ render.RemovalNotifier = (*Element)(nil)
)

func newElement(id string) *Element {
	return &Element{id: id, onRemove: make(map[uint64]func())}
}

// ID implements render.Element.
func (e *Element) ID() string { return e.id }

// OnRemove implements render.RemovalNotifier.
func (e *Element) OnRemove(fn func()) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.next
	e.next++
	e.onRemove[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.onRemove, id)
	}
}

func (e *Element) removed() {
	e.mu.Lock()
	fns := make([]func(), 0, len(e.onRemove))
	for _, fn := range e.onRemove {
		fns = append(fns, fn)
	}
	e.onRemove = make(map[uint64]func())
	e.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
