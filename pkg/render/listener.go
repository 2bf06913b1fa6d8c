package render

import (
	"slices"
	"sync"
)

// Cancel removes a listener registration. It is safe to call more than once
// and from any goroutine.
type Cancel func()

// Registry keeps host event callbacks registered and reachable until they
// are cancelled. Each [Handle] owns one registry and closes it on dispose.
type Registry struct {
	mu      sync.Mutex
	next    uint64
	entries map[uint64]*listenerEntry
	closed  bool
}

type listenerEntry struct {
	event  string
	fn     func()
	remove func()
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint64]*listenerEntry)}
}

// Register adds fn as a listener for event on w. The registration stays in
// place until the returned Cancel is called or the registry is closed.
func (r *Registry) Register(w Window, event string, fn func()) (Cancel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrDisposed
	}

	remove, err := w.AddEventListener(event, fn)
	if err != nil {
		return nil, engineError("addEventListener("+event+")", err)
	}

	id := r.next
	r.next++
	r.entries[id] = &listenerEntry{event: event, fn: fn, remove: remove}

	var once sync.Once
	return func() {
		once.Do(func() { r.cancel(id) })
	}, nil
}

func (r *Registry) cancel(id uint64) {
	r.mu.Lock()
	e, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	if ok && e.remove != nil {
		e.remove()
	}
}

// Len returns the number of live registrations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Events returns the event name of every live registration, in
// registration order.
func (r *Registry) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]uint64, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = r.entries[id].event
	}
	return out
}

// Close removes every registration and rejects further ones.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	entries := r.entries
	r.entries = make(map[uint64]*listenerEntry)
	r.mu.Unlock()

	for _, e := range entries {
		if e.remove != nil {
			e.remove()
		}
	}
}
