// Package events provides the in-process change hub behind live
// subscriptions. Services publish a resource name after every successful
// mutation; subscribers are nudged to re-read the resource.
package events

import "sync"

// Hub fans out change notifications per resource topic.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan struct{}]struct{})}
}

// Subscribe registers interest in a resource. The returned channel receives
// a value after each publish; the cancel func must be called on unmount.
func (h *Hub) Subscribe(resource string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subs[resource] == nil {
		h.subs[resource] = make(map[chan struct{}]struct{})
	}
	h.subs[resource][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs[resource], ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish notifies all subscribers of a resource. The send is non-blocking:
// a subscriber that already has a pending notification is not queued again,
// since it will re-read the full snapshot anyway.
func (h *Hub) Publish(resource string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[resource] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
