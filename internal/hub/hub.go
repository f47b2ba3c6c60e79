// Package hub is the process-wide route subscription registry the reroute
// path broadcasts through and the websocket handler subscribes against.
package hub

import "sync"

// Sink receives broadcast payloads. The websocket connection wrapper is the
// production implementation; tests can supply any Sink.
type Sink interface {
	Send(payload []byte) error
}

// bucket holds one route's subscribers behind its own mutex, so broadcasts
// on different routes never contend.
type bucket struct {
	mu   sync.Mutex
	subs []Sink
}

// Hub maps route IDs to their subscriber buckets.
type Hub struct {
	mu      sync.RWMutex
	buckets map[string]*bucket
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{buckets: make(map[string]*bucket)}
}

// Subscribe registers a sink for a route. Call only after the sink's
// handshake (e.g. websocket upgrade) has completed.
func (h *Hub) Subscribe(routeID string, sink Sink) {
	b := h.bucketFor(routeID)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, sink)
}

// Unsubscribe removes a sink from a route's bucket, if present.
func (h *Hub) Unsubscribe(routeID string, sink Sink) {
	b := h.bucketFor(routeID)
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s == sink {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Broadcast delivers payload to every sink currently registered for
// routeID, in registration order. A sink whose Send fails is removed once
// the broadcast completes; one dead sink never blocks delivery to the rest.
func (h *Hub) Broadcast(routeID string, payload []byte) {
	b := h.bucketFor(routeID)
	b.mu.Lock()
	defer b.mu.Unlock()

	alive := b.subs[:0]
	for _, s := range b.subs {
		if err := s.Send(payload); err == nil {
			alive = append(alive, s)
		}
	}
	b.subs = alive
}

// bucketFor returns (creating if necessary) the bucket for a route ID.
func (h *Hub) bucketFor(routeID string) *bucket {
	h.mu.RLock()
	b, ok := h.buckets[routeID]
	h.mu.RUnlock()
	if ok {
		return b
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if b, ok := h.buckets[routeID]; ok {
		return b
	}
	b = &bucket{}
	h.buckets[routeID] = b
	return b
}
