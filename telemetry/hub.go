package telemetry

import "sync"

// Hub fans out TurnEvents to any number of subscribed clients. It is safe
// for concurrent use: Publish is expected to be called from the host's
// turn loop while Subscribe/Unsubscribe are called from connection
// handlers running on other goroutines.
type Hub struct {
	mu   sync.Mutex
	subs map[chan TurnEvent]struct{}
}

// NewHub returns an empty Hub ready to publish to.
func NewHub() *Hub {
	return &Hub{subs: make(map[chan TurnEvent]struct{})}
}

// Subscribe registers a new client feed. The caller must Unsubscribe when
// done to release the channel.
func (h *Hub) Subscribe() chan TurnEvent {
	ch := make(chan TurnEvent, 16)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes a channel previously returned by
// Subscribe.
func (h *Hub) Unsubscribe(ch chan TurnEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

// Publish fans ev out to every current subscriber. A subscriber whose
// buffer is full is skipped for this event rather than blocking the
// publisher — a slow spectator must not stall the race loop.
func (h *Hub) Publish(ev TurnEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
