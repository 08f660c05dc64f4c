// Package realtime is the ephemeral broadcast channel. It fans chat events
// out to every connected listener, best-effort: no delivery guarantee, no
// ordering relative to the durable store, no persistence.
package realtime

import (
	"log/slog"
	"sync"

	"slingshot/domain/event"

	"github.com/google/uuid"
)

// Hub owns the listener set. Nothing else mutates it; the REST gateway and
// the store never see it.
type Hub struct {
	mu        sync.RWMutex
	listeners map[uuid.UUID]chan event.ChatEvent
	buffer    int
	log       *slog.Logger
}

func NewHub(log *slog.Logger, buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		listeners: make(map[uuid.UUID]chan event.ChatEvent),
		buffer:    buffer,
		log:       log,
	}
}

// Register attaches a listener and returns its id plus the channel events
// will arrive on. The channel is never closed by the hub; readers stop
// consuming when their connection goes away.
func (h *Hub) Register() (uuid.UUID, <-chan event.ChatEvent) {
	id := uuid.New()
	ch := make(chan event.ChatEvent, h.buffer)

	h.mu.Lock()
	h.listeners[id] = ch
	h.mu.Unlock()

	h.log.Debug("listener registered", "listener_id", id, "total", h.Len())
	return id, ch
}

// Unregister detaches a listener. Unknown ids are a no-op.
func (h *Hub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	delete(h.listeners, id)
	h.mu.Unlock()

	h.log.Debug("listener unregistered", "listener_id", id, "total", h.Len())
}

// Publish delivers the event to every currently registered listener.
// Delivery is send-or-drop per listener: a slow consumer whose buffer is full
// loses the event instead of blocking the publisher. Publishing with zero
// listeners is a silent no-op.
func (h *Hub) Publish(evt event.ChatEvent) {
	h.mu.RLock()
	snapshot := make([]chan event.ChatEvent, 0, len(h.listeners))
	for _, ch := range h.listeners {
		snapshot = append(snapshot, ch)
	}
	h.mu.RUnlock()

	for _, ch := range snapshot {
		select {
		case ch <- evt:
		default:
			h.log.Debug("listener buffer full, event dropped")
		}
	}
}

// Len reports the current listener count.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}
