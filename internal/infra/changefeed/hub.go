// Package changefeed fans durable change notifications out to per-hunt viewers.
package changefeed

import (
	"sync"

	"huntlog/internal/domain/entity"
	"huntlog/internal/domain/service"

	"github.com/google/uuid"
)

// Hub routes change events to subscribers of the matching hunt.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan *entity.ChangeEvent]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[chan *entity.ChangeEvent]struct{})}
}

// NewSubscriber exposes the hub through the domain port.
func NewSubscriber(hub *Hub) service.ChangeFeedSubscriber {
	return hub
}

func (h *Hub) Subscribe(huntID uuid.UUID) (<-chan *entity.ChangeEvent, func()) {
	// One slot is enough: every event means "refetch", so a pending one
	// already covers anything that arrives after it.
	ch := make(chan *entity.ChangeEvent, 1)

	h.mu.Lock()
	if h.subs[huntID] == nil {
		h.subs[huntID] = make(map[chan *entity.ChangeEvent]struct{})
	}
	h.subs[huntID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs[huntID], ch)
			if len(h.subs[huntID]) == 0 {
				delete(h.subs, huntID)
			}
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Dispatch delivers event to every subscriber of its hunt without blocking.
func (h *Hub) Dispatch(event *entity.ChangeEvent) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subs[event.HuntID] {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}

	return delivered
}

// Subscribers returns the number of open subscriptions for huntID.
func (h *Hub) Subscribers(huntID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[huntID])
}
