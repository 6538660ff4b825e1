// Package events is a minimal in-process pub/sub bus connecting the API's
// write path to the notifier.
package events

import "sync"

// Event types published by the API layer.
const (
	TypeShiftOffered = "shift.offered"
	TypeShiftClaimed = "shift.claimed"
	TypeCoverageGap  = "coverage.gap"
)

// Event is a typed payload; the payload is JSON owned by the publisher.
type Event struct {
	Type    string
	Payload []byte
}

// EventHandler reacts to an event. Handlers run synchronously on the
// publisher's goroutine and must not block; anything slow hands off to its
// own goroutine (the notifier queues and returns).
type EventHandler func(event Event)

// EventBus fans events out to subscribers.
type EventBus struct {
	subscribers map[string][]EventHandler
	mu          sync.RWMutex
}

// NewEventBus constructs an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{subscribers: make(map[string][]EventHandler)}
}

// Subscribe registers a handler for a given event type.
func (b *EventBus) Subscribe(eventType string, handler EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], handler)
}

// Publish notifies subscribers of the event type.
func (b *EventBus) Publish(event Event) {
	b.mu.RLock()
	handlers := append([]EventHandler(nil), b.subscribers[event.Type]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}
