// Package event carries change notifications between components.
// Events are topic-only: a subscriber learns that something under a
// topic changed and re-queries the authoritative store itself. No
// payload travels with the event, which keeps stale-snapshot bugs out
// of the listeners.
package event

import "sync"

// Topic names the kind of state that changed.
type Topic string

const (
	AuthChanged      Topic = "auth.changed"
	FavoritesChanged Topic = "favorites.changed"
	BookingsChanged  Topic = "bookings.changed"
)

// Bus is an in-process publish/subscribe hub. Handlers run
// synchronously on the publisher's goroutine, in subscription order.
type Bus struct {
	mu   sync.RWMutex
	subs map[Topic][]func(Topic)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[Topic][]func(Topic))}
}

// Subscribe registers fn for a topic. There is no unsubscribe; buses
// live for the process lifetime.
func (b *Bus) Subscribe(topic Topic, fn func(Topic)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

// Publish invokes every handler subscribed to the topic.
func (b *Bus) Publish(topic Topic) {
	b.mu.RLock()
	handlers := append([]func(Topic){}, b.subs[topic]...)
	b.mu.RUnlock()
	for _, fn := range handlers {
		fn(topic)
	}
}
