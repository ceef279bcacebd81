package kite

import "sync"

// cancellable is implemented by events that can be cancelled mid-dispatch,
// such as Impact and EventRocketExplosion.
type cancellable interface {
	Cancelled() bool
}

// Bus is an in-process event feed with priority-ordered delivery. It stands
// in for the host's event subscription mechanism: game code publishes
// events, subscribers registered at earlier tiers observe them first.
//
// Concurrency:
// Subscribe and Publish may be called from any goroutine. Subscribers run
// synchronously on the publishing goroutine, one at a time, so an event
// pointer may be mutated by subscribers without further locking. A
// panicking subscriber propagates to the publisher.
type Bus[E any] struct {
	mu   sync.RWMutex
	subs [priorityCount][]func(*E)
}

// NewBus creates an empty bus.
func NewBus[E any]() *Bus[E] {
	return &Bus[E]{}
}

// Subscribe registers fn at the given priority tier. Within a tier,
// subscribers run in subscription order. There is no unsubscribe; the bus
// lives as long as the process, like the host's listener registry.
func (b *Bus[E]) Subscribe(p Priority, fn func(*E)) {
	if p < First || p >= priorityCount {
		p = Normal
	}
	b.mu.Lock()
	b.subs[p] = append(b.subs[p], fn)
	b.mu.Unlock()
}

// Publish delivers event to all subscribers in priority order. If the event
// is cancellable, delivery stops after the subscriber that cancelled it;
// earlier subscribers have already run.
func (b *Bus[E]) Publish(event *E) {
	b.mu.RLock()
	var subs [priorityCount][]func(*E)
	for p := First; p < priorityCount; p++ {
		subs[p] = b.subs[p]
	}
	b.mu.RUnlock()

	c, _ := any(event).(cancellable)

	for p := First; p < priorityCount; p++ {
		for _, fn := range subs[p] {
			if c != nil && c.Cancelled() {
				return
			}
			fn(event)
		}
	}
}
