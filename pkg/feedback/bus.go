package feedback

import (
	"sync"
	"sync/atomic"
)

// Handler receives the raw payload of a published event.
type Handler func(payload []byte)

// Subscription is a registered handler for one event name.
type Subscription struct {
	id    uint64
	event string
	bus   *Bus
}

// Event returns the event name this subscription listens to.
func (s *Subscription) Event() string {
	return s.event
}

// Unsubscribe removes the handler from its bus. Safe to call twice.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.bus == nil {
		return
	}
	s.bus.unsubscribe(s)
}

type subscriber struct {
	id      uint64
	handler Handler
}

// Bus is a publish/subscribe registry keyed by event name.
//
// Delivery is synchronous and fire-and-forget: Publish runs every handler
// for the event on the caller's goroutine, in subscription order, and
// returns nothing about what they did.
type Bus struct {
	mu sync.RWMutex

	// subscribers holds the handlers per event name
	subscribers map[string][]subscriber

	nextID atomic.Uint64

	// closed indicates if the bus has been closed
	closed bool
}

// Default is the process-wide bus the backend events arrive on.
var Default = NewBus()

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscriber),
	}
}

// Subscribe registers h for event. On a closed bus the returned
// subscription is inert.
func (b *Bus) Subscribe(event string, h Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{id: b.nextID.Add(1), event: event}
	if b.closed || h == nil {
		return sub
	}

	sub.bus = b
	b.subscribers[event] = append(b.subscribers[event], subscriber{id: sub.id, handler: h})
	return sub
}

func (b *Bus) unsubscribe(s *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subscribers[s.event]
	for i, sub := range subs {
		if sub.id == s.id {
			b.subscribers[s.event] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(b.subscribers[s.event]) == 0 {
		delete(b.subscribers, s.event)
	}
}

// Publish delivers payload to every handler subscribed to event.
// Handlers may subscribe or unsubscribe while being called; the set of
// handlers is fixed when Publish starts.
func (b *Bus) Publish(event string, payload []byte) {
	b.mu.RLock()
	if b.closed {
		b.mu.RUnlock()
		return
	}
	subs := make([]subscriber, len(b.subscribers[event]))
	copy(subs, b.subscribers[event])
	b.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(payload)
	}
}

// Subscribers returns the number of handlers registered for event.
func (b *Bus) Subscribers(event string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[event])
}

// Close drops every subscription. Publishing on a closed bus is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.subscribers = nil
}
