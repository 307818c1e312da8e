package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ProcessEvents delivers everything published during the frame.
func ProcessEvents(w donburi.World) {
	events.ProcessAllEvents(w)
}

// Subscription is a listener that can be released. The event bus compares
// handlers by function identity, which closures do not have, so a closed
// subscription stays registered but drops every event.
type Subscription struct {
	closed bool
}

func (s *Subscription) Close() {
	s.closed = true
}

func (s *Subscription) Closed() bool {
	return s.closed
}

// Subscribe registers fn for events of type T until the returned
// subscription is closed.
func Subscribe[T any](w donburi.World, et *events.EventType[T], fn func(w donburi.World, event T)) *Subscription {
	sub := &Subscription{}
	et.Subscribe(w, func(w donburi.World, event T) {
		if sub.closed {
			return
		}
		fn(w, event)
	})
	return sub
}

// Subscriptions closes a group of listeners together, typically on scene
// teardown.
type Subscriptions []*Subscription

func (s *Subscriptions) Add(sub *Subscription) {
	*s = append(*s, sub)
}

func (s *Subscriptions) Close() {
	for _, sub := range *s {
		sub.Close()
	}
	*s = nil
}
