package form

// EventKind names the transition that produced an Event.
type EventKind string

const (
	EventBillChanged  EventKind = "bill_changed"
	EventTipChanged   EventKind = "tip_changed"
	EventSplitChanged EventKind = "split_changed"
	EventConfirmed    EventKind = "confirmed"
	EventReset        EventKind = "reset"
)

// Event is delivered to observers after a transition changed the form.
// No-op transitions (split at a bound, blank confirm) produce no event.
type Event struct {
	Kind  EventKind
	State State
}

// Observer receives form events synchronously, in subscription order.
type Observer func(Event)

type observerEntry struct {
	fn Observer
}

// Subscribe registers fn and returns a function that removes it.
// Calling the returned function more than once is harmless.
func (c *Controller) Subscribe(fn Observer) (unsubscribe func()) {
	entry := &observerEntry{fn: fn}
	c.observers = append(c.observers, entry)
	return func() {
		for i, e := range c.observers {
			if e == entry {
				c.observers = append(c.observers[:i:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

func (c *Controller) emit(kind EventKind) {
	ev := Event{Kind: kind, State: c.state}
	for _, e := range c.observers {
		e.fn(ev)
	}
}
