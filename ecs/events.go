package ecs

import "github.com/milk9111/wallclimb/port"

// ContactPhase is the lifecycle stage of a contact.
type ContactPhase int

const (
	ContactBegin ContactPhase = iota
	ContactStay
	ContactEnd
)

func (p ContactPhase) String() string {
	switch p {
	case ContactBegin:
		return "begin"
	case ContactStay:
		return "stay"
	case ContactEnd:
		return "end"
	default:
		return "unknown"
	}
}

// ContactEvent is pushed by the physics host and drained at the start of
// the next tick.
type ContactEvent struct {
	Entity  Entity
	Phase   ContactPhase
	Contact port.Contact
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []ContactEvent
}

// Push adds an event.
func (q *EventQueue) Push(evt ContactEvent) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []ContactEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) dropEntity(e Entity) {
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Entity != e {
			kept = append(kept, evt)
		}
	}
	q.items = kept
}
