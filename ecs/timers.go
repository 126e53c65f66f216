package ecs

import (
	"cmp"
	"slices"
)

// Continuation is the deferred half of a timed window. It receives the world
// and the owning entity rather than capturing component pointers, so a
// continuation for a destroyed entity is never run.
type Continuation func(w *World, e Entity)

type pendingTimer struct {
	fireAt uint64
	seq    uint64
	owner  Entity
	label  string
	fn     Continuation
}

// Timers holds continuations waiting for a future tick. There is no
// cancellation: a scheduled continuation always runs unless its owner is
// destroyed first.
type Timers struct {
	now     uint64
	seq     uint64
	pending []pendingTimer
}

// After schedules fn to run frames ticks from now. A continuation never runs
// during the tick that scheduled it, so frames below 1 mean the next tick.
func (t *Timers) After(owner Entity, frames int, label string, fn Continuation) {
	if t == nil || fn == nil {
		return
	}
	if frames < 1 {
		frames = 1
	}
	t.seq++
	t.pending = append(t.pending, pendingTimer{
		fireAt: t.now + uint64(frames),
		seq:    t.seq,
		owner:  owner,
		label:  label,
		fn:     fn,
	})
}

// Now returns the current tick.
func (t *Timers) Now() uint64 {
	if t == nil {
		return 0
	}
	return t.now
}

// Pending returns the number of continuations waiting to fire.
func (t *Timers) Pending() int {
	if t == nil {
		return 0
	}
	return len(t.pending)
}

// PendingFor returns the labels of owner's waiting continuations in firing
// order.
func (t *Timers) PendingFor(owner Entity) []string {
	if t == nil {
		return nil
	}
	var own []pendingTimer
	for _, p := range t.pending {
		if p.owner == owner {
			own = append(own, p)
		}
	}
	slices.SortFunc(own, comparePending)
	labels := make([]string, 0, len(own))
	for _, p := range own {
		labels = append(labels, p.label)
	}
	return labels
}

func (t *Timers) fire(w *World) {
	if len(t.pending) == 0 {
		return
	}
	var due []pendingTimer
	kept := t.pending[:0]
	for _, p := range t.pending {
		if p.fireAt <= t.now {
			due = append(due, p)
		} else {
			kept = append(kept, p)
		}
	}
	t.pending = kept
	if len(due) == 0 {
		return
	}
	slices.SortFunc(due, comparePending)
	for _, p := range due {
		if !IsAlive(w, p.owner) {
			continue
		}
		p.fn(w, p.owner)
	}
}

func (t *Timers) dropOwner(e Entity) {
	kept := t.pending[:0]
	for _, p := range t.pending {
		if p.owner != e {
			kept = append(kept, p)
		}
	}
	t.pending = kept
}

func comparePending(a, b pendingTimer) int {
	if c := cmp.Compare(a.fireAt, b.fireAt); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}
