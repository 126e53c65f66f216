package ecs

import "github.com/milk9111/wallclimb/ecs/component"

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, their components, the per-tick system order, the
// contact feed and the timer scheduler.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	systems  []System
	contacts EventQueue
	timers   Timers
}

// NewWorld creates an empty world running systems in the given order.
func NewWorld(systems ...System) *World {
	w := &World{stores: make(map[component.ComponentID]*SparseSet)}
	for _, s := range systems {
		w.AddSystem(s)
	}
	return w
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes e, its components and its pending timers. It reports
// false if e was already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.timers.dropOwner(e)
	w.contacts.dropEntity(e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}

// AddSystem appends a system to the update order. Nil systems are ignored.
func (w *World) AddSystem(s System) {
	if w == nil || s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs one tick: every system in order, then every timer that has
// come due.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.timers.now++
	for _, s := range w.systems {
		s.Update(w)
	}
	w.timers.fire(w)
}

// Contacts returns the world contact feed.
func (w *World) Contacts() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.contacts
}

// Timers returns the world timer scheduler.
func (w *World) Timers() *Timers {
	if w == nil {
		return nil
	}
	return &w.timers
}

// Tick returns the number of completed or in-progress updates.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.timers.now
}
