package ecs

import "strconv"

// Entity packs a slot id in the low 32 bits and the slot's generation in the
// high 32 bits. Destroying an entity bumps its slot generation, so timers and
// contact events still holding the old handle fail IsAlive.
type Entity uint64

func makeEntity(slot, gen uint32) Entity {
	return Entity(uint64(gen)<<32 | uint64(slot))
}

// id is 1-based; zero is never handed out.
func (e Entity) id() uint32 {
	return uint32(e)
}

func (e Entity) generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

// entityStore recycles slots; a slot is reused only with a newer generation.
type entityStore struct {
	slots []entitySlot
	free  []uint32
}

type entitySlot struct {
	gen  uint32
	live bool
}

func (s *entityStore) create() Entity {
	var id uint32
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.slots = append(s.slots, entitySlot{})
		id = uint32(len(s.slots))
	}
	slot := &s.slots[id-1]
	slot.live = true
	return makeEntity(id, slot.gen)
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := &s.slots[e.id()-1]
	slot.gen++
	slot.live = false
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.slots) {
		return false
	}
	slot := s.slots[id-1]
	return slot.live && slot.gen == e.generation()
}

func (s *entityStore) alive() []Entity {
	out := make([]Entity, 0, len(s.slots)-len(s.free))
	for i, slot := range s.slots {
		if slot.live {
			out = append(out, makeEntity(uint32(i+1), slot.gen))
		}
	}
	return out
}
