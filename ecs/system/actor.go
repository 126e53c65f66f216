package system

import (
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/ecs/component"
)

// actor bundles the components every controller system needs.
type actor struct {
	e   ecs.Entity
	ch  *component.Character
	tun *component.Tuning
	b   *component.Binding
}

func lookup(w *ecs.World, e ecs.Entity) (actor, bool) {
	ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
	if !ok {
		return actor{}, false
	}
	tun, ok := ecs.Get(w, e, component.TuningComponent.Kind())
	if !ok {
		return actor{}, false
	}
	b, ok := ecs.Get(w, e, component.BindingComponent.Kind())
	if !ok || b.Physics == nil || b.Input == nil {
		return actor{}, false
	}
	return actor{e: e, ch: ch, tun: tun, b: b}, true
}

func eachActor(w *ecs.World, fn func(a actor)) {
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, _ *component.Character) {
		if a, ok := lookup(w, e); ok {
			fn(a)
		}
	})
}

func (a actor) setVelocity(v common.Vec2) {
	a.b.Physics.SetVelocity(v)
	a.ch.Velocity = v
}

func (a actor) applyImpulse(impulse common.Vec2) {
	a.b.Physics.ApplyImpulse(impulse)
	a.ch.Velocity = a.b.Physics.Velocity()
}

// mirrored flips the horizontal component of v to match facing.
func mirrored(v common.Vec2, facing int) common.Vec2 {
	return common.Vec2{X: float64(facing) * v.X, Y: v.Y}
}
