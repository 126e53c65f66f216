package system

import (
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/port"
)

// CombatSystem handles sprint and melee input. It must run after
// MovementSystem, which samples the tick's input gate.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	eachActor(w, func(a actor) {
		if !a.ch.InputGate {
			return
		}
		sprintControl(w, a)
		attackControl(w, a)
	})
}

func sprintControl(w *ecs.World, a actor) {
	if a.b.Input.KeyDown(port.KeySprint) && a.ch.Sprintable && a.ch.SprintReady {
		sprint(w, a)
	}
}

func attackControl(w *ecs.World, a actor) {
	if !a.b.Input.KeyDown(port.KeyAttack) || a.ch.Climbing || !a.ch.Attackable {
		return
	}
	variant := component.AttackForward
	vertical := a.b.Input.Axis(port.AxisVertical)
	if vertical > 0 {
		variant = component.AttackUp
	} else if vertical < 0 && !a.ch.Grounded {
		variant = component.AttackDown
	}
	attack(w, a, variant)
}

func sprint(w *ecs.World, a actor) {
	ch := a.ch
	ch.InputEnabled = false
	ch.Sprintable = false
	ch.SprintReady = false

	// off a wall the sprint leaves away from it and the character turns around
	dir := ch.Facing
	if ch.Climbing {
		dir = -ch.Facing
		ch.Facing = -ch.Facing
	}
	a.setVelocity(common.Vec2{X: float64(dir) * a.tun.SprintSpeed, Y: 0})
	a.b.Animation.SetTrigger(port.SignalSprint)

	w.Timers().After(a.e, a.tun.SprintTime, "sprint", func(w *ecs.World, e ecs.Entity) {
		a, ok := lookup(w, e)
		if !ok {
			return
		}
		a.ch.InputEnabled = true
		a.ch.Sprintable = true
		w.Timers().After(e, a.tun.SprintInterval, "sprint_reset", func(w *ecs.World, e ecs.Entity) {
			if a, ok := lookup(w, e); ok {
				a.ch.SprintReady = true
			}
		})
	})
}

func attack(w *ecs.World, a actor, variant component.AttackVariant) {
	ch := a.ch
	ch.Attackable = false
	ch.Attacking = true

	effect := variant.Effect()
	a.b.Animation.SetTrigger(variant.Signal())
	a.b.Effects.Activate(effect)

	q := component.NewAttackQuery(a.b.Physics.Position(), *a.tun, variant, ch.Facing)
	hits := a.b.Physics.SweepAll(q.Origin, q.Radius, q.Direction, q.Distance, q.Mask)
	for _, hit := range hits {
		a.b.Hits.OnAttackHit(hit)
	}
	if len(hits) > 0 {
		a.setVelocity(variant.Recoil(*a.tun, ch.Facing))
	}

	w.Timers().After(a.e, a.tun.EffectLifetime, "attack_effect", func(w *ecs.World, e ecs.Entity) {
		a, ok := lookup(w, e)
		if !ok {
			return
		}
		a.b.Effects.Deactivate(effect)
		a.ch.Attacking = false
		a.ch.Attackable = false
		w.Timers().After(e, a.tun.AttackInterval, "attack_cooldown", func(w *ecs.World, e ecs.Entity) {
			if a, ok := lookup(w, e); ok {
				a.ch.Attackable = true
			}
		})
	})
}
