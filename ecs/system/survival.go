package system

import (
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/port"
)

// SurvivalSystem applies damage queued by damage sources since the last
// tick. Queued damage is dropped while the character is invulnerable.
type SurvivalSystem struct{}

func NewSurvivalSystem() *SurvivalSystem {
	return &SurvivalSystem{}
}

func (s *SurvivalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.PendingDamageComponent.Kind(), func(e ecs.Entity, pd *component.PendingDamage) {
		amounts := pd.Amounts
		pd.Amounts = nil
		for _, amount := range amounts {
			a, ok := lookup(w, e)
			if !ok || !a.ch.Vulnerable() {
				break
			}
			ApplyDamage(w, e, amount)
		}
	})
}

// QueueDamage records damage from a source that cannot touch the character
// directly, such as a physics callback.
func QueueDamage(w *ecs.World, e ecs.Entity, amount int) bool {
	pd, ok := ecs.Get(w, e, component.PendingDamageComponent.Kind())
	if !ok {
		pd = &component.PendingDamage{}
		if err := ecs.Add(w, e, component.PendingDamageComponent.Kind(), pd); err != nil {
			return false
		}
	}
	pd.Amounts = append(pd.Amounts, amount)
	return true
}

// ApplyDamage removes health and starts the hurt or death sequence. Negative
// amounts count as zero. A hurt character can be hurt again before it
// recovers; only death is final. It reports whether the damage landed.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount int) bool {
	a, ok := lookup(w, e)
	if !ok || a.ch.Life == component.LifeDead {
		return false
	}
	amount = max(amount, 0)

	a.ch.Invulnerable = true
	a.ch.Health = max(a.ch.Health-amount, 0)
	if a.ch.Health == 0 {
		die(w, a)
		return true
	}
	hurt(w, a)
	return true
}

func hurt(w *ecs.World, a actor) {
	ch, t := a.ch, a.tun
	ch.Life = component.LifeHurt

	a.b.Animation.SetTrigger(port.SignalHurt)
	a.setVelocity(common.Vec2{})
	ch.Tinted = true
	a.b.Effects.SetTint(true)
	a.applyImpulse(mirrored(t.HurtRecoil, ch.Facing))
	ch.InputEnabled = false
	a.b.Logger.Debug("character hurt", "entity", a.e, "health", ch.Health)

	// Both stages run even if the character dies in between; AcceptsInput
	// and Vulnerable keep a dead character dead.
	w.Timers().After(a.e, t.HurtTime, "hurt", func(w *ecs.World, e ecs.Entity) {
		a, ok := lookup(w, e)
		if !ok {
			return
		}
		a.ch.InputEnabled = true
		w.Timers().After(e, a.tun.HurtRecoverTime, "hurt_recover", func(w *ecs.World, e ecs.Entity) {
			a, ok := lookup(w, e)
			if !ok {
				return
			}
			a.ch.Tinted = false
			a.b.Effects.SetTint(false)
			a.ch.Invulnerable = false
			if a.ch.Life == component.LifeHurt {
				a.ch.Life = component.LifeNormal
			}
		})
	})
}

func die(w *ecs.World, a actor) {
	ch, t := a.ch, a.tun
	ch.Life = component.LifeDead

	a.b.Animation.SetTrigger(port.SignalDead)
	ch.InputEnabled = false
	a.setVelocity(common.Vec2{})
	ch.Tinted = true
	a.b.Effects.SetTint(true)
	a.applyImpulse(mirrored(t.DeathRecoil, ch.Facing))

	setMaterial(a.b.Physics, t.DeathBounciness, t.DeathFriction)
	a.b.Logger.Info("character died", "entity", a.e, "reset_in_frames", t.DeathDelay)

	w.Timers().After(a.e, t.DeathDelay, "death", func(w *ecs.World, e ecs.Entity) {
		a, ok := lookup(w, e)
		if !ok {
			return
		}
		setMaterial(a.b.Physics, 0, 0)
		a.b.Logger.Info("requesting scene reset", "entity", e)
		a.b.Scene.RequestReset()
	})
}

// setMaterial changes bounce and friction. The collider is toggled afterwards
// because the engine only picks up material changes on re-enable.
func setMaterial(p port.PhysicsQuery, bounciness, friction float64) {
	p.SetCollisionMaterial(bounciness, friction)
	p.DisableCollider()
	p.EnableCollider()
}
