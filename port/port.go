// Package port declares the collaborators the character controller talks to.
// Everything behind these interfaces is owned by the host.
package port

//go:generate go tool mockgen -destination=./mocks/port_mock.go -package=mocks . Scene,Effects,HitReceiver

import "github.com/milk9111/wallclimb/common"

// Hit is a single sweep result.
type Hit struct {
	Object any
	Layer  Layer
	Point  common.Vec2
}

// PhysicsQuery is the actor's view of the physics engine.
type PhysicsQuery interface {
	Position() common.Vec2
	// SweepFirst moves a circle of the given radius from origin along dir and
	// reports the first shape matching mask, if any.
	SweepFirst(origin common.Vec2, radius float64, dir common.Vec2, maxDistance float64, mask Layer) (Hit, bool)
	SweepAll(origin common.Vec2, radius float64, dir common.Vec2, maxDistance float64, mask Layer) []Hit
	Velocity() common.Vec2
	SetVelocity(v common.Vec2)
	ApplyImpulse(impulse common.Vec2)
	SetGravityScale(scale float64)
	SetCollisionMaterial(bounciness, friction float64)
	EnableCollider()
	DisableCollider()
}

// Input exposes logical axes and edge-triggered buttons for one tick.
type Input interface {
	Axis(name Axis) float64
	// ButtonDown is true only on the tick the button went down.
	ButtonDown(name Button) bool
	// ButtonUp is true only on the tick the button was released.
	ButtonUp(name Button) bool
	KeyDown(code Key) bool
}

// AnimationSink receives animator parameter changes.
type AnimationSink interface {
	SetBool(signal Signal, value bool)
	SetTrigger(signal Signal)
	ResetTrigger(signal Signal)
}

// Scene is told when the death sequence has finished.
type Scene interface {
	RequestReset()
}

// Effects toggles transient visuals attached to the actor.
type Effects interface {
	Activate(id EffectID)
	Deactivate(id EffectID)
	SetTint(invulnerable bool)
}

// HitReceiver owns the side effects of a melee hit, such as damaging an
// enemy or destroying a projectile.
type HitReceiver interface {
	OnAttackHit(hit Hit)
}
