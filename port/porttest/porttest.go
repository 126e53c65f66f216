// Package porttest provides in-memory implementations of the controller
// ports for tests.
package porttest

import (
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/port"
)

// Sweep is a recorded SweepFirst or SweepAll call.
type Sweep struct {
	Origin      common.Vec2
	Radius      float64
	Dir         common.Vec2
	MaxDistance float64
	Mask        port.Layer
}

// Physics is a scripted physics body. Velocity changes are applied
// immediately; impulses act on a unit mass.
type Physics struct {
	Pos          common.Vec2
	Vel          common.Vec2
	Grounded     bool
	Targets      []port.Hit
	GravityScale float64
	Bounciness   float64
	Friction     float64
	Enabled      bool

	// Calls logs material and collider changes in order.
	Calls    []string
	Sweeps   []Sweep
	Sets     []common.Vec2
	Impulses []common.Vec2
}

var _ port.PhysicsQuery = (*Physics)(nil)

func NewPhysics() *Physics {
	return &Physics{GravityScale: 1, Enabled: true}
}

func (p *Physics) Position() common.Vec2 {
	return p.Pos
}

// SweepFirst reports a platform hit below the body while Grounded is set.
func (p *Physics) SweepFirst(origin common.Vec2, radius float64, dir common.Vec2, maxDistance float64, mask port.Layer) (port.Hit, bool) {
	p.Sweeps = append(p.Sweeps, Sweep{origin, radius, dir, maxDistance, mask})
	if p.Grounded && mask.Has(port.LayerPlatform) && dir.Y < 0 {
		return port.Hit{Object: "ground", Layer: port.LayerPlatform, Point: origin.Add(dir.Scale(maxDistance))}, true
	}
	for _, hit := range p.Targets {
		if mask.Has(hit.Layer) {
			return hit, true
		}
	}
	return port.Hit{}, false
}

// SweepAll returns the Targets matching mask.
func (p *Physics) SweepAll(origin common.Vec2, radius float64, dir common.Vec2, maxDistance float64, mask port.Layer) []port.Hit {
	p.Sweeps = append(p.Sweeps, Sweep{origin, radius, dir, maxDistance, mask})
	var hits []port.Hit
	for _, hit := range p.Targets {
		if mask.Has(hit.Layer) {
			hits = append(hits, hit)
		}
	}
	return hits
}

// LastSweep returns the most recent sweep query.
func (p *Physics) LastSweep() Sweep {
	if len(p.Sweeps) == 0 {
		return Sweep{}
	}
	return p.Sweeps[len(p.Sweeps)-1]
}

func (p *Physics) Velocity() common.Vec2 {
	return p.Vel
}

func (p *Physics) SetVelocity(v common.Vec2) {
	p.Sets = append(p.Sets, v)
	p.Vel = v
}

// SetCount returns how often the velocity was set to exactly v.
func (p *Physics) SetCount(v common.Vec2) int {
	n := 0
	for _, s := range p.Sets {
		if s == v {
			n++
		}
	}
	return n
}

func (p *Physics) ApplyImpulse(impulse common.Vec2) {
	p.Impulses = append(p.Impulses, impulse)
	p.Vel = p.Vel.Add(impulse)
}

func (p *Physics) SetGravityScale(scale float64) {
	p.GravityScale = scale
}

func (p *Physics) SetCollisionMaterial(bounciness, friction float64) {
	p.Bounciness, p.Friction = bounciness, friction
	p.Calls = append(p.Calls, "material")
}

func (p *Physics) EnableCollider() {
	p.Enabled = true
	p.Calls = append(p.Calls, "enable")
}

func (p *Physics) DisableCollider() {
	p.Enabled = false
	p.Calls = append(p.Calls, "disable")
}

// Land puts the body at rest on the ground.
func (p *Physics) Land() {
	p.Grounded = true
	p.Vel = common.Vec2{}
}

// Lift takes the body off the ground with vertical speed vy.
func (p *Physics) Lift(vy float64) {
	p.Grounded = false
	p.Vel.Y = vy
}

// Animation records animator parameter changes.
type Animation struct {
	Bools    map[port.Signal]bool
	Triggers []port.Signal
	Resets   []port.Signal
}

var _ port.AnimationSink = (*Animation)(nil)

func NewAnimation() *Animation {
	return &Animation{Bools: make(map[port.Signal]bool)}
}

func (a *Animation) SetBool(signal port.Signal, value bool) {
	a.Bools[signal] = value
}

func (a *Animation) SetTrigger(signal port.Signal) {
	a.Triggers = append(a.Triggers, signal)
}

func (a *Animation) ResetTrigger(signal port.Signal) {
	a.Resets = append(a.Resets, signal)
}

// Count returns how often signal was triggered.
func (a *Animation) Count(signal port.Signal) int {
	n := 0
	for _, s := range a.Triggers {
		if s == signal {
			n++
		}
	}
	return n
}

// Clear forgets recorded triggers and resets, keeping bools.
func (a *Animation) Clear() {
	a.Triggers = nil
	a.Resets = nil
}

// Effects records effect and tint changes.
type Effects struct {
	Active map[port.EffectID]bool
	Tint   bool
	Log    []string
}

var _ port.Effects = (*Effects)(nil)

func NewEffects() *Effects {
	return &Effects{Active: make(map[port.EffectID]bool)}
}

func (e *Effects) Activate(id port.EffectID) {
	e.Active[id] = true
	e.Log = append(e.Log, "+"+string(id))
}

func (e *Effects) Deactivate(id port.EffectID) {
	delete(e.Active, id)
	e.Log = append(e.Log, "-"+string(id))
}

func (e *Effects) SetTint(on bool) {
	e.Tint = on
}
