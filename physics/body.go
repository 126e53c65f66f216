package physics

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/port"
)

type contactPhase int

const (
	contactBegin contactPhase = iota
	contactStay
	contactEnd
)

// Body is a controlled character's rigid body. It implements
// port.PhysicsQuery.
type Body struct {
	space        *Space
	body         *cp.Body
	shape        *cp.Shape
	gravityScale float64
	enabled      bool

	listener ContactListener
	// Touched is called when a contact with any solid begins.
	Touched func(hit port.Hit)
}

var _ port.PhysicsQuery = (*Body)(nil)

// SetListener routes this body's contacts to l.
func (b *Body) SetListener(l ContactListener) {
	b.listener = l
}

func (b *Body) notify(phase contactPhase, other *shapeInfo) {
	if other == nil {
		return
	}
	if phase == contactBegin && b.Touched != nil {
		b.Touched(port.Hit{Object: other.object, Layer: other.layer, Point: b.Position()})
	}
	if b.listener == nil {
		return
	}
	contact := ContactOf(other.layer)
	switch phase {
	case contactBegin:
		b.listener.OnBeginContact(contact)
	case contactStay:
		b.listener.OnStayContact(contact)
	case contactEnd:
		b.listener.OnEndContact(contact)
	}
}

// CP returns the Chipmunk body.
func (b *Body) CP() *cp.Body {
	return b.body
}

func (b *Body) Position() common.Vec2 {
	return fromCP(b.body.Position())
}

func (b *Body) SweepFirst(origin common.Vec2, radius float64, dir common.Vec2, maxDistance float64, mask port.Layer) (port.Hit, bool) {
	start, end := sweepSegment(origin, dir, maxDistance)
	info := b.space.space.SegmentQueryFirst(start, end, radius, queryFilter(mask))
	si := infoOf(info.Shape)
	if si == nil || !mask.Has(si.layer) {
		return port.Hit{}, false
	}
	return port.Hit{Object: si.object, Layer: si.layer, Point: fromCP(info.Point)}, true
}

func (b *Body) SweepAll(origin common.Vec2, radius float64, dir common.Vec2, maxDistance float64, mask port.Layer) []port.Hit {
	return b.space.sweep(origin, radius, dir, maxDistance, mask)
}

func (b *Body) Velocity() common.Vec2 {
	return fromCP(b.body.Velocity())
}

func (b *Body) SetVelocity(v common.Vec2) {
	b.body.SetVelocityVector(toCP(v))
}

func (b *Body) ApplyImpulse(impulse common.Vec2) {
	b.body.ApplyImpulseAtWorldPoint(toCP(impulse), b.body.Position())
}

// GravityScale returns the current gravity multiplier.
func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

func (b *Body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

// Material returns the collider's bounciness and friction.
func (b *Body) Material() (bounciness, friction float64) {
	return b.shape.Elasticity(), b.shape.Friction()
}

func (b *Body) SetCollisionMaterial(bounciness, friction float64) {
	b.shape.SetElasticity(bounciness)
	b.shape.SetFriction(friction)
}

// ColliderEnabled reports whether the collider is in the space.
func (b *Body) ColliderEnabled() bool {
	return b.enabled
}

// EnableCollider re-adds the collider. Must not be called during Step.
func (b *Body) EnableCollider() {
	if b.enabled {
		return
	}
	b.space.space.AddShape(b.shape)
	b.enabled = true
}

// DisableCollider removes the collider. Must not be called during Step.
func (b *Body) DisableCollider() {
	if !b.enabled {
		return
	}
	b.space.space.RemoveShape(b.shape)
	b.enabled = false
}
