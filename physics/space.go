// Package physics backs the controller's PhysicsQuery with a Chipmunk2D
// space. World units are tiles with +Y up.
package physics

import (
	"cmp"
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/port"
)

const (
	collisionTypeSolid cp.CollisionType = iota + 1
	collisionTypeActor
)

const defaultFriction = 0.8

// shapeInfo is stored in cp.Shape.UserData.
type shapeInfo struct {
	layer  port.Layer
	object any
}

// ContactListener receives contacts of an actor body.
type ContactListener interface {
	OnBeginContact(contact port.Contact)
	OnStayContact(contact port.Contact)
	OnEndContact(contact port.Contact)
}

// Space owns the Chipmunk space and the actor bodies living in it.
type Space struct {
	space  *cp.Space
	actors map[*cp.Shape]*Body
}

// NewSpace creates a space with downward gravity of the given magnitude.
func NewSpace(gravity float64) *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: -gravity})
	s := &Space{space: space, actors: make(map[*cp.Shape]*Body)}
	s.setupHandlers()
	return s
}

// Space returns the underlying Chipmunk space.
func (s *Space) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

// Step advances the simulation. Contact callbacks run inside Step.
func (s *Space) Step(dt float64) {
	if s == nil || s.space == nil {
		return
	}
	s.space.Step(dt)
}

// AddBox adds a static axis-aligned box spanning min to max.
func (s *Space) AddBox(min, max common.Vec2, layer port.Layer, object any) *cp.Shape {
	bb := cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}
	shape := cp.NewBox2(s.space.StaticBody, bb, 0)
	s.configureSolid(shape, layer, object)
	s.space.AddShape(shape)
	return shape
}

// AddKinematicBox adds a box driven by velocity rather than forces, for
// moving platforms.
func (s *Space) AddKinematicBox(center common.Vec2, width, height float64, layer port.Layer, object any) *cp.Body {
	body := cp.NewKinematicBody()
	body.SetPosition(toCP(center))
	s.space.AddBody(body)
	shape := cp.NewBox(body, width, height, 0)
	s.configureSolid(shape, layer, object)
	s.space.AddShape(shape)
	return body
}

func (s *Space) configureSolid(shape *cp.Shape, layer port.Layer, object any) {
	shape.SetFriction(defaultFriction)
	shape.SetCollisionType(collisionTypeSolid)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(layer), Mask: cp.ALL_CATEGORIES})
	shape.UserData = &shapeInfo{layer: layer, object: object}
}

// AddActor adds a dynamic, non-rotating box for a controlled character.
func (s *Space) AddActor(center common.Vec2, width, height float64) *Body {
	mass := 1.0
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(toCP(center))
	s.space.AddBody(body)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetFilter(cp.ShapeFilter{Group: cp.NO_GROUP, Categories: uint(port.LayerPlayer), Mask: cp.ALL_CATEGORIES})
	shape.UserData = &shapeInfo{layer: port.LayerPlayer}
	s.space.AddShape(shape)

	b := &Body{space: s, body: body, shape: shape, gravityScale: 1, enabled: true}
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	})
	s.actors[shape] = b
	return b
}

func (s *Space) setupHandlers() {
	handler := s.space.NewCollisionHandler(collisionTypeActor, collisionTypeSolid)
	handler.UserData = s
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if b, other := s.resolve(arb); b != nil {
			b.notify(contactBegin, other)
		}
		return true
	}
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		if b, other := s.resolve(arb); b != nil {
			b.notify(contactStay, other)
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		if b, other := s.resolve(arb); b != nil {
			b.notify(contactEnd, other)
		}
	}
}

// resolve finds the actor body and the other shape's info in an arbiter.
func (s *Space) resolve(arb *cp.Arbiter) (*Body, *shapeInfo) {
	shapeA, shapeB := arb.Shapes()
	if b, ok := s.actors[shapeA]; ok {
		return b, infoOf(shapeB)
	}
	if b, ok := s.actors[shapeB]; ok {
		return b, infoOf(shapeA)
	}
	return nil, nil
}

func (s *Space) sweep(origin common.Vec2, radius float64, dir common.Vec2, maxDistance float64, mask port.Layer) []port.Hit {
	start, end := sweepSegment(origin, dir, maxDistance)
	type found struct {
		hit   port.Hit
		alpha float64
	}
	var hits []found
	seen := make(map[*cp.Shape]bool)
	s.space.SegmentQuery(start, end, radius, queryFilter(mask), func(shape *cp.Shape, point, normal cp.Vector, alpha float64, data interface{}) {
		if seen[shape] {
			return
		}
		seen[shape] = true
		info := infoOf(shape)
		if info == nil || !mask.Has(info.layer) {
			return
		}
		hits = append(hits, found{hit: port.Hit{Object: info.object, Layer: info.layer, Point: fromCP(point)}, alpha: alpha})
	}, nil)
	slices.SortStableFunc(hits, func(a, b found) int { return cmp.Compare(a.alpha, b.alpha) })
	out := make([]port.Hit, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.hit)
	}
	return out
}

func queryFilter(mask port.Layer) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(mask)}
}

func sweepSegment(origin common.Vec2, dir common.Vec2, maxDistance float64) (cp.Vector, cp.Vector) {
	n := dir
	if l := dir.Len(); l > 0 {
		n = dir.Scale(1 / l)
	}
	return toCP(origin), toCP(origin.Add(n.Scale(maxDistance)))
}

func infoOf(shape *cp.Shape) *shapeInfo {
	if shape == nil {
		return nil
	}
	info, _ := shape.UserData.(*shapeInfo)
	return info
}

func toCP(v common.Vec2) cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

func fromCP(v cp.Vector) common.Vec2 {
	return common.Vec2{X: v.X, Y: v.Y}
}

// ContactOf classifies a layer for the contact feed.
func ContactOf(layer port.Layer) port.Contact {
	if layer.Has(port.LayerWall) {
		return port.ContactClimbable
	}
	return port.ContactOther
}
