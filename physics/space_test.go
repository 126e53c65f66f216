package physics

import (
	"testing"

	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60.0

type recordingListener struct {
	begins []port.Contact
	stays  int
	ends   []port.Contact
}

func (r *recordingListener) OnBeginContact(c port.Contact) { r.begins = append(r.begins, c) }
func (r *recordingListener) OnStayContact(port.Contact)    { r.stays++ }
func (r *recordingListener) OnEndContact(c port.Contact)   { r.ends = append(r.ends, c) }

func newTestSpace() *Space {
	s := NewSpace(10)
	s.AddBox(common.Vec2{X: -10, Y: -1}, common.Vec2{X: 10, Y: 0}, port.LayerPlatform, "floor")
	return s
}

func TestSweepFirstGroundProbe(t *testing.T) {
	cases := []struct {
		name   string
		height float64
		hit    bool
	}{
		{"standing", 0.5, true},
		{"just_above", 0.6, true},
		{"airborne", 3, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := newTestSpace()
			b := s.AddActor(common.Vec2{X: 0, Y: c.height}, 0.5, 1)
			hit, ok := b.SweepFirst(b.Position(), 0.2, common.Vec2{X: 0, Y: -1}, 0.5, port.GroundLayers)
			require.Equal(t, c.hit, ok)
			if ok {
				assert.Equal(t, port.LayerPlatform, hit.Layer)
				assert.Equal(t, "floor", hit.Object)
			}
		})
	}
}

func TestSweepAllFiltersAndOrders(t *testing.T) {
	s := newTestSpace()
	s.AddBox(common.Vec2{X: 1.2, Y: 0}, common.Vec2{X: 1.4, Y: 2}, port.LayerTrap, "far")
	s.AddBox(common.Vec2{X: 0.6, Y: 0}, common.Vec2{X: 0.8, Y: 2}, port.LayerEnemy, "near")
	s.AddBox(common.Vec2{X: 0.9, Y: 0}, common.Vec2{X: 1.0, Y: 2}, port.LayerWall, "wall")
	b := s.AddActor(common.Vec2{X: 0, Y: 1}, 0.5, 1)

	hits := b.SweepAll(b.Position(), 0.6, common.Vec2{X: 1, Y: 0}, 1.5, port.AttackLayers)
	require.Len(t, hits, 2)
	assert.Equal(t, "near", hits[0].Object)
	assert.Equal(t, port.LayerEnemy, hits[0].Layer)
	assert.Equal(t, "far", hits[1].Object)

	assert.Empty(t, b.SweepAll(b.Position(), 0.6, common.Vec2{X: -1, Y: 0}, 1.5, port.AttackLayers))
}

func TestGravityScale(t *testing.T) {
	s := NewSpace(10)
	b := s.AddActor(common.Vec2{X: 0, Y: 50}, 0.5, 1)

	b.SetGravityScale(0)
	b.SetVelocity(common.Vec2{X: 0, Y: -2})
	s.Step(dt)
	assert.InDelta(t, -2, b.Velocity().Y, 1e-9)

	b.SetGravityScale(1)
	s.Step(dt)
	assert.InDelta(t, -2-10*dt, b.Velocity().Y, 1e-6)
}

func TestImpulseChangesVelocity(t *testing.T) {
	s := NewSpace(0)
	b := s.AddActor(common.Vec2{X: 0, Y: 5}, 0.5, 1)
	b.ApplyImpulse(common.Vec2{X: 3, Y: 4})
	v := b.Velocity()
	assert.InDelta(t, 3, v.X, 1e-9)
	assert.InDelta(t, 4, v.Y, 1e-9)
}

func TestMaterialAndColliderToggle(t *testing.T) {
	s := newTestSpace()
	b := s.AddActor(common.Vec2{X: 0, Y: 0.5}, 0.5, 1)

	b.SetCollisionMaterial(0.3, 0.3)
	bounce, friction := b.Material()
	assert.InDelta(t, 0.3, bounce, 1e-9)
	assert.InDelta(t, 0.3, friction, 1e-9)

	b.DisableCollider()
	assert.False(t, b.ColliderEnabled())
	b.DisableCollider()
	b.EnableCollider()
	assert.True(t, b.ColliderEnabled())
}

func TestContactFeed(t *testing.T) {
	t.Run("landing_is_other", func(t *testing.T) {
		s := newTestSpace()
		b := s.AddActor(common.Vec2{X: 0, Y: 1.5}, 0.5, 1)
		l := &recordingListener{}
		b.SetListener(l)
		var touched []port.Hit
		b.Touched = func(hit port.Hit) { touched = append(touched, hit) }

		for i := 0; i < 120; i++ {
			s.Step(dt)
		}
		require.NotEmpty(t, l.begins)
		assert.Equal(t, port.ContactOther, l.begins[0])
		assert.Positive(t, l.stays)
		require.NotEmpty(t, touched)
		assert.Equal(t, port.LayerPlatform, touched[0].Layer)
	})

	t.Run("wall_is_climbable", func(t *testing.T) {
		s := NewSpace(10)
		s.AddBox(common.Vec2{X: 1, Y: -5}, common.Vec2{X: 2, Y: 5}, port.LayerWall, "wall")
		b := s.AddActor(common.Vec2{X: 0.3, Y: 0}, 1, 1)
		b.SetGravityScale(0)
		l := &recordingListener{}
		b.SetListener(l)

		b.SetVelocity(common.Vec2{X: 5, Y: 0})
		for i := 0; i < 30; i++ {
			s.Step(dt)
		}
		require.NotEmpty(t, l.begins)
		assert.Equal(t, port.ContactClimbable, l.begins[0])

		b.SetVelocity(common.Vec2{X: -5, Y: 0})
		for i := 0; i < 30; i++ {
			s.Step(dt)
		}
		require.NotEmpty(t, l.ends)
		assert.Equal(t, port.ContactClimbable, l.ends[0])
	})
}

func TestContactOf(t *testing.T) {
	assert.Equal(t, port.ContactClimbable, ContactOf(port.LayerWall))
	assert.Equal(t, port.ContactOther, ContactOf(port.LayerPlatform))
	assert.Equal(t, port.ContactOther, ContactOf(port.LayerEnemy))
}
