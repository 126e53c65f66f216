package system

import (
	"testing"

	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/port"
	"github.com/stretchr/testify/assert"
)

func TestClimbContacts(t *testing.T) {
	tun := component.DefaultTuning()

	t.Run("begin_airborne_enters_climb", func(t *testing.T) {
		r := newRig(t, tun)
		r.contact(ecs.ContactBegin, port.ContactClimbable)
		r.tick()

		ch := r.ch()
		assert.True(t, ch.Climbing)
		assert.True(t, ch.Sprintable)
		assert.Zero(t, r.phys.GravityScale)
		assert.Equal(t, common.Vec2{X: 0, Y: -tun.ClimbCreepSpeed}, r.phys.Vel)
		assert.True(t, r.anim.Bools[port.SignalClimb])
		assert.Equal(t, 1, ch.JumpCharges)
	})

	t.Run("begin_grounded_is_ignored", func(t *testing.T) {
		r := newRig(t, tun)
		r.phys.Land()
		r.tick()
		r.contact(ecs.ContactBegin, port.ContactClimbable)
		r.tick()
		assert.False(t, r.ch().Climbing)
		assert.Equal(t, 1.0, r.phys.GravityScale)
	})

	t.Run("other_contacts_are_ignored", func(t *testing.T) {
		r := newRig(t, tun)
		r.contact(ecs.ContactBegin, port.ContactOther)
		r.contact(ecs.ContactEnd, port.ContactOther)
		r.tick()
		assert.False(t, r.ch().Climbing)
		assert.Equal(t, 1.0, r.phys.GravityScale)
	})

	t.Run("stay_while_falling_grabs", func(t *testing.T) {
		r := newRig(t, tun)
		r.contact(ecs.ContactStay, port.ContactClimbable)
		r.tick()
		assert.False(t, r.ch().Climbing, "not falling")

		r.ch().Falling = true
		r.contact(ecs.ContactStay, port.ContactClimbable)
		r.tick()
		assert.True(t, r.ch().Climbing)
	})

	t.Run("end_leaves_climb", func(t *testing.T) {
		r := newRig(t, tun)
		r.contact(ecs.ContactBegin, port.ContactClimbable)
		r.tick()
		r.contact(ecs.ContactEnd, port.ContactClimbable)
		r.tick()
		assert.False(t, r.ch().Climbing)
		assert.False(t, r.anim.Bools[port.SignalClimb])
		assert.Equal(t, 1.0, r.phys.GravityScale)
	})
}
