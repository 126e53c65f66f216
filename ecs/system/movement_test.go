package system

import (
	"testing"

	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/input"
	"github.com/milk9111/wallclimb/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLandingRestoresState(t *testing.T) {
	cases := []struct {
		name      string
		vy        float64
		grounded  bool
		climbing  bool
		wantReset bool
	}{
		{"at_rest", 0, true, false, true},
		{"within_tolerance", 5e-4, true, false, true},
		{"still_rising", 3, true, false, false},
		{"airborne", 0, false, false, false},
		{"landing_ends_climb", 0, true, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t, component.DefaultTuning())
			ch := r.ch()
			ch.JumpCharges = 0
			ch.Climbing = c.climbing
			ch.Falling = true
			r.phys.Grounded = c.grounded
			r.phys.Vel = common.Vec2{Y: c.vy}

			r.tick()

			assert.Equal(t, c.grounded, ch.Grounded)
			assert.Equal(t, c.grounded, r.anim.Bools[port.SignalGrounded])
			if !c.wantReset {
				assert.Equal(t, 0, ch.JumpCharges)
				assert.False(t, ch.Sprintable)
				return
			}
			assert.Equal(t, component.MaxJumpCharges, ch.JumpCharges)
			assert.False(t, ch.Climbing)
			assert.False(t, ch.Falling)
			assert.True(t, ch.Sprintable)
			assert.False(t, r.anim.Bools[port.SignalJump])
			assert.False(t, r.anim.Bools[port.SignalDescending])
			assert.Contains(t, r.anim.Resets, port.SignalJumpFirst)
			assert.Contains(t, r.anim.Resets, port.SignalJumpSecond)
		})
	}
}

func TestClimbingKeepsOneCharge(t *testing.T) {
	r := newRig(t, component.DefaultTuning())
	ch := r.ch()
	ch.Climbing = true

	r.tick()
	assert.Equal(t, 1, ch.JumpCharges)

	ch.JumpCharges = 0
	r.tick()
	assert.Equal(t, 1, ch.JumpCharges)
}

func TestDescendingSignal(t *testing.T) {
	r := newRig(t, component.DefaultTuning())
	r.phys.Vel = common.Vec2{Y: -2}
	r.tick()
	assert.True(t, r.anim.Bools[port.SignalDescending])

	r.phys.Vel = common.Vec2{Y: 2}
	r.tick()
	assert.False(t, r.anim.Bools[port.SignalDescending])
}

func TestJumpSpendsCharges(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	ch := r.ch()
	r.phys.Land()

	r.tick(jumpDown)
	assert.Equal(t, 1, ch.JumpCharges)
	assert.Equal(t, tun.JumpSpeed, r.phys.Vel.Y)
	assert.True(t, r.anim.Bools[port.SignalJump])
	assert.Equal(t, 1, r.anim.Count(port.SignalJumpFirst))

	r.phys.Lift(-1)
	r.tick(jumpDown)
	assert.Equal(t, 0, ch.JumpCharges)
	assert.Equal(t, tun.JumpSpeed, r.phys.Vel.Y)
	assert.Equal(t, 1, r.anim.Count(port.SignalJumpSecond))

	r.phys.Vel.Y = -1
	r.tick(jumpDown)
	assert.Equal(t, 0, ch.JumpCharges, "no jump without charges")
	assert.Equal(t, -1.0, r.phys.Vel.Y)
	assert.Equal(t, 1, r.anim.Count(port.SignalJumpSecond))
}

func TestMoveAndFacing(t *testing.T) {
	tun := component.DefaultTuning()

	t.Run("reverse_flips_and_turns_on_ground", func(t *testing.T) {
		r := newRig(t, tun)
		r.phys.Land()
		r.tick(input.Frame{Horizontal: -1})
		assert.Equal(t, -1, r.ch().Facing)
		assert.Equal(t, -tun.MoveSpeed, r.phys.Vel.X)
		assert.Equal(t, 1, r.anim.Count(port.SignalTurn))
	})

	t.Run("reverse_in_air_flips_without_turn", func(t *testing.T) {
		r := newRig(t, tun)
		r.tick(input.Frame{Horizontal: -1})
		assert.Equal(t, -1, r.ch().Facing)
		assert.Zero(t, r.anim.Count(port.SignalTurn))
	})

	t.Run("forward_runs", func(t *testing.T) {
		r := newRig(t, tun)
		r.tick(input.Frame{Horizontal: 1})
		assert.Equal(t, 1, r.ch().Facing)
		assert.True(t, r.anim.Bools[port.SignalRun])
		assert.Contains(t, r.anim.Resets, port.SignalStop)

		r.tick()
		assert.False(t, r.anim.Bools[port.SignalRun])
		assert.Equal(t, 1, r.anim.Count(port.SignalStop))
		assert.Zero(t, r.phys.Vel.X)
	})

	t.Run("no_flip_while_climbing", func(t *testing.T) {
		r := newRig(t, tun)
		r.ch().Climbing = true
		r.tick(input.Frame{Horizontal: -1})
		assert.Equal(t, 1, r.ch().Facing)
	})

	t.Run("no_flip_while_attacking", func(t *testing.T) {
		r := newRig(t, tun)
		r.ch().Attacking = true
		r.tick(input.Frame{Horizontal: -1})
		assert.Equal(t, 1, r.ch().Facing)
		assert.False(t, r.anim.Bools[port.SignalRun])
	})

	t.Run("forward_runs_while_attacking", func(t *testing.T) {
		r := newRig(t, tun)
		r.ch().Attacking = true
		r.tick(input.Frame{Horizontal: 1})
		assert.Equal(t, 1, r.ch().Facing)
		assert.True(t, r.anim.Bools[port.SignalRun])
	})

	t.Run("no_run_while_climbing", func(t *testing.T) {
		r := newRig(t, tun)
		r.ch().Climbing = true
		r.tick(input.Frame{Horizontal: 1})
		assert.False(t, r.anim.Bools[port.SignalRun])
	})

	t.Run("vertical_velocity_kept", func(t *testing.T) {
		r := newRig(t, tun)
		r.phys.Vel = common.Vec2{X: 3, Y: -4}
		r.tick(input.Frame{Horizontal: 1})
		assert.Equal(t, common.Vec2{X: tun.MoveSpeed, Y: -4}, r.phys.Vel)
	})

	t.Run("gate_closed_ignores_input", func(t *testing.T) {
		r := newRig(t, tun)
		r.ch().InputEnabled = false
		r.phys.Vel = common.Vec2{X: 3}
		r.tick(input.Frame{Horizontal: -1, JumpDown: true})
		assert.Equal(t, common.Vec2{X: 3}, r.phys.Vel)
		assert.Equal(t, 1, r.ch().Facing)
		assert.False(t, r.ch().InputGate)
	})
}

func TestFallControl(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	r.phys.Vel = common.Vec2{Y: 5}

	r.tick(jumpUp)
	assert.True(t, r.ch().Falling)
	assert.Equal(t, -tun.FallSpeed, r.phys.Vel.Y)

	r.tick()
	assert.False(t, r.ch().Falling)

	r.ch().Climbing = true
	r.phys.Vel = common.Vec2{Y: -tun.ClimbCreepSpeed}
	r.tick(jumpUp)
	assert.False(t, r.ch().Falling)
	assert.Equal(t, -tun.ClimbCreepSpeed, r.phys.Vel.Y)
}

func TestClimbJump(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	ch := r.ch()
	ch.Climbing = true

	r.tick(jumpDown)
	require.Len(t, r.phys.Impulses, 1)
	assert.Equal(t, common.Vec2{X: -tun.ClimbJumpForce.X, Y: tun.ClimbJumpForce.Y}, r.phys.Impulses[0])
	assert.Equal(t, 1, r.anim.Count(port.SignalClimbJump))
	assert.Equal(t, 1, r.anim.Count(port.SignalJumpFirst))
	assert.False(t, ch.InputEnabled)
	assert.Equal(t, 1, ch.Facing, "facing holds until the launch window ends")

	r.idle(tun.ClimbJumpDelay - 1)
	assert.False(t, ch.InputEnabled)

	r.idle(1)
	assert.True(t, ch.InputEnabled)
	assert.Equal(t, -1, ch.Facing)
	assert.Contains(t, r.anim.Resets, port.SignalClimbJump)
}

func TestClimbJumpFacingLeft(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	ch := r.ch()
	ch.Climbing = true
	ch.Facing = -1

	r.tick(jumpDown)
	require.Len(t, r.phys.Impulses, 1)
	assert.Equal(t, tun.ClimbJumpForce, r.phys.Impulses[0])

	r.idle(tun.ClimbJumpDelay)
	assert.Equal(t, 1, ch.Facing)
}
