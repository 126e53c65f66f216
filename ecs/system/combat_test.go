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

// airborneSprintable lands once so sprinting opens, then leaves the ground.
func airborneSprintable(r *rig) {
	r.phys.Land()
	r.tick()
	r.phys.Lift(0)
}

func TestSprintWindow(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	airborneSprintable(r)
	ch := r.ch()

	r.tick(press(port.KeySprint))
	assert.False(t, ch.InputEnabled)
	assert.False(t, ch.Sprintable)
	assert.False(t, ch.SprintReady)
	assert.Equal(t, common.Vec2{X: tun.SprintSpeed}, r.phys.Vel)
	assert.Equal(t, 1, r.anim.Count(port.SignalSprint))

	r.idle(tun.SprintTime - 1)
	assert.False(t, ch.InputEnabled)

	r.idle(1)
	assert.True(t, ch.InputEnabled)
	assert.True(t, ch.Sprintable)
	assert.False(t, ch.SprintReady)

	r.tick(press(port.KeySprint))
	assert.Equal(t, 1, r.anim.Count(port.SignalSprint), "no sprint before the interval ends")

	r.idle(tun.SprintInterval - 2)
	assert.False(t, ch.SprintReady)
	r.idle(1)
	assert.True(t, ch.SprintReady)

	r.tick(press(port.KeySprint))
	assert.Equal(t, 2, r.anim.Count(port.SignalSprint))
}

func TestSprintOffWallTurnsAround(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	ch := r.ch()
	ch.Climbing = true
	ch.Sprintable = true

	r.tick(press(port.KeySprint))
	assert.Equal(t, -1, ch.Facing)
	assert.Equal(t, common.Vec2{X: -tun.SprintSpeed}, r.phys.Vel)
}

func TestSprintNeedsSprintable(t *testing.T) {
	r := newRig(t, component.DefaultTuning())
	r.tick(press(port.KeySprint))
	assert.Zero(t, r.anim.Count(port.SignalSprint))
	assert.True(t, r.ch().InputEnabled)
}

func TestAttackVariants(t *testing.T) {
	tun := component.DefaultTuning()
	cases := []struct {
		name     string
		vertical float64
		grounded bool
		facing   int
		signal   port.Signal
		effect   port.EffectID
		dir      common.Vec2
		recoil   common.Vec2
	}{
		{"forward_right", 0, true, 1, port.SignalAttack, port.EffectAttackForward, common.Vec2{X: 1}, common.Vec2{X: -4}},
		{"forward_left", 0, false, -1, port.SignalAttack, port.EffectAttackForward, common.Vec2{X: -1}, common.Vec2{X: 4}},
		{"up_grounded", 1, true, 1, port.SignalAttackUp, port.EffectAttackUp, common.Vec2{Y: 1}, common.Vec2{Y: -3}},
		{"down_airborne", -1, false, 1, port.SignalAttackDown, port.EffectAttackDown, common.Vec2{Y: -1}, common.Vec2{Y: 10}},
		{"down_grounded_is_forward", -1, true, 1, port.SignalAttack, port.EffectAttackForward, common.Vec2{X: 1}, common.Vec2{X: -4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t, tun)
			r.phys.Grounded = c.grounded
			r.phys.Targets = []port.Hit{{Object: "dummy", Layer: port.LayerEnemy}}
			r.ch().Facing = c.facing

			r.tick(input.Frame{Vertical: c.vertical}.Press(port.KeyAttack))

			assert.Equal(t, 1, r.anim.Count(c.signal))
			assert.True(t, r.fx.Active[c.effect])
			sweep := r.phys.LastSweep()
			assert.Equal(t, c.dir, sweep.Dir)
			assert.Equal(t, tun.AttackRadius, sweep.Radius)
			assert.Equal(t, tun.AttackDistance, sweep.MaxDistance)
			assert.Equal(t, port.AttackLayers, sweep.Mask)
			assert.Equal(t, c.recoil, r.phys.Vel)
			require.Len(t, r.hits.hits, 1)
		})
	}
}

func TestAttackTwoHitsRecoilOnce(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	r.phys.Targets = []port.Hit{
		{Object: "a", Layer: port.LayerEnemy},
		{Object: "b", Layer: port.LayerTrap},
		{Object: "wall", Layer: port.LayerWall},
	}
	ch := r.ch()

	r.tick(press(port.KeyAttack))
	assert.Len(t, r.hits.hits, 2)
	assert.Equal(t, 1, r.phys.SetCount(tun.AttackForwardRecoil))
	assert.False(t, ch.Attackable)
	assert.True(t, ch.Attacking)

	r.idle(tun.EffectLifetime - 1)
	assert.True(t, r.fx.Active[port.EffectAttackForward])

	r.idle(1)
	assert.False(t, r.fx.Active[port.EffectAttackForward])
	assert.False(t, ch.Attacking)
	assert.False(t, ch.Attackable)

	r.idle(tun.AttackInterval - 1)
	assert.False(t, ch.Attackable)
	r.idle(1)
	assert.True(t, ch.Attackable)
}

func TestAttackWithoutHitsKeepsVelocity(t *testing.T) {
	r := newRig(t, component.DefaultTuning())
	r.phys.Vel = common.Vec2{Y: -3}
	r.tick(press(port.KeyAttack))
	assert.Equal(t, common.Vec2{Y: -3}, r.phys.Vel)
	assert.Empty(t, r.hits.hits)
	assert.False(t, r.ch().Attackable)
}

func TestAttackCooldownUnderMashing(t *testing.T) {
	tun := component.DefaultTuning()
	r := newRig(t, tun)
	window := tun.EffectLifetime + tun.AttackInterval

	var startedAt []uint64
	for i := 0; i < 2*window+2; i++ {
		before := r.anim.Count(port.SignalAttack)
		r.tick(press(port.KeyAttack))
		if r.anim.Count(port.SignalAttack) > before {
			startedAt = append(startedAt, r.w.Tick())
		}
	}
	require.Len(t, startedAt, 2)
	assert.Equal(t, uint64(window+1), startedAt[1]-startedAt[0])
}

func TestNoAttackWhileClimbing(t *testing.T) {
	r := newRig(t, component.DefaultTuning())
	r.ch().Climbing = true
	r.tick(press(port.KeyAttack))
	assert.Zero(t, r.anim.Count(port.SignalAttack))
	assert.True(t, r.ch().Attackable)
}
