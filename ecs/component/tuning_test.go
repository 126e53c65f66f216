package component

import (
	"math"
	"testing"

	"github.com/milk9111/wallclimb/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, DefaultTuning().Validate())
}

func TestTuningValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Tuning)
		field  string
	}{
		{"zero health", func(t *Tuning) { t.Health = 0 }, "health"},
		{"negative hurt time", func(t *Tuning) { t.HurtTime = -1 }, "hurt_time"},
		{"negative death delay", func(t *Tuning) { t.DeathDelay = -5 }, "death_delay"},
		{"negative move speed", func(t *Tuning) { t.MoveSpeed = -1 }, "move_speed"},
		{"negative bounciness", func(t *Tuning) { t.DeathBounciness = -0.1 }, "death_bounciness"},
		{"zero probe radius", func(t *Tuning) { t.GroundProbeRadius = 0 }, "ground_probe_radius"},
		{"zero attack distance", func(t *Tuning) { t.AttackDistance = 0 }, "attack_distance"},
		{"nan move speed", func(t *Tuning) { t.MoveSpeed = math.NaN() }, "move_speed"},
		{"infinite jump speed", func(t *Tuning) { t.JumpSpeed = math.Inf(1) }, "jump_speed"},
		{"infinite attack radius", func(t *Tuning) { t.AttackRadius = math.Inf(1) }, "attack_radius"},
		{"nan probe distance", func(t *Tuning) { t.GroundProbeDistance = math.NaN() }, "ground_probe_distance"},
		{"nan hurt recoil", func(t *Tuning) { t.HurtRecoil = common.Vec2{X: math.NaN()} }, "hurt_recoil"},
		{"infinite death recoil", func(t *Tuning) { t.DeathRecoil = common.Vec2{Y: math.Inf(-1)} }, "death_recoil"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tun := DefaultTuning()
			tt.mutate(&tun)
			err := tun.Validate()
			require.ErrorIs(t, err, ErrInvalidTuning)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestZeroDurationsAreValid(t *testing.T) {
	tun := DefaultTuning()
	tun.SprintTime = 0
	tun.EffectLifetime = 0
	tun.ClimbJumpDelay = 0
	assert.NoError(t, tun.Validate())
}

func TestAttackRecoilMirrorsForwardOnly(t *testing.T) {
	tun := DefaultTuning()
	assert.Equal(t, tun.AttackForwardRecoil, AttackForward.Recoil(tun, 1))
	assert.Equal(t, -tun.AttackForwardRecoil.X, AttackForward.Recoil(tun, -1).X)
	assert.Equal(t, tun.AttackUpRecoil, AttackUp.Recoil(tun, -1))
	assert.Equal(t, tun.AttackDownRecoil, AttackDown.Recoil(tun, -1))
}
