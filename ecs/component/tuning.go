package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/wallclimb/common"
)

var ErrInvalidTuning = errors.New("tuning: invalid value")

// Tuning holds the designer-facing constants of the controller. Durations are
// in frames (update ticks).
type Tuning struct {
	Health int

	MoveSpeed       float64
	JumpSpeed       float64
	FallSpeed       float64
	ClimbJumpForce  common.Vec2
	ClimbCreepSpeed float64
	ClimbJumpDelay  int

	SprintSpeed    float64
	SprintTime     int
	SprintInterval int

	AttackInterval      int
	EffectLifetime      int
	AttackRadius        float64
	AttackDistance      float64
	AttackUpRecoil      common.Vec2
	AttackForwardRecoil common.Vec2
	AttackDownRecoil    common.Vec2

	HurtRecoil      common.Vec2
	HurtTime        int
	HurtRecoverTime int

	DeathRecoil     common.Vec2
	DeathDelay      int
	DeathBounciness float64
	DeathFriction   float64

	GroundProbeRadius   float64
	GroundProbeDistance float64
}

var TuningComponent = NewComponent[Tuning]()

// DefaultTuning returns values tuned for a 60 Hz tick and a world measured
// in tiles.
func DefaultTuning() Tuning {
	return Tuning{
		Health: 5,

		MoveSpeed:       5,
		JumpSpeed:       12,
		FallSpeed:       6,
		ClimbJumpForce:  common.Vec2{X: 8, Y: 10},
		ClimbCreepSpeed: 2,
		ClimbJumpDelay:  12,

		SprintSpeed:    18,
		SprintTime:     12,
		SprintInterval: 30,

		AttackInterval:      18,
		EffectLifetime:      3,
		AttackRadius:        0.6,
		AttackDistance:      1.5,
		AttackUpRecoil:      common.Vec2{X: 0, Y: -3},
		AttackForwardRecoil: common.Vec2{X: -4, Y: 0},
		AttackDownRecoil:    common.Vec2{X: 0, Y: 10},

		HurtRecoil:      common.Vec2{X: -4, Y: 6},
		HurtTime:        18,
		HurtRecoverTime: 60,

		DeathRecoil:     common.Vec2{X: -6, Y: 10},
		DeathDelay:      90,
		DeathBounciness: 0.3,
		DeathFriction:   0.3,

		GroundProbeRadius:   0.2,
		GroundProbeDistance: 0.5,
	}
}

// Validate rejects values that cannot be simulated. It runs before the first
// tick; nothing is checked afterwards.
func (t Tuning) Validate() error {
	if t.Health <= 0 {
		return fmt.Errorf("%w: health must be positive, got %d", ErrInvalidTuning, t.Health)
	}
	frames := []struct {
		name  string
		value int
	}{
		{"climb_jump_delay", t.ClimbJumpDelay},
		{"sprint_time", t.SprintTime},
		{"sprint_interval", t.SprintInterval},
		{"attack_interval", t.AttackInterval},
		{"effect_lifetime", t.EffectLifetime},
		{"hurt_time", t.HurtTime},
		{"hurt_recover_time", t.HurtRecoverTime},
		{"death_delay", t.DeathDelay},
	}
	for _, f := range frames {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidTuning, f.name, f.value)
		}
	}
	speeds := []struct {
		name  string
		value float64
	}{
		{"move_speed", t.MoveSpeed},
		{"jump_speed", t.JumpSpeed},
		{"fall_speed", t.FallSpeed},
		{"climb_creep_speed", t.ClimbCreepSpeed},
		{"sprint_speed", t.SprintSpeed},
		{"death_bounciness", t.DeathBounciness},
		{"death_friction", t.DeathFriction},
	}
	for _, s := range speeds {
		if !finite(s.value) || s.value < 0 {
			return fmt.Errorf("%w: %s must be a finite non-negative number, got %g", ErrInvalidTuning, s.name, s.value)
		}
	}
	probes := []struct {
		name  string
		value float64
	}{
		{"ground_probe_radius", t.GroundProbeRadius},
		{"ground_probe_distance", t.GroundProbeDistance},
		{"attack_radius", t.AttackRadius},
		{"attack_distance", t.AttackDistance},
	}
	for _, p := range probes {
		if !finite(p.value) || p.value <= 0 {
			return fmt.Errorf("%w: %s must be finite and positive, got %g", ErrInvalidTuning, p.name, p.value)
		}
	}
	vectors := []struct {
		name  string
		value common.Vec2
	}{
		{"climb_jump_force", t.ClimbJumpForce},
		{"attack_up_recoil", t.AttackUpRecoil},
		{"attack_forward_recoil", t.AttackForwardRecoil},
		{"attack_down_recoil", t.AttackDownRecoil},
		{"hurt_recoil", t.HurtRecoil},
		{"death_recoil", t.DeathRecoil},
	}
	for _, v := range vectors {
		if !finite(v.value.X) || !finite(v.value.Y) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidTuning, v.name, v.value)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
