package component

import (
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/port"
)

// AttackVariant selects direction, visuals and recoil of a melee swing.
type AttackVariant int

const (
	AttackForward AttackVariant = iota
	AttackUp
	AttackDown
)

func (v AttackVariant) String() string {
	switch v {
	case AttackUp:
		return "up"
	case AttackDown:
		return "down"
	default:
		return "forward"
	}
}

func (v AttackVariant) Signal() port.Signal {
	switch v {
	case AttackUp:
		return port.SignalAttackUp
	case AttackDown:
		return port.SignalAttackDown
	default:
		return port.SignalAttack
	}
}

func (v AttackVariant) Effect() port.EffectID {
	switch v {
	case AttackUp:
		return port.EffectAttackUp
	case AttackDown:
		return port.EffectAttackDown
	default:
		return port.EffectAttackForward
	}
}

// Direction returns the sweep direction for a character facing the given way.
func (v AttackVariant) Direction(facing int) common.Vec2 {
	switch v {
	case AttackUp:
		return common.Vec2{X: 0, Y: 1}
	case AttackDown:
		return common.Vec2{X: 0, Y: -1}
	default:
		return common.Vec2{X: float64(facing), Y: 0}
	}
}

// Recoil returns the velocity applied when the swing connects. Forward
// recoil is mirrored by facing.
func (v AttackVariant) Recoil(t Tuning, facing int) common.Vec2 {
	switch v {
	case AttackUp:
		return t.AttackUpRecoil
	case AttackDown:
		return t.AttackDownRecoil
	default:
		return common.Vec2{X: float64(facing) * t.AttackForwardRecoil.X, Y: t.AttackForwardRecoil.Y}
	}
}

// AttackQuery describes one melee sweep. It is built per swing and never
// stored.
type AttackQuery struct {
	Origin    common.Vec2
	Radius    float64
	Direction common.Vec2
	Distance  float64
	Mask      port.Layer
}

func NewAttackQuery(origin common.Vec2, t Tuning, v AttackVariant, facing int) AttackQuery {
	return AttackQuery{
		Origin:    origin,
		Radius:    t.AttackRadius,
		Direction: v.Direction(facing),
		Distance:  t.AttackDistance,
		Mask:      port.AttackLayers,
	}
}
