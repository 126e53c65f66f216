package port

import "strings"

type Axis string

const (
	AxisHorizontal Axis = "Horizontal"
	AxisVertical   Axis = "Vertical"
)

type Button string

const ButtonJump Button = "Jump"

type Key string

const (
	KeySprint Key = "K"
	KeyAttack Key = "J"
)

// Signal names an animator parameter.
type Signal string

const (
	SignalGrounded   Signal = "grounded"
	SignalDescending Signal = "descending"
	SignalJump       Signal = "jump"
	SignalJumpFirst  Signal = "jump_first"
	SignalJumpSecond Signal = "jump_second"
	SignalTurn       Signal = "turn"
	SignalRun        Signal = "run"
	SignalStop       Signal = "stop"
	SignalClimb      Signal = "climb"
	SignalClimbJump  Signal = "climb_jump"
	SignalSprint     Signal = "sprint"
	SignalAttack     Signal = "attack_forward"
	SignalAttackUp   Signal = "attack_up"
	SignalAttackDown Signal = "attack_down"
	SignalHurt       Signal = "hurt"
	SignalDead       Signal = "dead"
)

type EffectID string

const (
	EffectAttackUp      EffectID = "attack_up"
	EffectAttackForward EffectID = "attack_forward"
	EffectAttackDown    EffectID = "attack_down"
)

// Layer is a bit set of collision layers.
type Layer uint32

const (
	LayerPlatform Layer = 1 << iota
	LayerWall
	LayerPlayer
	LayerEnemy
	LayerTrap
	LayerSwitch
	LayerProjectile

	LayerNone Layer = 0
	LayerAll  Layer = ^Layer(0)
)

const (
	GroundLayers = LayerPlatform
	AttackLayers = LayerEnemy | LayerTrap | LayerSwitch | LayerProjectile
)

var layerNames = []struct {
	layer Layer
	name  string
}{
	{LayerPlatform, "platform"},
	{LayerWall, "wall"},
	{LayerPlayer, "player"},
	{LayerEnemy, "enemy"},
	{LayerTrap, "trap"},
	{LayerSwitch, "switch"},
	{LayerProjectile, "projectile"},
}

func (l Layer) Has(other Layer) bool {
	return l&other != 0
}

func (l Layer) String() string {
	if l == LayerNone {
		return "none"
	}
	var parts []string
	for _, ln := range layerNames {
		if l&ln.layer != 0 {
			parts = append(parts, ln.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "|")
}

// ParseLayer resolves a single layer name as used in prefab files.
func ParseLayer(name string) (Layer, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ln := range layerNames {
		if ln.name == name {
			return ln.layer, true
		}
	}
	return LayerNone, false
}

// Contact categorizes a collision reported by the contact feed.
type Contact int

const (
	ContactOther Contact = iota
	ContactClimbable
)

func (c Contact) String() string {
	switch c {
	case ContactClimbable:
		return "climbable"
	default:
		return "other"
	}
}
