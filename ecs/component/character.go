package component

import "github.com/milk9111/wallclimb/common"

// Life is the survival axis of the character state machine.
type Life int

const (
	LifeNormal Life = iota
	LifeHurt
	LifeDead
)

func (l Life) String() string {
	switch l {
	case LifeNormal:
		return "normal"
	case LifeHurt:
		return "hurt"
	case LifeDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Character is the mutable state of one controlled actor. Facing is +1 for
// right and -1 for left.
type Character struct {
	Health      int
	Facing      int
	JumpCharges int
	Velocity    common.Vec2

	Grounded     bool
	Climbing     bool
	Sprintable   bool
	SprintReady  bool
	InputEnabled bool
	Falling      bool
	Attackable   bool

	// Attacking is true while an attack effect is out; facing is frozen.
	Attacking    bool
	Invulnerable bool
	Tinted       bool
	Life         Life

	// InputGate is AcceptsInput sampled once at the start of the tick, so a
	// window opened by movement does not hide sprint or attack in the same
	// tick.
	InputGate bool
}

// NewCharacter returns a character at full health facing right. Sprinting
// stays closed until the first landing or wall grab.
func NewCharacter(t Tuning) *Character {
	return &Character{
		Health:       t.Health,
		Facing:       1,
		JumpCharges:  MaxJumpCharges,
		InputEnabled: true,
		SprintReady:  true,
		Attackable:   true,
	}
}

// MaxJumpCharges is the number of jumps available after landing.
const MaxJumpCharges = 2

// AcceptsInput reports whether input-driven logic may run. Death closes the
// gate permanently even if a stale recovery timer reopens InputEnabled.
func (c *Character) AcceptsInput() bool {
	return c != nil && c.InputEnabled && c.Life != LifeDead
}

// Vulnerable is the predicate damage sources consult before applying damage.
func (c *Character) Vulnerable() bool {
	return c != nil && !c.Invulnerable && c.Life != LifeDead
}

var CharacterComponent = NewComponent[Character]()

// PendingDamage collects damage reported from inside a physics step; it is
// applied at the start of the next tick.
type PendingDamage struct {
	Amounts []int
}

var PendingDamageComponent = NewComponent[PendingDamage]()
