package system

import (
	"math"

	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/port"
)

// restingSpeed is the largest vertical speed still treated as standing still.
const restingSpeed = 1e-3

var down = common.Vec2{X: 0, Y: -1}

// MovementSystem refreshes ground state and applies run, jump and fall input.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	eachActor(w, func(a actor) {
		refreshState(a)
		a.ch.InputGate = a.ch.AcceptsInput()
		if !a.ch.InputGate {
			return
		}
		move(a)
		jumpControl(w, a)
		fallControl(a)
	})
}

func refreshState(a actor) {
	ch, t, anim := a.ch, a.tun, a.b.Animation

	_, grounded := a.b.Physics.SweepFirst(a.b.Physics.Position(), t.GroundProbeRadius, down, t.GroundProbeDistance, port.GroundLayers)
	ch.Grounded = grounded
	anim.SetBool(port.SignalGrounded, grounded)

	ch.Velocity = a.b.Physics.Velocity()
	vy := ch.Velocity.Y
	anim.SetBool(port.SignalDescending, vy < 0)

	if grounded && math.Abs(vy) <= restingSpeed {
		anim.SetBool(port.SignalJump, false)
		anim.ResetTrigger(port.SignalJumpFirst)
		anim.ResetTrigger(port.SignalJumpSecond)
		anim.SetBool(port.SignalDescending, false)

		ch.JumpCharges = component.MaxJumpCharges
		ch.Climbing = false
		ch.Falling = false
		ch.Sprintable = true
	} else if ch.Climbing {
		// the wall grants exactly one jump, whatever was spent before
		ch.JumpCharges = 1
	}
}

func move(a actor) {
	ch, anim := a.ch, a.b.Animation

	h := a.b.Input.Axis(port.AxisHorizontal)
	v := a.b.Physics.Velocity()
	v.X = h * a.tun.MoveSpeed
	a.setVelocity(v)

	if !ch.Climbing {
		dir := float64(ch.Facing) * h
		if dir < 0 && !ch.Attacking {
			ch.Facing = common.Sign(h)
			if ch.Grounded {
				anim.SetTrigger(port.SignalTurn)
			}
		} else if dir > 0 {
			anim.SetBool(port.SignalRun, true)
		}
	}

	if h == 0 {
		anim.SetTrigger(port.SignalStop)
		anim.ResetTrigger(port.SignalTurn)
		anim.SetBool(port.SignalRun, false)
	} else {
		anim.ResetTrigger(port.SignalStop)
	}
}

func jumpControl(w *ecs.World, a actor) {
	if !a.b.Input.ButtonDown(port.ButtonJump) {
		return
	}
	if a.ch.Climbing {
		climbJump(w, a)
	} else if a.ch.JumpCharges > 0 {
		jump(a)
	}
}

func jump(a actor) {
	ch, anim := a.ch, a.b.Animation

	v := a.b.Physics.Velocity()
	v.Y = a.tun.JumpSpeed
	a.setVelocity(v)

	anim.SetBool(port.SignalJump, true)
	ch.JumpCharges--
	switch ch.JumpCharges {
	case 0:
		anim.SetTrigger(port.SignalJumpSecond)
	case 1:
		anim.SetTrigger(port.SignalJumpFirst)
	}
}

func climbJump(w *ecs.World, a actor) {
	launchFacing := a.ch.Facing
	// push away from the wall the character is facing
	a.applyImpulse(mirrored(a.tun.ClimbJumpForce, -launchFacing))

	a.b.Animation.SetTrigger(port.SignalClimbJump)
	a.b.Animation.SetTrigger(port.SignalJumpFirst)
	a.ch.InputEnabled = false

	w.Timers().After(a.e, a.tun.ClimbJumpDelay, "climb_jump", func(w *ecs.World, e ecs.Entity) {
		a, ok := lookup(w, e)
		if !ok {
			return
		}
		a.ch.InputEnabled = true
		a.b.Animation.ResetTrigger(port.SignalClimbJump)
		a.ch.Facing = -launchFacing
	})
}

func fallControl(a actor) {
	if a.b.Input.ButtonUp(port.ButtonJump) && !a.ch.Climbing {
		a.ch.Falling = true
		v := a.b.Physics.Velocity()
		v.Y = -a.tun.FallSpeed
		a.setVelocity(v)
		return
	}
	a.ch.Falling = false
}
