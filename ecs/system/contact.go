package system

import (
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/port"
)

// ContactSystem drains the contact feed and drives climb enter/exit. It runs
// first so contacts from the last physics step are seen before the state
// refresh, mirroring the order the engine reports them in.
type ContactSystem struct{}

func NewContactSystem() *ContactSystem {
	return &ContactSystem{}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Contacts().Drain() {
		if evt.Contact != port.ContactClimbable {
			continue
		}
		a, ok := lookup(w, evt.Entity)
		if !ok {
			continue
		}
		switch evt.Phase {
		case ecs.ContactBegin:
			if !a.ch.Grounded {
				enterClimb(a)
			}
		case ecs.ContactStay:
			// catches a wall grab whose begin event fired while grounded
			if a.ch.Falling && !a.ch.Climbing && !a.ch.Grounded {
				enterClimb(a)
			}
		case ecs.ContactEnd:
			exitClimb(a)
		}
	}
}

func enterClimb(a actor) {
	a.b.Physics.SetGravityScale(0)
	a.setVelocity(common.Vec2{X: 0, Y: -a.tun.ClimbCreepSpeed})
	a.ch.Climbing = true
	a.ch.Sprintable = true
	a.b.Animation.SetBool(port.SignalClimb, true)
	a.b.Logger.Debug("climb entered", "entity", a.e)
}

func exitClimb(a actor) {
	wasClimbing := a.ch.Climbing
	a.ch.Climbing = false
	a.b.Animation.SetBool(port.SignalClimb, false)
	a.b.Physics.SetGravityScale(1)
	if wasClimbing {
		a.b.Logger.Debug("climb exited", "entity", a.e)
	}
}
