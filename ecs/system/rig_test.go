package system

import (
	"log/slog"
	"testing"

	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/input"
	"github.com/milk9111/wallclimb/port"
	"github.com/milk9111/wallclimb/port/porttest"
	"github.com/stretchr/testify/require"
)

type hitLog struct {
	hits []port.Hit
}

func (h *hitLog) OnAttackHit(hit port.Hit) { h.hits = append(h.hits, hit) }

type resetCounter struct {
	n int
}

func (r *resetCounter) RequestReset() { r.n++ }

// rig is one actor in a world running every controller system in order.
type rig struct {
	w      *ecs.World
	e      ecs.Entity
	tun    component.Tuning
	phys   *porttest.Physics
	in     *input.Replay
	anim   *porttest.Animation
	fx     *porttest.Effects
	hits   *hitLog
	resets *resetCounter
}

func newRig(t *testing.T, tun component.Tuning) *rig {
	t.Helper()
	r := &rig{
		w: ecs.NewWorld(
			NewContactSystem(),
			NewSurvivalSystem(),
			NewMovementSystem(),
			NewCombatSystem(),
		),
		tun:    tun,
		phys:   porttest.NewPhysics(),
		in:     input.NewReplay(),
		anim:   porttest.NewAnimation(),
		fx:     porttest.NewEffects(),
		hits:   &hitLog{},
		resets: &resetCounter{},
	}
	r.e = ecs.CreateEntity(r.w)
	b := &component.Binding{
		Physics:   r.phys,
		Input:     r.in,
		Animation: r.anim,
		Effects:   r.fx,
		Scene:     r.resets,
		Hits:      r.hits,
		Logger:    slog.New(slog.DiscardHandler),
	}
	require.NoError(t, b.Normalize())
	require.NoError(t, ecs.Add(r.w, r.e, component.CharacterComponent.Kind(), component.NewCharacter(tun)))
	require.NoError(t, ecs.Add(r.w, r.e, component.TuningComponent.Kind(), &r.tun))
	require.NoError(t, ecs.Add(r.w, r.e, component.BindingComponent.Kind(), b))
	return r
}

// tick runs one update with the given input, or none.
func (r *rig) tick(frames ...input.Frame) {
	if len(frames) > 0 {
		r.in.Queue(frames[0])
	} else {
		r.in.Queue(input.Frame{})
	}
	r.in.Advance()
	r.w.Update()
}

func (r *rig) idle(n int) {
	for i := 0; i < n; i++ {
		r.tick()
	}
}

func (r *rig) ch() *component.Character {
	ch, _ := ecs.Get(r.w, r.e, component.CharacterComponent.Kind())
	return ch
}

func (r *rig) contact(phase ecs.ContactPhase, c port.Contact) {
	r.w.Contacts().Push(ecs.ContactEvent{Entity: r.e, Phase: phase, Contact: c})
}

func press(key port.Key) input.Frame {
	return input.Frame{}.Press(key)
}

var (
	jumpDown = input.Frame{JumpDown: true}
	jumpUp   = input.Frame{JumpUp: true}
)
