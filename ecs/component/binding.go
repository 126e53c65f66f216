package component

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/wallclimb/port"
)

var ErrMissingPort = errors.New("binding: required port is nil")

// Binding connects an actor to its collaborators. Physics and Input are
// required; the rest fall back to no-ops.
type Binding struct {
	Physics   port.PhysicsQuery
	Input     port.Input
	Animation port.AnimationSink
	Effects   port.Effects
	Scene     port.Scene
	Hits      port.HitReceiver
	Logger    *slog.Logger
}

var BindingComponent = NewComponent[Binding]()

// Normalize fills optional collaborators with no-ops.
func (b *Binding) Normalize() error {
	if b.Physics == nil {
		return fmt.Errorf("%w: physics", ErrMissingPort)
	}
	if b.Input == nil {
		return fmt.Errorf("%w: input", ErrMissingPort)
	}
	if b.Animation == nil {
		b.Animation = nopAnimation{}
	}
	if b.Effects == nil {
		b.Effects = nopEffects{}
	}
	if b.Scene == nil {
		b.Scene = nopScene{}
	}
	if b.Hits == nil {
		b.Hits = nopHits{}
	}
	if b.Logger == nil {
		b.Logger = slog.Default()
	}
	return nil
}

type nopAnimation struct{}

func (nopAnimation) SetBool(port.Signal, bool) {}
func (nopAnimation) SetTrigger(port.Signal)    {}
func (nopAnimation) ResetTrigger(port.Signal)  {}

type nopEffects struct{}

func (nopEffects) Activate(port.EffectID)   {}
func (nopEffects) Deactivate(port.EffectID) {}
func (nopEffects) SetTint(bool)             {}

type nopScene struct{}

func (nopScene) RequestReset() {}

type nopHits struct{}

func (nopHits) OnAttackHit(port.Hit) {}
