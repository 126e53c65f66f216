// Package controller drives a single player character: one world, one actor,
// one fixed-order tick.
package controller

import (
	"fmt"
	"log/slog"

	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/ecs/system"
	"github.com/milk9111/wallclimb/port"
)

// Ports are the collaborators of a controller. Physics and Input are
// required.
type Ports struct {
	Physics   port.PhysicsQuery
	Input     port.Input
	Animation port.AnimationSink
	Effects   port.Effects
	Scene     port.Scene
	Hits      port.HitReceiver
	Logger    *slog.Logger
}

// Controller owns the character state and its pending timers.
type Controller struct {
	world  *ecs.World
	actor  ecs.Entity
	logger *slog.Logger
}

// New validates tuning and builds a controller. Invalid tuning or missing
// required ports are reported here and never during simulation.
func New(tuning component.Tuning, ports Ports) (*Controller, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	binding := component.Binding{
		Physics:   ports.Physics,
		Input:     ports.Input,
		Animation: ports.Animation,
		Effects:   ports.Effects,
		Scene:     ports.Scene,
		Hits:      ports.Hits,
		Logger:    ports.Logger,
	}
	if err := binding.Normalize(); err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}

	w := ecs.NewWorld(
		system.NewContactSystem(),
		system.NewSurvivalSystem(),
		system.NewMovementSystem(),
		system.NewCombatSystem(),
	)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.CharacterComponent.Kind(), component.NewCharacter(tuning)); err != nil {
		return nil, fmt.Errorf("controller: add character: %w", err)
	}
	if err := ecs.Add(w, e, component.TuningComponent.Kind(), &tuning); err != nil {
		return nil, fmt.Errorf("controller: add tuning: %w", err)
	}
	if err := ecs.Add(w, e, component.BindingComponent.Kind(), &binding); err != nil {
		return nil, fmt.Errorf("controller: add binding: %w", err)
	}

	binding.Logger.Debug("controller created", "entity", e, "health", tuning.Health)
	return &Controller{world: w, actor: e, logger: binding.Logger}, nil
}

// Tick advances the simulation by one frame.
func (c *Controller) Tick() {
	c.world.Update()
}

// Now returns the number of ticks run so far.
func (c *Controller) Now() uint64 {
	return c.world.Tick()
}

// ApplyDamage hurts or kills the character immediately. It does not consult
// Vulnerable; damage sources should, or use QueueDamage.
func (c *Controller) ApplyDamage(amount int) bool {
	return system.ApplyDamage(c.world, c.actor, amount)
}

// QueueDamage defers damage to the start of the next tick, where it is
// dropped if the character is invulnerable by then. Safe to call from
// physics callbacks.
func (c *Controller) QueueDamage(amount int) {
	system.QueueDamage(c.world, c.actor, amount)
}

// Vulnerable reports whether damage sources may hit the character.
func (c *Controller) Vulnerable() bool {
	ch, ok := c.character()
	return ok && ch.Vulnerable()
}

func (c *Controller) OnBeginContact(contact port.Contact) {
	c.pushContact(ecs.ContactBegin, contact)
}

func (c *Controller) OnStayContact(contact port.Contact) {
	c.pushContact(ecs.ContactStay, contact)
}

func (c *Controller) OnEndContact(contact port.Contact) {
	c.pushContact(ecs.ContactEnd, contact)
}

func (c *Controller) pushContact(phase ecs.ContactPhase, contact port.Contact) {
	if !ecs.IsAlive(c.world, c.actor) {
		return
	}
	c.world.Contacts().Push(ecs.ContactEvent{Entity: c.actor, Phase: phase, Contact: contact})
}

// SetTuning swaps tuning between ticks. Pending timers keep their scheduled
// tick; chained stages read the new values.
func (c *Controller) SetTuning(tuning component.Tuning) error {
	if err := tuning.Validate(); err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	t, ok := ecs.Get(c.world, c.actor, component.TuningComponent.Kind())
	if !ok {
		return component.ErrEntityNotAlive
	}
	*t = tuning
	c.logger.Info("tuning updated", "entity", c.actor)
	return nil
}

// PendingTimers lists the labels of waiting continuations in firing order.
func (c *Controller) PendingTimers() []string {
	return c.world.Timers().PendingFor(c.actor)
}

// Destroy drops the character and every continuation it scheduled.
func (c *Controller) Destroy() {
	if ecs.DestroyEntity(c.world, c.actor) {
		c.logger.Debug("controller destroyed", "entity", c.actor)
	}
}

func (c *Controller) character() (*component.Character, bool) {
	return ecs.Get(c.world, c.actor, component.CharacterComponent.Kind())
}

// State is a read-only snapshot of the character.
type State struct {
	Tick         uint64
	Health       int
	Facing       int
	JumpCharges  int
	Velocity     common.Vec2
	Life         component.Life
	Grounded     bool
	Climbing     bool
	Sprintable   bool
	SprintReady  bool
	InputEnabled bool
	Falling      bool
	Attackable   bool
	Attacking    bool
	Invulnerable bool
	Tinted       bool
}

// State returns a snapshot; ok is false once the controller is destroyed.
func (c *Controller) State() (State, bool) {
	ch, ok := c.character()
	if !ok {
		return State{}, false
	}
	return State{
		Tick:         c.world.Tick(),
		Health:       ch.Health,
		Facing:       ch.Facing,
		JumpCharges:  ch.JumpCharges,
		Velocity:     ch.Velocity,
		Life:         ch.Life,
		Grounded:     ch.Grounded,
		Climbing:     ch.Climbing,
		Sprintable:   ch.Sprintable,
		SprintReady:  ch.SprintReady,
		InputEnabled: ch.AcceptsInput(),
		Falling:      ch.Falling,
		Attackable:   ch.Attackable,
		Attacking:    ch.Attacking,
		Invulnerable: ch.Invulnerable,
		Tinted:       ch.Tinted,
	}, true
}
