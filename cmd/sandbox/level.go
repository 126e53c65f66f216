package main

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/controller"
	"github.com/milk9111/wallclimb/physics"
	"github.com/milk9111/wallclimb/port"
	"github.com/milk9111/wallclimb/prefabs"
	"github.com/milk9111/wallclimb/script"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
)

const flashFrames = 10

var easings = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"Linear":    ease.Linear,
	"InOutQuad": ease.InOutQuad,
	"InOutSine": ease.InOutSine,
	"OutBounce": ease.OutBounce,
}

// target is a static box the character can touch or attack.
type target struct {
	spec   prefabs.BoxSpec
	shape  *cp.Shape
	health int
	on     bool
	gone   bool
	flash  *gween.Tween
	bright float32
}

func (t *target) String() string {
	return t.spec.Name
}

type platform struct {
	spec prefabs.PlatformSpec
	body *cp.Body
	seq  *gween.Sequence
}

type level struct {
	spec      prefabs.LevelSpec
	space     *physics.Space
	targets   []*target
	byName    map[string]*target
	platforms []*platform
	logger    *slog.Logger
}

var _ script.Engine = (*level)(nil)

func newLevel(spec prefabs.LevelSpec, logger *slog.Logger) *level {
	l := &level{
		spec:   spec,
		space:  physics.NewSpace(spec.Gravity),
		byName: make(map[string]*target),
		logger: logger.With("level", spec.Name),
	}
	for _, b := range spec.Boxes {
		t := &target{spec: b, health: b.Health}
		t.shape = l.space.AddBox(b.Min, b.Max, b.Layer.Layer, t)
		l.targets = append(l.targets, t)
		if b.Name != "" {
			l.byName[b.Name] = t
		}
	}
	for _, p := range spec.Platforms {
		easing, ok := easings[p.Ease]
		if !ok {
			l.logger.Warn("unknown easing, using linear", "platform", p.Name, "ease", p.Ease)
			easing = ease.Linear
		}
		frames := float32(p.Frames)
		seq := gween.NewSequence(
			gween.New(0, 1, frames, easing),
			gween.New(1, 0, frames, easing),
		)
		body := l.space.AddKinematicBox(p.From, p.Width, p.Height, port.LayerPlatform, p.Name)
		l.platforms = append(l.platforms, &platform{spec: p, body: body, seq: seq})
	}
	return l
}

// update moves platforms by velocity so bodies resting on them are carried.
func (l *level) update() {
	for _, p := range l.platforms {
		progress, _, done := p.seq.Update(1)
		if done {
			p.seq.Reset()
		}
		from, to := p.spec.From, p.spec.To
		want := common.Vec2{
			X: from.X + (to.X-from.X)*float64(progress),
			Y: from.Y + (to.Y-from.Y)*float64(progress),
		}
		pos := p.body.Position()
		p.body.SetVelocity((want.X-pos.X)/dt, (want.Y-pos.Y)/dt)
	}
	for _, t := range l.targets {
		if t.flash == nil {
			continue
		}
		var done bool
		t.bright, done = t.flash.Update(1)
		if done {
			t.flash = nil
			t.bright = 0
		}
	}
}

// touchDamage hurts the character when it touches a box that deals damage.
// It runs inside the physics step, so damage is queued.
func (l *level) touchDamage(ctl *controller.Controller) func(port.Hit) {
	return func(hit port.Hit) {
		t, ok := hit.Object.(*target)
		if !ok || t.gone || t.spec.Damage <= 0 || !ctl.Vulnerable() {
			return
		}
		ctl.QueueDamage(t.spec.Damage)
	}
}

func (l *level) Damage(name string, amount int) {
	t, ok := l.byName[name]
	if !ok || t.gone {
		return
	}
	t.flash = gween.New(1, 0, flashFrames, ease.OutQuad)
	if t.spec.Health <= 0 {
		return
	}
	t.health -= amount
	l.logger.Debug("target damaged", "target", name, "health", t.health)
	if t.health <= 0 {
		l.Destroy(name)
	}
}

func (l *level) Toggle(name string) {
	t, ok := l.byName[name]
	if !ok || t.gone {
		return
	}
	t.on = !t.on
	t.flash = gween.New(1, 0, flashFrames, ease.OutQuad)
	l.logger.Info("switch toggled", "target", name, "on", t.on)
}

// Destroy removes a target. Hit scripts run during the controller tick, never
// inside the physics step.
func (l *level) Destroy(name string) {
	t, ok := l.byName[name]
	if !ok || t.gone {
		return
	}
	t.gone = true
	l.space.Space().RemoveShape(t.shape)
	l.logger.Info("target destroyed", "target", name)
}

func (l *level) draw(screen *ebiten.Image, cam camera) {
	for _, t := range l.targets {
		if t.gone {
			continue
		}
		clr := t.spec.Color.Or(colornames.Gray)
		if t.on {
			clr = colornames.Lime
		}
		cam.fillRect(screen, t.spec.Min, t.spec.Max, brighten(clr, t.bright))
	}
	for _, p := range l.platforms {
		pos := p.body.Position()
		half := common.Vec2{X: p.spec.Width / 2, Y: p.spec.Height / 2}
		center := common.Vec2{X: pos.X, Y: pos.Y}
		cam.fillRect(screen, center.Add(half.Scale(-1)), center.Add(half), p.spec.Color.Or(colornames.Seagreen))
	}
}

// brighten blends c towards white by amount in [0, 1].
func brighten(c color.Color, amount float32) color.Color {
	if amount <= 0 {
		return c
	}
	r, g, b, a := c.RGBA()
	mix := func(v uint32) uint8 {
		f := float32(v>>8) + (255-float32(v>>8))*amount
		return uint8(min(f, 255))
	}
	return color.NRGBA{R: mix(r), G: mix(g), B: mix(b), A: uint8(a >> 8)}
}
