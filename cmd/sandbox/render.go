package main

import (
	"image/color"
	"log/slog"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/port"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"
)

const (
	pixelsPerTile = 32
	blinkFrames   = 6
)

// camera maps world units (+Y up) to screen pixels centered on a point.
type camera struct {
	center common.Vec2
}

func newCamera(follow common.Vec2) camera {
	return camera{center: common.Vec2{X: follow.X, Y: max(follow.Y, 4)}}
}

func (c camera) toScreen(v common.Vec2) (float32, float32) {
	x := (v.X-c.center.X)*pixelsPerTile + screenWidth/2
	y := screenHeight/2 - (v.Y-c.center.Y)*pixelsPerTile
	return float32(x), float32(y)
}

func (c camera) fillRect(screen *ebiten.Image, lo, hi common.Vec2, clr color.Color) {
	x, y := c.toScreen(common.Vec2{X: lo.X, Y: hi.Y})
	w := float32((hi.X - lo.X) * pixelsPerTile)
	h := float32((hi.Y - lo.Y) * pixelsPerTile)
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)
}

func (g *Game) drawPlayer(screen *ebiten.Image, cam camera) {
	state, ok := g.ctl.State()
	if !ok {
		return
	}
	pos := g.body.Position()
	half := common.Vec2{X: g.player.Collider.Width / 2, Y: g.player.Collider.Height / 2}

	body := color.Color(colornames.Skyblue)
	if state.Climbing {
		body = colornames.Plum
	}
	if state.Tinted {
		body = fade(colornames.Tomato, g.fx.blink)
	}
	cam.fillRect(screen, pos.Add(half.Scale(-1)), pos.Add(half), body)

	eye := common.Vec2{X: pos.X + float64(state.Facing)*half.X*0.6, Y: pos.Y + half.Y*0.5}
	cam.fillRect(screen, eye.Add(common.Vec2{X: -0.1, Y: -0.1}), eye.Add(common.Vec2{X: 0.1, Y: 0.1}), colornames.White)

	reach := g.player.Attack.Distance
	radius := g.player.Attack.Radius
	for _, id := range g.fx.activeEffects() {
		var from, to common.Vec2
		switch id {
		case port.EffectAttackForward:
			dir := float64(state.Facing)
			from = common.Vec2{X: pos.X, Y: pos.Y - radius}
			to = common.Vec2{X: pos.X + dir*reach, Y: pos.Y + radius}
			if dir < 0 {
				from.X, to.X = to.X, from.X
			}
		case port.EffectAttackUp:
			from = common.Vec2{X: pos.X - radius, Y: pos.Y}
			to = common.Vec2{X: pos.X + radius, Y: pos.Y + reach}
		case port.EffectAttackDown:
			from = common.Vec2{X: pos.X - radius, Y: pos.Y - reach}
			to = common.Vec2{X: pos.X + radius, Y: pos.Y}
		}
		cam.fillRect(screen, from, to, fade(colornames.Gold, 0.6))
	}
}

func fade(c color.RGBA, alpha float32) color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * min(max(alpha, 0), 1))}
}

// signals is the sandbox animator: it logs parameter changes and keeps the
// current bools for the HUD.
type signals struct {
	bools  map[port.Signal]bool
	last   port.Signal
	logger *slog.Logger
}

var _ port.AnimationSink = (*signals)(nil)

func newSignals(logger *slog.Logger) *signals {
	return &signals{bools: make(map[port.Signal]bool), logger: logger.With("sink", "animation")}
}

func (s *signals) SetBool(signal port.Signal, value bool) {
	if s.bools[signal] != value {
		s.logger.Debug("bool", "signal", signal, "value", value)
	}
	s.bools[signal] = value
}

func (s *signals) SetTrigger(signal port.Signal) {
	if signal != port.SignalStop {
		s.last = signal
		s.logger.Debug("trigger", "signal", signal)
	}
}

func (s *signals) ResetTrigger(port.Signal) {}

func (s *signals) summary() string {
	var on []string
	for signal, v := range s.bools {
		if v {
			on = append(on, string(signal))
		}
	}
	slices.Sort(on)
	return strings.Join(on, " ") + "  last trigger " + string(s.last)
}

// effects tracks attack effects and drives the hurt blink.
type effects struct {
	active map[port.EffectID]bool
	tinted bool
	seq    *gween.Sequence
	blink  float32
}

var _ port.Effects = (*effects)(nil)

func newEffects() *effects {
	return &effects{
		active: make(map[port.EffectID]bool),
		blink:  1,
		seq: gween.NewSequence(
			gween.New(1, 0.3, blinkFrames, ease.InOutSine),
			gween.New(0.3, 1, blinkFrames, ease.InOutSine),
		),
	}
}

func (e *effects) Activate(id port.EffectID)   { e.active[id] = true }
func (e *effects) Deactivate(id port.EffectID) { delete(e.active, id) }

func (e *effects) SetTint(on bool) {
	e.tinted = on
	if !on {
		e.seq.Reset()
		e.blink = 1
	}
}

func (e *effects) update() {
	if !e.tinted {
		return
	}
	var done bool
	e.blink, _, done = e.seq.Update(1)
	if done {
		e.seq.Reset()
	}
}

func (e *effects) activeEffects() []port.EffectID {
	ids := make([]port.EffectID, 0, len(e.active))
	for id := range e.active {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
