package main

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wallclimb/controller"
	"github.com/milk9111/wallclimb/input/device"
	"github.com/milk9111/wallclimb/physics"
	"github.com/milk9111/wallclimb/prefabs"
	"github.com/milk9111/wallclimb/script"
	"golang.org/x/image/colornames"
)

const (
	screenWidth    = 1280
	screenHeight   = 720
	ticksPerSecond = 60
	dt             = 1.0 / ticksPerSecond
)

// Game owns one run of the level. A reset request rebuilds everything but
// the input and the file watcher.
type Game struct {
	logger  *slog.Logger
	input   *device.Ebiten
	watcher *prefabs.Watcher

	player prefabs.PlayerSpec
	level  *level
	body   *physics.Body
	ctl    *controller.Controller
	hits   *script.HitReactor
	anim   *signals
	fx     *effects

	resetPending bool
	resets       int
}

func NewGame(logger *slog.Logger, watch bool) (*Game, error) {
	g := &Game{
		logger: logger,
		input:  device.NewEbiten(device.DefaultBindings()),
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			// the embedded prefabs still work without a directory to watch
			logger.Warn("hot reload disabled", "dir", prefabs.Dir, "error", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) load() error {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	tuning, err := player.Tuning()
	if err != nil {
		return err
	}
	spec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return err
	}

	lvl := newLevel(spec, g.logger)
	hits, err := script.LoadHitReactor(spec.HitScript, lvl, g.logger)
	if err != nil {
		return err
	}

	body := lvl.space.AddActor(player.Spawn, player.Collider.Width, player.Collider.Height)
	anim := newSignals(g.logger)
	fx := newEffects()
	ctl, err := controller.New(tuning, controller.Ports{
		Physics:   body,
		Input:     g.input,
		Animation: anim,
		Effects:   fx,
		Scene:     g,
		Hits:      hits,
		Logger:    g.logger,
	})
	if err != nil {
		return err
	}
	body.SetListener(ctl)
	body.Touched = lvl.touchDamage(ctl)

	if g.ctl != nil {
		g.ctl.Destroy()
	}
	g.player, g.level, g.body, g.ctl = player, lvl, body, ctl
	g.hits, g.anim, g.fx = hits, anim, fx
	return nil
}

// RequestReset rebuilds the level after the current tick.
func (g *Game) RequestReset() {
	g.resetPending = true
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.RequestReset()
	}
	g.reloadChanged()

	g.input.Update()
	g.level.update()
	g.ctl.Tick()
	g.fx.update()
	g.level.space.Step(dt)

	if g.resetPending {
		g.resetPending = false
		if err := g.load(); err != nil {
			g.logger.Error("reset failed", "error", err)
		} else {
			g.resets++
			g.logger.Info("level reset", "resets", g.resets)
		}
	}
	return nil
}

func (g *Game) reloadChanged() {
	if g.watcher == nil {
		return
	}
	for _, c := range g.watcher.Poll() {
		log := g.logger.With("file", c.Name, "kind", c.Kind)
		switch {
		case c.Kind == prefabs.ChangeScript:
			if err := g.hits.Reload(); err != nil {
				log.Error("script reload failed", "error", err)
				continue
			}
			log.Info("script reloaded")
		case c.Name == prefabs.PlayerFile:
			player, err := prefabs.LoadPlayerSpec()
			if err == nil {
				err = g.retune(player)
			}
			if err != nil {
				log.Error("tuning reload failed", "error", err)
				continue
			}
			log.Info("tuning reloaded")
		case c.Name == prefabs.LevelFile:
			g.RequestReset()
		}
	}
}

func (g *Game) retune(player prefabs.PlayerSpec) error {
	tuning, err := player.Tuning()
	if err != nil {
		return err
	}
	if err := g.ctl.SetTuning(tuning); err != nil {
		return err
	}
	g.player = player
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.level.spec.Background.Or(colornames.Black))
	cam := newCamera(g.body.Position())
	g.level.draw(screen, cam)
	g.drawPlayer(screen, cam)

	state, ok := g.ctl.State()
	if !ok {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"tick %d  fps %.0f  resets %d\nhealth %d  life %s  facing %+d  charges %d\nvel (%.2f, %.2f)\ngrounded %t  climbing %t  falling %t\nsprintable %t  sprint ready %t  attackable %t\ninput %t  invulnerable %t\nsignals %s\ntimers %v",
		state.Tick, ebiten.ActualFPS(), g.resets,
		state.Health, state.Life, state.Facing, state.JumpCharges,
		state.Velocity.X, state.Velocity.Y,
		state.Grounded, state.Climbing, state.Falling,
		state.Sprintable, state.SprintReady, state.Attackable,
		state.InputEnabled, state.Invulnerable,
		g.anim.summary(),
		g.ctl.PendingTimers(),
	))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

