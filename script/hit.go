// Package script runs designer-written tengo scripts against the level.
package script

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/wallclimb/port"
	"github.com/milk9111/wallclimb/prefabs"
)

var ErrNoHandler = errors.New("script: on_hit is not defined")

// Engine is what a hit script may do to the level.
type Engine interface {
	Damage(name string, amount int)
	Toggle(name string)
	Destroy(name string)
}

const hitDispatchScript = `
if __phase == "hit" {
	on_hit(__engine, __hit)
}
`

// HitReactor forwards attack hits to the script's on_hit function. It
// implements port.HitReceiver and must be used from the game loop only.
type HitReactor struct {
	name     string
	compiled *tengo.Compiled
	engine   *tengo.ImmutableMap
	logger   *slog.Logger
}

var _ port.HitReceiver = (*HitReactor)(nil)

// LoadHitReactor compiles the named script from the prefab scripts.
func LoadHitReactor(name string, engine Engine, logger *slog.Logger) (*HitReactor, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return NewHitReactor(name, src, engine, logger)
}

func NewHitReactor(name string, src []byte, engine Engine, logger *slog.Logger) (*HitReactor, error) {
	if logger == nil {
		logger = slog.Default()
	}
	r := &HitReactor{name: name, logger: logger.With("script", name)}
	r.engine = r.buildEngine(engine)
	if err := r.compile(src); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload recompiles the script from the prefab scripts. On failure the
// previous script stays active.
func (r *HitReactor) Reload() error {
	src, err := prefabs.LoadScript(r.name)
	if err != nil {
		return fmt.Errorf("script: load %s: %w", r.name, err)
	}
	return r.compile(src)
}

func (r *HitReactor) compile(src []byte) error {
	bare, err := newScript(src).Compile()
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", r.name, err)
	}
	if err := bare.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", r.name, err)
	}
	if !bare.IsDefined("on_hit") {
		return fmt.Errorf("%w: %s", ErrNoHandler, r.name)
	}

	dispatch := newScript([]byte(string(src) + "\n" + hitDispatchScript))
	_ = dispatch.Add("__phase", "")
	_ = dispatch.Add("__engine", map[string]any{})
	_ = dispatch.Add("__hit", map[string]any{})
	compiled, err := dispatch.Compile()
	if err != nil {
		return fmt.Errorf("script: compile %s: %w", r.name, err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("script: run %s: %w", r.name, err)
	}
	r.compiled = compiled
	return nil
}

func newScript(src []byte) *tengo.Script {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	return s
}

func (r *HitReactor) OnAttackHit(hit port.Hit) {
	if err := r.run(hit); err != nil {
		r.logger.Error("on_hit failed", "layer", hit.Layer, "error", err)
	}
}

func (r *HitReactor) run(hit port.Hit) error {
	if r == nil || r.compiled == nil {
		return fmt.Errorf("script: not compiled")
	}
	if err := r.compiled.Set("__phase", "hit"); err != nil {
		return err
	}
	if err := r.compiled.Set("__engine", r.engine); err != nil {
		return err
	}
	if err := r.compiled.Set("__hit", map[string]any{
		"layer": hit.Layer.String(),
		"name":  ObjectName(hit.Object),
		"x":     hit.Point.X,
		"y":     hit.Point.Y,
	}); err != nil {
		return err
	}
	return r.compiled.Run()
}

func (r *HitReactor) buildEngine(engine Engine) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["damage"] = &tengo.UserFunction{Name: "damage", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if engine == nil || len(args) < 2 {
			return tengo.FalseValue, nil
		}
		name := objectAsString(args[0])
		amount, ok := tengo.ToInt(args[1])
		if name == "" || !ok {
			return tengo.FalseValue, nil
		}
		engine.Damage(name, amount)
		return tengo.TrueValue, nil
	}}

	values["toggle"] = &tengo.UserFunction{Name: "toggle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if engine == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := objectAsString(args[0])
		if name == "" {
			return tengo.FalseValue, nil
		}
		engine.Toggle(name)
		return tengo.TrueValue, nil
	}}

	values["destroy"] = &tengo.UserFunction{Name: "destroy", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if engine == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		name := objectAsString(args[0])
		if name == "" {
			return tengo.FalseValue, nil
		}
		engine.Destroy(name)
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, objectAsString(arg))
		}
		r.logger.Info(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

// ObjectName is the name a script sees for a hit object.
func ObjectName(object any) string {
	switch o := object.(type) {
	case nil:
		return ""
	case string:
		return o
	case fmt.Stringer:
		return o.String()
	default:
		return fmt.Sprint(o)
	}
}

func objectAsString(obj tengo.Object) string {
	if s, ok := tengo.ToString(obj); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
