package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/wallclimb/common"
	"github.com/milk9111/wallclimb/ecs/component"
	"github.com/milk9111/wallclimb/port"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	LevelFile  = "level.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the designer-facing tuning of the controlled character.
// Durations are in frames. Fields left out of the file keep their defaults.
type PlayerSpec struct {
	Name     string       `yaml:"name"`
	Spawn    common.Vec2  `yaml:"spawn"`
	Collider ColliderSpec `yaml:"collider"`

	Health int `yaml:"health"`

	MoveSpeed       float64     `yaml:"move_speed"`
	JumpSpeed       float64     `yaml:"jump_speed"`
	FallSpeed       float64     `yaml:"fall_speed"`
	ClimbJumpForce  common.Vec2 `yaml:"climb_jump_force"`
	ClimbCreepSpeed float64     `yaml:"climb_creep_speed"`
	ClimbJumpDelay  int         `yaml:"climb_jump_delay"`

	SprintSpeed    float64 `yaml:"sprint_speed"`
	SprintTime     int     `yaml:"sprint_time"`
	SprintInterval int     `yaml:"sprint_interval"`

	Attack AttackSpec `yaml:"attack"`
	Hurt   HurtSpec   `yaml:"hurt"`
	Death  DeathSpec  `yaml:"death"`

	GroundProbe ProbeSpec `yaml:"ground_probe"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AttackSpec struct {
	Interval       int         `yaml:"interval"`
	EffectLifetime int         `yaml:"effect_lifetime"`
	Radius         float64     `yaml:"radius"`
	Distance       float64     `yaml:"distance"`
	UpRecoil       common.Vec2 `yaml:"up_recoil"`
	ForwardRecoil  common.Vec2 `yaml:"forward_recoil"`
	DownRecoil     common.Vec2 `yaml:"down_recoil"`
}

type HurtSpec struct {
	Recoil      common.Vec2 `yaml:"recoil"`
	Time        int         `yaml:"time"`
	RecoverTime int         `yaml:"recover_time"`
}

type DeathSpec struct {
	Recoil     common.Vec2 `yaml:"recoil"`
	Delay      int         `yaml:"delay"`
	Bounciness float64     `yaml:"bounciness"`
	Friction   float64     `yaml:"friction"`
}

type ProbeSpec struct {
	Radius   float64 `yaml:"radius"`
	Distance float64 `yaml:"distance"`
}

// DefaultPlayerSpec mirrors component.DefaultTuning so a sparse file only
// overrides what it names.
func DefaultPlayerSpec() PlayerSpec {
	t := component.DefaultTuning()
	return PlayerSpec{
		Name:     "player",
		Collider: ColliderSpec{Width: 0.8, Height: 1.6},

		Health: t.Health,

		MoveSpeed:       t.MoveSpeed,
		JumpSpeed:       t.JumpSpeed,
		FallSpeed:       t.FallSpeed,
		ClimbJumpForce:  t.ClimbJumpForce,
		ClimbCreepSpeed: t.ClimbCreepSpeed,
		ClimbJumpDelay:  t.ClimbJumpDelay,

		SprintSpeed:    t.SprintSpeed,
		SprintTime:     t.SprintTime,
		SprintInterval: t.SprintInterval,

		Attack: AttackSpec{
			Interval:       t.AttackInterval,
			EffectLifetime: t.EffectLifetime,
			Radius:         t.AttackRadius,
			Distance:       t.AttackDistance,
			UpRecoil:       t.AttackUpRecoil,
			ForwardRecoil:  t.AttackForwardRecoil,
			DownRecoil:     t.AttackDownRecoil,
		},
		Hurt: HurtSpec{
			Recoil:      t.HurtRecoil,
			Time:        t.HurtTime,
			RecoverTime: t.HurtRecoverTime,
		},
		Death: DeathSpec{
			Recoil:     t.DeathRecoil,
			Delay:      t.DeathDelay,
			Bounciness: t.DeathBounciness,
			Friction:   t.DeathFriction,
		},
		GroundProbe: ProbeSpec{
			Radius:   t.GroundProbeRadius,
			Distance: t.GroundProbeDistance,
		},
	}
}

// Tuning converts the spec into controller tuning and validates it.
func (s PlayerSpec) Tuning() (component.Tuning, error) {
	t := component.Tuning{
		Health: s.Health,

		MoveSpeed:       s.MoveSpeed,
		JumpSpeed:       s.JumpSpeed,
		FallSpeed:       s.FallSpeed,
		ClimbJumpForce:  s.ClimbJumpForce,
		ClimbCreepSpeed: s.ClimbCreepSpeed,
		ClimbJumpDelay:  s.ClimbJumpDelay,

		SprintSpeed:    s.SprintSpeed,
		SprintTime:     s.SprintTime,
		SprintInterval: s.SprintInterval,

		AttackInterval:      s.Attack.Interval,
		EffectLifetime:      s.Attack.EffectLifetime,
		AttackRadius:        s.Attack.Radius,
		AttackDistance:      s.Attack.Distance,
		AttackUpRecoil:      s.Attack.UpRecoil,
		AttackForwardRecoil: s.Attack.ForwardRecoil,
		AttackDownRecoil:    s.Attack.DownRecoil,

		HurtRecoil:      s.Hurt.Recoil,
		HurtTime:        s.Hurt.Time,
		HurtRecoverTime: s.Hurt.RecoverTime,

		DeathRecoil:     s.Death.Recoil,
		DeathDelay:      s.Death.Delay,
		DeathBounciness: s.Death.Bounciness,
		DeathFriction:   s.Death.Friction,

		GroundProbeRadius:   s.GroundProbe.Radius,
		GroundProbeDistance: s.GroundProbe.Distance,
	}
	if err := t.Validate(); err != nil {
		return component.Tuning{}, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}
	return t, nil
}

// ParsePlayerSpec decodes data over the defaults.
func ParsePlayerSpec(data []byte) (PlayerSpec, error) {
	spec := DefaultPlayerSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: unmarshal player spec: %w", err)
	}
	return spec, nil
}

func LoadPlayerSpec() (PlayerSpec, error) {
	data, err := Load(PlayerFile)
	if err != nil {
		return PlayerSpec{}, fmt.Errorf("prefabs: load %s: %w", PlayerFile, err)
	}
	return ParsePlayerSpec(data)
}

// LevelSpec lays out the sandbox level.
type LevelSpec struct {
	Name       string         `yaml:"name"`
	Gravity    float64        `yaml:"gravity"`
	Boxes      []BoxSpec      `yaml:"boxes"`
	Platforms  []PlatformSpec `yaml:"platforms"`
	Background ColorSpec      `yaml:"background"`
	HitScript  string         `yaml:"hit_script"`
}

// BoxSpec is a static box spanning Min to Max.
type BoxSpec struct {
	Name  string      `yaml:"name"`
	Min   common.Vec2 `yaml:"min"`
	Max   common.Vec2 `yaml:"max"`
	Layer LayerSpec   `yaml:"layer"`
	Color ColorSpec   `yaml:"color"`

	// Damage is dealt on touch, for traps.
	Damage int `yaml:"damage"`
	// Health of a target hit by attacks. Zero means it cannot be destroyed.
	Health int `yaml:"health"`
}

// PlatformSpec is a kinematic platform shuttling between From and To.
type PlatformSpec struct {
	Name   string      `yaml:"name"`
	From   common.Vec2 `yaml:"from"`
	To     common.Vec2 `yaml:"to"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Frames int         `yaml:"frames"`
	Ease   string      `yaml:"ease"`
	Color  ColorSpec   `yaml:"color"`
}

func LoadLevelSpec() (LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](LevelFile)
	if err != nil {
		return LevelSpec{}, err
	}
	if err := spec.Validate(); err != nil {
		return LevelSpec{}, err
	}
	return spec, nil
}

func (s LevelSpec) Validate() error {
	if s.Gravity <= 0 {
		return fmt.Errorf("prefabs: level %s: gravity must be positive", s.Name)
	}
	for _, b := range s.Boxes {
		if b.Max.X <= b.Min.X || b.Max.Y <= b.Min.Y {
			return fmt.Errorf("prefabs: level %s: box %q is empty", s.Name, b.Name)
		}
	}
	for _, p := range s.Platforms {
		if p.Width <= 0 || p.Height <= 0 || p.Frames <= 0 {
			return fmt.Errorf("prefabs: level %s: platform %q needs a size and a positive frame count", s.Name, p.Name)
		}
	}
	return nil
}

// LayerSpec is a collision layer written by name.
type LayerSpec struct {
	port.Layer
}

func (l *LayerSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("layer must be a string")
	}
	layer, ok := port.ParseLayer(value.Value)
	if !ok {
		return fmt.Errorf("unknown layer: %s", value.Value)
	}
	l.Layer = layer
	return nil
}

// ColorSpec is a color written as an SVG color name or as #rrggbb[aa].
type ColorSpec struct {
	color.Color
}

// Or returns c, or fallback when c was not set.
func (c ColorSpec) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *ColorSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s, ok := strings.CutPrefix(value.Value, "#")
	if !ok || (len(s) != 6 && len(s) != 8) {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
