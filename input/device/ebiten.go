// Package device reads keyboard and gamepad state through Ebiten.
package device

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wallclimb/input"
	"github.com/milk9111/wallclimb/port"
)

const stickDeadzone = 0.3

// Bindings maps controller inputs to physical keys and gamepad buttons.
type Bindings struct {
	Left, Right, Up, Down []ebiten.Key
	Jump                  []ebiten.Key
	Keys                  map[port.Key][]ebiten.Key

	PadJump ebiten.StandardGamepadButton
	PadKeys map[port.Key]ebiten.StandardGamepadButton
}

func DefaultBindings() Bindings {
	return Bindings{
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Jump:  []ebiten.Key{ebiten.KeySpace},
		Keys: map[port.Key][]ebiten.Key{
			port.KeySprint: {ebiten.KeyK, ebiten.KeyShiftLeft},
			port.KeyAttack: {ebiten.KeyJ},
		},
		PadJump: ebiten.StandardGamepadButtonRightBottom,
		PadKeys: map[port.Key]ebiten.StandardGamepadButton{
			port.KeySprint: ebiten.StandardGamepadButtonRightLeft,
			port.KeyAttack: ebiten.StandardGamepadButtonRightTop,
		},
	}
}

// Ebiten samples keyboard and the first gamepad once per Update so every
// query within a tick sees the same state.
type Ebiten struct {
	bindings Bindings
	frame    input.Frame
}

var _ port.Input = (*Ebiten)(nil)

func NewEbiten(b Bindings) *Ebiten {
	return &Ebiten{bindings: b}
}

// Update polls devices. Call it once per game tick before the controller.
func (i *Ebiten) Update() {
	b := i.bindings
	f := input.Frame{Keys: make(map[port.Key]bool)}

	f.Horizontal = keyAxis(b.Left, b.Right)
	f.Vertical = keyAxis(b.Down, b.Up)
	f.JumpDown = anyJustPressed(b.Jump)
	f.JumpUp = anyJustReleased(b.Jump)
	for key, codes := range b.Keys {
		if anyJustPressed(codes) {
			f.Keys[key] = true
		}
	}

	if ids := ebiten.AppendGamepadIDs(nil); len(ids) > 0 {
		gid := ids[0]
		if x := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal); x < -stickDeadzone {
			f.Horizontal = -1
		} else if x > stickDeadzone {
			f.Horizontal = 1
		}
		// stick up is negative on standard gamepads
		if y := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickVertical); y < -stickDeadzone {
			f.Vertical = 1
		} else if y > stickDeadzone {
			f.Vertical = -1
		}
		f.JumpDown = f.JumpDown || inpututil.IsStandardGamepadButtonJustPressed(gid, b.PadJump)
		f.JumpUp = f.JumpUp || inpututil.IsStandardGamepadButtonJustReleased(gid, b.PadJump)
		for key, btn := range b.PadKeys {
			if inpututil.IsStandardGamepadButtonJustPressed(gid, btn) {
				f.Keys[key] = true
			}
		}
	}

	i.frame = f
}

// Frame returns the state sampled by the last Update.
func (i *Ebiten) Frame() input.Frame {
	return i.frame
}

func (i *Ebiten) Axis(name port.Axis) float64      { return i.frame.Axis(name) }
func (i *Ebiten) ButtonDown(name port.Button) bool { return i.frame.ButtonDown(name) }
func (i *Ebiten) ButtonUp(name port.Button) bool   { return i.frame.ButtonUp(name) }
func (i *Ebiten) KeyDown(code port.Key) bool       { return i.frame.KeyDown(code) }

func keyAxis(neg, pos []ebiten.Key) float64 {
	var v float64
	if anyPressed(neg) {
		v -= 1
	}
	if anyPressed(pos) {
		v += 1
	}
	return v
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyJustReleased(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return true
		}
	}
	return false
}
