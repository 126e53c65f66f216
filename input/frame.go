// Package input holds per-tick input snapshots and scripted playback of them.
package input

import "github.com/milk9111/wallclimb/port"

// Frame is the input state of a single tick.
type Frame struct {
	Horizontal float64
	Vertical   float64
	JumpDown   bool
	JumpUp     bool
	Keys       map[port.Key]bool
}

var _ port.Input = Frame{}

func (f Frame) Axis(name port.Axis) float64 {
	switch name {
	case port.AxisHorizontal:
		return f.Horizontal
	case port.AxisVertical:
		return f.Vertical
	}
	return 0
}

func (f Frame) ButtonDown(name port.Button) bool {
	return name == port.ButtonJump && f.JumpDown
}

func (f Frame) ButtonUp(name port.Button) bool {
	return name == port.ButtonJump && f.JumpUp
}

func (f Frame) KeyDown(code port.Key) bool {
	return f.Keys[code]
}

// Press returns a copy of f with code pressed.
func (f Frame) Press(code port.Key) Frame {
	keys := make(map[port.Key]bool, len(f.Keys)+1)
	for k, v := range f.Keys {
		keys[k] = v
	}
	keys[code] = true
	f.Keys = keys
	return f
}

// Replay plays back a fixed sequence of frames, one per Advance. Past the end
// of the sequence it reports no input.
type Replay struct {
	frames []Frame
	next   int
	cur    Frame
}

var _ port.Input = (*Replay)(nil)

func NewReplay(frames ...Frame) *Replay {
	return &Replay{frames: frames}
}

// Advance moves to the next frame.
func (r *Replay) Advance() {
	if r.next < len(r.frames) {
		r.cur = r.frames[r.next]
		r.next++
		return
	}
	r.cur = Frame{}
}

// Queue appends frames to the end of the sequence.
func (r *Replay) Queue(frames ...Frame) {
	r.frames = append(r.frames, frames...)
}

// Done reports whether every frame has been played.
func (r *Replay) Done() bool {
	return r.next >= len(r.frames)
}

func (r *Replay) Axis(name port.Axis) float64      { return r.cur.Axis(name) }
func (r *Replay) ButtonDown(name port.Button) bool { return r.cur.ButtonDown(name) }
func (r *Replay) ButtonUp(name port.Button) bool   { return r.cur.ButtonUp(name) }
func (r *Replay) KeyDown(code port.Key) bool       { return r.cur.KeyDown(code) }
