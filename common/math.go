package common

import "math"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Vec2 is a 2D vector in world units with +Y pointing up.
type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Sign returns -1 for negative values and +1 otherwise.
func Sign(f float64) int {
	if f < 0 {
		return -1
	}
	return 1
}
