package links

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the course plane: a tangent, a normal or an
// anchor offset.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of v × o.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}

// Perp returns v rotated by a quarter turn clockwise in a y-up frame, ⟨y, −x⟩.
//
// For a tangent of a counter-clockwise ring this is the outward normal.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// UnitNormal returns the normalized [Vec2.Perp] of v. It reports false if v
// is too short to define a direction.
func (v Vec2) UnitNormal() (Vec2, bool) {
	h := v.Hypot()
	if h <= minSegmentLength || math.IsNaN(h) {
		return Vec2{}, false
	}
	return v.Perp().Div(h), true
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Mul(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

func (v Vec2) Div(f float64) Vec2 {
	return Vec2{X: v.X / f, Y: v.Y / f}
}
