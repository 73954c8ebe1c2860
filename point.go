package links

import (
	"fmt"
	"math"
)

// Point is a position in the course plane. X runs along the hole from tee to
// green, Y is the lateral axis (the z axis of the heightmap).
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate moves pt by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp interpolates linearly from pt (t = 0) to o (t = 1).
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

func (pt Point) DistanceSquared(o Point) float64 {
	return o.Sub(pt).Hypot2()
}

// Coincides reports whether pt and o are within tol of each other.
func (pt Point) Coincides(o Point, tol float64) bool {
	return pt.DistanceSquared(o) <= tol*tol
}

func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
