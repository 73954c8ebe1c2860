package links

import (
	"fmt"
	"iter"
	"math"
)

// closureTolerance is how far the last point of a [Polygon] may be from its
// first point for the ring to count as closed.
const closureTolerance = 1e-6

// Polygon is a closed ring of points. The last point repeats the first, so a
// polygon with n distinct vertices has n+1 points and n edges.
type Polygon []Point

// Open returns the ring's distinct vertices, without the closing point.
func (p Polygon) Open() []Point {
	if len(p) > 1 && p.IsClosed() {
		return p[:len(p)-1]
	}
	return p
}

// IsClosed reports whether the first and last points coincide within
// closureTolerance.
func (p Polygon) IsClosed() bool {
	return len(p) > 0 && p[0].Coincides(p[len(p)-1], closureTolerance)
}

// Edges returns an iterator over the ring's edges. An unclosed polygon is
// treated as if its last point were joined to its first.
func (p Polygon) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line{p[i-1], p[i]}) {
				return
			}
		}
		if len(p) > 1 && !p.IsClosed() {
			yield(Line{p[len(p)-1], p[0]})
		}
	}
}

// Validate checks the invariants every generated boundary upholds: at least
// three distinct vertices, closure, and no two consecutive points
// coinciding.
func (p Polygon) Validate() error {
	if len(p) < 4 {
		return fmt.Errorf("%w: polygon has %d points, need at least 4", ErrDegenerateGeometry, len(p))
	}
	if !p.IsClosed() {
		return fmt.Errorf("%w: polygon is not closed (%v vs %v)", ErrDegenerateGeometry, p[0], p[len(p)-1])
	}
	for i := 1; i < len(p); i++ {
		if p[i].IsNaN() || p[i].IsInf() {
			return fmt.Errorf("%w: vertex %d is %v", ErrDegenerateGeometry, i, p[i])
		}
		if p[i].Coincides(p[i-1], minSegmentLength) {
			return fmt.Errorf("%w: vertices %d and %d coincide at %v", ErrDegenerateGeometry, i-1, i, p[i])
		}
	}
	return nil
}

// SignedArea returns the signed area of the ring. It is positive for
// counter-clockwise rings in a y-up frame.
func (p Polygon) SignedArea() float64 {
	var area float64
	for l := range p.Edges() {
		area += l.SignedArea()
	}
	return area
}

// Perimeter returns the total length of the ring's edges.
func (p Polygon) Perimeter() float64 {
	var total float64
	for l := range p.Edges() {
		total += l.Length()
	}
	return total
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing the ring.
func (p Polygon) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	bbox := NewRectFromPoints(p[0], p[0])
	for _, pt := range p[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Winding returns the winding number of the ring around pt. It is 1 for
// points inside a counter-clockwise ring, −1 inside a clockwise one and 0
// outside.
func (p Polygon) Winding(pt Point) int {
	var w int
	for l := range p.Edges() {
		w += l.Winding(pt)
	}
	return w
}

// Contains reports whether pt is inside the ring under the nonzero rule.
func (p Polygon) Contains(pt Point) bool {
	if len(p) < 3 || !p.BoundingBox().Contains(pt) {
		return false
	}
	return p.Winding(pt) != 0
}

// Distance returns the distance from pt to the nearest point on the ring.
func (p Polygon) Distance(pt Point) float64 {
	best := math.Inf(1)
	for l := range p.Edges() {
		d, _ := l.Nearest(pt)
		best = min(best, d)
	}
	return math.Sqrt(best)
}

// Nearest returns the point of the ring closest to pt and the edge it lies
// on.
func (p Polygon) Nearest(pt Point) (q Point, edge Line) {
	best := math.Inf(1)
	for l := range p.Edges() {
		d, t := l.Nearest(pt)
		if d < best {
			best, q, edge = d, l.Eval(t), l
		}
	}
	return q, edge
}

// Translate returns a copy of the ring moved by v.
func (p Polygon) Translate(v Vec2) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

// SelfIntersects reports whether two non-adjacent edges of the ring cross.
func (p Polygon) SelfIntersects() bool {
	var edges []Line
	for l := range p.Edges() {
		edges = append(edges, l)
	}
	n := len(edges)
	boxes := make([]Rect, n)
	for i, e := range edges {
		boxes[i] = NewRectFromPoints(e.P0, e.P1)
	}
	for i := range n {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				// first and last edge share the closing vertex
				continue
			}
			if !boxes[i].Overlaps(boxes[j]) {
				continue
			}
			if _, ok := edges[i].IntersectLine(edges[j]); ok {
				return true
			}
		}
	}
	return false
}
