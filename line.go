package links

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Tangent returns the direction of travel from P0 to P1.
func (l Line) Tangent() Vec2 {
	return l.P1.Sub(l.P0)
}

// Normal returns the unit normal ⟨dy, −dx⟩/|d| of the line. It reports false
// for a zero-length line.
func (l Line) Normal() (Vec2, bool) {
	return l.Tangent().UnitNormal()
}

// Nearest returns the squared distance from pt to the closest point of the
// segment and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// LineIntersection is an intersection of two lines, expressed as the
// parameters on both of them.
type LineIntersection struct {
	// LineT is the parameter on the probe line, in 0..1.
	LineT float64
	// SegmentT is the parameter on the receiver, nominally in 0..1.
	SegmentT float64
}

// IntersectLine returns the intersection of l and o, if the two segments
// cross.
func (l Line) IntersectLine(o Line) (LineIntersection, bool) {
	const epsilon = 1e-9
	p0 := o.P0
	p1 := o.P1
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y

	det := dx*(l.P1.Y-l.P0.Y) - dy*(l.P1.X-l.P0.X)
	if math.Abs(det) < epsilon {
		// Lines are parallel or coincident.
		return LineIntersection{}, false
	}
	t := dx*(p0.Y-l.P0.Y) - dy*(p0.X-l.P0.X)
	t /= det
	if t >= -epsilon && t <= 1+epsilon {
		u := (l.P0.X-p0.X)*(l.P1.Y-l.P0.Y) - (l.P0.Y-p0.Y)*(l.P1.X-l.P0.X)
		u /= det
		if u >= 0.0 && u <= 1.0 {
			return LineIntersection{u, t}, true
		}
	}
	return LineIntersection{}, false
}

// Winding returns the contribution of the segment to the winding number of
// pt, casting a ray towards negative x.
//
// Segments are treated as half-open in y so that a ray passing exactly
// through a shared vertex is counted once.
func (l Line) Winding(pt Point) int {
	start, end := l.P0, l.P1
	var sign int
	if end.Y > start.Y {
		if pt.Y < start.Y || pt.Y >= end.Y {
			return 0
		}
		sign = -1
	} else if end.Y < start.Y {
		if pt.Y < end.Y || pt.Y >= start.Y {
			return 0
		}
		sign = 1
	} else {
		return 0
	}
	if pt.X < min(start.X, end.X) {
		return 0
	}
	if pt.X >= max(start.X, end.X) {
		return sign
	}
	// line equation ax + by = c
	a := end.Y - start.Y
	b := start.X - end.X
	c := a*start.X + b*start.Y
	if (a*pt.X+b*pt.Y-c)*float64(sign) <= 0.0 {
		return sign
	}
	return 0
}

// SignedArea returns the segment's contribution to the area of a closed
// ring, by Green's theorem.
func (l Line) SignedArea() float64 {
	return Vec2(l.P0).Cross(Vec2(l.P1)) * 0.5
}
