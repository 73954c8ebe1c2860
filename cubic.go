package links

// CubicBez is a cubic Bézier segment. All splines in this package store
// their pieces in this form.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// HermiteCubic returns the cubic Bézier that starts at p0 with derivative m0
// and ends at p1 with derivative m1, where derivatives are taken with respect
// to a parameter spanning an interval of width h.
func HermiteCubic(p0 Point, m0 Vec2, p1 Point, m1 Vec2, h float64) CubicBez {
	return CubicBez{
		P0: p0,
		P1: p0.Translate(m0.Mul(h / 3)),
		P2: p1.Translate(m1.Mul(-h / 3)),
		P3: p1,
	}
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the derivative of the curve with respect to t as a
// quadratic Bézier whose points are to be read as vectors.
func (cb CubicBez) Differentiate() QuadBez {
	return QuadBez{
		Point(cb.P1.Sub(cb.P0).Mul(3)),
		Point(cb.P2.Sub(cb.P1).Mul(3)),
		Point(cb.P3.Sub(cb.P2).Mul(3)),
	}
}

// Deriv evaluates the derivative of the curve at t.
func (cb CubicBez) Deriv(t float64) Vec2 {
	return Vec2(cb.Differentiate().Eval(t))
}

// ControlBox returns the bounding box of the control polygon, which encloses
// the curve.
func (cb CubicBez) ControlBox() Rect {
	return NewRectFromPoints(cb.P0, cb.P3).UnionPoint(cb.P1).UnionPoint(cb.P2)
}

type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}
