package links

import (
	"fmt"
	"math"
	"sort"
)

// Monotone is a shape-preserving piecewise cubic interpolant (PCHIP).
//
// Between two knots the interpolant never leaves the range spanned by the
// knot values, so a bump in the data produces a single bump in the curve and
// no ringing around it. The result is C¹.
//
// Each interval is stored as a [CubicBez] in the (x, y) plane whose control
// points are spaced evenly in x, which makes the curve parameter an affine
// function of x.
type Monotone struct {
	xs     []float64
	ys     []float64
	pieces []CubicBez
}

// NewMonotone fits a monotone interpolant through (xs[i], ys[i]). xs must be
// strictly increasing and contain at least two values.
func NewMonotone(xs, ys []float64) (*Monotone, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d knots but %d values", ErrInvalidParameter, len(xs), len(ys))
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("%w: monotone interpolant needs 2 knots, got %d", ErrDegenerateSpline, len(xs))
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("%w: knots not strictly increasing at %d", ErrInvalidParameter, i)
		}
	}

	m := &Monotone{
		xs: append([]float64(nil), xs...),
		ys: append([]float64(nil), ys...),
	}
	d := pchipSlopes(m.xs, m.ys)
	m.pieces = make([]CubicBez, len(xs)-1)
	for i := range m.pieces {
		h := m.xs[i+1] - m.xs[i]
		m.pieces[i] = HermiteCubic(
			Pt(m.xs[i], m.ys[i]), Vec(1, d[i]),
			Pt(m.xs[i+1], m.ys[i+1]), Vec(1, d[i+1]),
			h,
		)
	}
	return m, nil
}

// pchipSlopes computes Fritsch–Carlson derivatives: a weighted harmonic mean
// of the neighboring secants in the interior, zero at local extrema, and a
// shape-preserving three-point estimate at both ends.
func pchipSlopes(xs, ys []float64) []float64 {
	n := len(xs)
	h := make([]float64, n-1)
	delta := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
		delta[i] = (ys[i+1] - ys[i]) / h[i]
	}

	d := make([]float64, n)
	if n == 2 {
		d[0], d[1] = delta[0], delta[0]
		return d
	}
	for k := 1; k < n-1; k++ {
		if delta[k-1]*delta[k] <= 0 {
			continue
		}
		w1 := 2*h[k] + h[k-1]
		w2 := h[k] + 2*h[k-1]
		d[k] = (w1 + w2) / (w1/delta[k-1] + w2/delta[k])
	}
	d[0] = pchipEdge(h[0], h[1], delta[0], delta[1])
	d[n-1] = pchipEdge(h[n-2], h[n-3], delta[n-2], delta[n-3])
	return d
}

func pchipEdge(h0, h1, m0, m1 float64) float64 {
	d := ((2*h0+h1)*m0 - h0*m1) / (h0 + h1)
	switch {
	case sign(d) != sign(m0):
		return 0
	case sign(m0) != sign(m1) && math.Abs(d) > 3*math.Abs(m0):
		return 3 * m0
	default:
		return d
	}
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Domain returns the interval the interpolant is defined on.
func (m *Monotone) Domain() (lo, hi float64) {
	return m.xs[0], m.xs[len(m.xs)-1]
}

// Knots returns copies of the interpolated points.
func (m *Monotone) Knots() (xs, ys []float64) {
	return append([]float64(nil), m.xs...), append([]float64(nil), m.ys...)
}

func (m *Monotone) locate(x float64) (piece int, t float64, err error) {
	lo, hi := m.Domain()
	if math.IsNaN(x) || x < lo-domainSlack || x > hi+domainSlack {
		return 0, 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, lo, hi)
	}
	x = min(max(x, lo), hi)
	i := sort.SearchFloat64s(m.xs, x) - 1
	i = min(max(i, 0), len(m.pieces)-1)
	h := m.xs[i+1] - m.xs[i]
	return i, (x - m.xs[i]) / h, nil
}

// At evaluates the interpolant at x.
func (m *Monotone) At(x float64) (float64, error) {
	i, t, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	return m.pieces[i].Eval(t).Y, nil
}

// Deriv evaluates the first derivative of the interpolant at x.
func (m *Monotone) Deriv(x float64) (float64, error) {
	i, t, err := m.locate(x)
	if err != nil {
		return 0, err
	}
	d := m.pieces[i].Deriv(t)
	// d is with respect to the piece parameter; dx/dt is constant.
	return d.Y / d.X, nil
}
