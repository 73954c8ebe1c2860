package links

import (
	"fmt"
	"math"
	"sort"
)

// BSpline is a scalar B-spline of a given degree, defined by a knot vector
// and one coefficient per basis function.
//
// With clamped knots (end knots repeated degree+1 times, see [ClampedKnots])
// the spline passes through its first and last coefficient, and since every
// value is a convex combination of coefficients, non-negative coefficients
// give a non-negative spline.
type BSpline struct {
	knots  []float64
	coeffs []float64
	degree int
}

// NewBSpline returns the spline with the given knots, coefficients and
// degree. len(knots) must equal len(coeffs)+degree+1.
func NewBSpline(knots, coeffs []float64, degree int) (*BSpline, error) {
	if degree < 0 {
		return nil, fmt.Errorf("%w: negative spline degree %d", ErrInvalidParameter, degree)
	}
	if len(coeffs) < degree+1 {
		return nil, fmt.Errorf("%w: degree %d needs at least %d control points, got %d",
			ErrDegenerateSpline, degree, degree+1, len(coeffs))
	}
	if len(knots) != len(coeffs)+degree+1 {
		return nil, fmt.Errorf("%w: %d knots for %d control points of degree %d",
			ErrInvalidParameter, len(knots), len(coeffs), degree)
	}
	for i := 1; i < len(knots); i++ {
		if knots[i] < knots[i-1] {
			return nil, fmt.Errorf("%w: knots decrease at %d", ErrInvalidParameter, i)
		}
	}
	s := &BSpline{
		knots:  append([]float64(nil), knots...),
		coeffs: append([]float64(nil), coeffs...),
		degree: degree,
	}
	if lo, hi := s.Domain(); !(hi > lo) {
		return nil, fmt.Errorf("%w: empty spline domain [%g, %g]", ErrDegenerateSpline, lo, hi)
	}
	return s, nil
}

// ClampedKnots returns a knot vector on [lo, hi] for count control points of
// the given degree: both ends repeated degree+1 times with uniformly spaced
// interior knots.
func ClampedKnots(lo, hi float64, count, degree int) []float64 {
	knots := make([]float64, 0, count+degree+1)
	for range degree + 1 {
		knots = append(knots, lo)
	}
	interior := count - degree - 1
	for i := 1; i <= interior; i++ {
		knots = append(knots, lo+(hi-lo)*float64(i)/float64(interior+1))
	}
	for range degree + 1 {
		knots = append(knots, hi)
	}
	return knots
}

func (s *BSpline) Degree() int { return s.degree }

// Knots returns a copy of the knot vector.
func (s *BSpline) Knots() []float64 { return append([]float64(nil), s.knots...) }

// Coefficients returns a copy of the control values.
func (s *BSpline) Coefficients() []float64 { return append([]float64(nil), s.coeffs...) }

// Domain returns the interval the spline is defined on.
func (s *BSpline) Domain() (lo, hi float64) {
	return s.knots[s.degree], s.knots[len(s.coeffs)]
}

// At evaluates the spline at x using de Boor's algorithm.
func (s *BSpline) At(x float64) (float64, error) {
	lo, hi := s.Domain()
	if math.IsNaN(x) || x < lo-domainSlack || x > hi+domainSlack {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, lo, hi)
	}
	x = min(max(x, lo), hi)

	p := s.degree
	n := len(s.coeffs)
	// span k satisfies knots[k] <= x < knots[k+1], with the right end of the
	// domain folded into the last non-empty span.
	k := sort.Search(len(s.knots), func(i int) bool { return s.knots[i] > x }) - 1
	k = min(max(k, p), n-1)
	for k > p && s.knots[k] == s.knots[k+1] {
		k--
	}

	d := make([]float64, p+1)
	for j := range d {
		d[j] = s.coeffs[j+k-p]
	}
	for r := 1; r <= p; r++ {
		for j := p; j >= r; j-- {
			den := s.knots[j+1+k-r] - s.knots[j+k-p]
			var alpha float64
			if den != 0 {
				alpha = (x - s.knots[j+k-p]) / den
			}
			d[j] = (1-alpha)*d[j-1] + alpha*d[j]
		}
	}
	return d[p], nil
}
