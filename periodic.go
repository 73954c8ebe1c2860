package links

import (
	"fmt"
	"math"
	"sort"
)

// ClosedSpline is a closed, C² cubic spline through a ring of points.
//
// The curve is parametrized by cumulative chord length and interpolates every
// input point with no smoothing. The periodic end condition makes value,
// tangent and curvature continuous across the seam between the last input
// point and the first.
type ClosedSpline struct {
	// breaks[i] is the parameter of input point i; breaks[n] is the period.
	breaks []float64
	pieces []CubicBez
}

// FitPeriodic fits a closed spline through pts. A trailing point equal to
// the first one and consecutive coincident points are dropped before
// fitting. At least three distinct points must remain.
func FitPeriodic(pts []Point) (*ClosedSpline, error) {
	ring := dedupeRing(pts)
	n := len(ring)
	if n < 3 {
		return nil, fmt.Errorf("%w: periodic fit needs 3 distinct points, got %d", ErrDegenerateGeometry, n)
	}

	h := make([]float64, n)
	breaks := make([]float64, n+1)
	for i := range ring {
		h[i] = ring[(i+1)%n].Distance(ring[i])
		breaks[i+1] = breaks[i] + h[i]
	}

	// Second derivatives M solve
	//   h[i-1]·M[i-1] + 2(h[i-1]+h[i])·M[i] + h[i]·M[i+1] = 6(D[i] − D[i-1])
	// with indices taken modulo n and D[i] the secant slope of chord i.
	sub := make([]float64, n)
	diag := make([]float64, n)
	sup := make([]float64, n)
	rx := make([]float64, n)
	ry := make([]float64, n)
	for i := range ring {
		prev := (i + n - 1) % n
		next := (i + 1) % n
		sub[i] = h[prev]
		diag[i] = 2 * (h[prev] + h[i])
		sup[i] = h[i]
		dNext := ring[next].Sub(ring[i]).Div(h[i])
		dPrev := ring[i].Sub(ring[prev]).Div(h[prev])
		rx[i] = 6 * (dNext.X - dPrev.X)
		ry[i] = 6 * (dNext.Y - dPrev.Y)
	}
	mx := solveCyclic(sub, diag, sup, rx)
	my := solveCyclic(sub, diag, sup, ry)

	pieces := make([]CubicBez, n)
	for i := range ring {
		next := (i + 1) % n
		hi := h[i]
		secant := ring[next].Sub(ring[i]).Div(hi)
		mi := Vec(mx[i], my[i])
		mn := Vec(mx[next], my[next])
		d0 := secant.Sub(mi.Mul(2).Add(mn).Mul(hi / 6))
		d1 := secant.Add(mi.Add(mn.Mul(2)).Mul(hi / 6))
		pieces[i] = HermiteCubic(ring[i], d0, ring[next], d1, hi)
	}
	return &ClosedSpline{breaks: breaks, pieces: pieces}, nil
}

// dedupeRing drops consecutive coincident points, including a closing point
// that repeats the first.
func dedupeRing(pts []Point) []Point {
	ring := make([]Point, 0, len(pts))
	for _, pt := range pts {
		if len(ring) > 0 && pt.Coincides(ring[len(ring)-1], minSegmentLength) {
			continue
		}
		ring = append(ring, pt)
	}
	for len(ring) > 1 && ring[len(ring)-1].Coincides(ring[0], minSegmentLength) {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// solveCyclic solves a tridiagonal system with periodic corners, where row i
// reads sub[i]·x[i-1] + diag[i]·x[i] + sup[i]·x[i+1] = r[i] and indices wrap.
// It uses the Sherman–Morrison correction on top of the Thomas algorithm and
// requires a diagonally dominant matrix and len(diag) >= 3.
func solveCyclic(sub, diag, sup, r []float64) []float64 {
	n := len(diag)
	alpha := sup[n-1] // row n-1, column 0
	beta := sub[0]    // row 0, column n-1
	gamma := -diag[0]

	bb := append([]float64(nil), diag...)
	bb[0] = diag[0] - gamma
	bb[n-1] = diag[n-1] - alpha*beta/gamma

	x := solveTridiagonal(sub, bb, sup, r)
	u := make([]float64, n)
	u[0] = gamma
	u[n-1] = alpha
	z := solveTridiagonal(sub, bb, sup, u)

	fact := (x[0] + beta*x[n-1]/gamma) / (1 + z[0] + beta*z[n-1]/gamma)
	for i := range x {
		x[i] -= fact * z[i]
	}
	return x
}

// solveTridiagonal runs the Thomas algorithm. sub[0] and sup[n-1] are
// ignored.
func solveTridiagonal(sub, diag, sup, r []float64) []float64 {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)
	cp[0] = sup[0] / diag[0]
	dp[0] = r[0] / diag[0]
	for i := 1; i < n; i++ {
		m := diag[i] - sub[i]*cp[i-1]
		if i < n-1 {
			cp[i] = sup[i] / m
		}
		dp[i] = (r[i] - sub[i]*dp[i-1]) / m
	}
	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}

// Period returns the total chord length of the fitted ring, which is the
// length of the parameter interval.
func (s *ClosedSpline) Period() float64 {
	return s.breaks[len(s.breaks)-1]
}

// Knots returns the number of interpolated points.
func (s *ClosedSpline) Knots() int {
	return len(s.pieces)
}

// Eval evaluates the spline at u, expressed as a fraction of the period.
// Values outside [0, 1] wrap around.
func (s *ClosedSpline) Eval(u float64) Point {
	u -= math.Floor(u)
	v := u * s.Period()
	i := sort.SearchFloat64s(s.breaks, v) - 1
	i = min(max(i, 0), len(s.pieces)-1)
	h := s.breaks[i+1] - s.breaks[i]
	return s.pieces[i].Eval((v - s.breaks[i]) / h)
}

// Resample samples the spline at m uniformly spaced parameter values. The
// last sample repeats the first exactly, so the result is a closed
// [Polygon] with m−1 distinct vertices.
func (s *ClosedSpline) Resample(m int) (Polygon, error) {
	if m < 4 {
		return nil, fmt.Errorf("%w: resolution %d, need at least 4", ErrInvalidParameter, m)
	}
	poly := make(Polygon, m)
	for j := range m - 1 {
		poly[j] = s.Eval(float64(j) / float64(m-1))
	}
	poly[m-1] = poly[0]
	if err := poly.Validate(); err != nil {
		return nil, err
	}
	return poly, nil
}

// fitAndResample is the common tail of every closed-shape builder.
func fitAndResample(ring []Point, resolution int) (Polygon, error) {
	spline, err := FitPeriodic(ring)
	if err != nil {
		return nil, err
	}
	return spline.Resample(resolution)
}
