package links

import (
	"fmt"
	"math"
)

const (
	// DefaultInflections is the number of centerline control points.
	DefaultInflections = 7
	// DefaultBendScale converts a bend intensity of 1 into yards of lateral
	// offset at the bend's peak.
	DefaultBendScale = 50
	bendSigma        = 2
)

// Bend describes a dogleg: a Gaussian bump in the lateral offset of the
// interior control points, centered on control point Index.
type Bend struct {
	// Index of the control point at the bend's peak. Zero selects the
	// central control point.
	Index int
	// Direction is +1 to bend towards positive y and −1 for negative y. Zero
	// means +1.
	Direction int
	// Intensity scales the bump; zero gives a straight hole.
	Intensity float64
	// Scale is the peak offset in yards for an intensity of 1. Zero means
	// DefaultBendScale.
	Scale float64
}

// Centerline is the idealized path of a hole: lateral offset from the
// baseline as a function of distance from the tee. It is pinned to zero at
// the tee and at the hole.
type Centerline struct {
	length float64
	curve  *Monotone
}

// NewCenterline builds a centerline over [0, length] from inflections evenly
// spaced control points.
func NewCenterline(length float64, inflections int, bend Bend) (*Centerline, error) {
	if !finite(length) || !(length > 0) {
		return nil, fmt.Errorf("%w: centerline length %g", ErrInvalidParameter, length)
	}
	if inflections == 0 {
		inflections = DefaultInflections
	}
	if inflections < 3 {
		return nil, fmt.Errorf("%w: %d inflection points, need at least 3", ErrInvalidParameter, inflections)
	}
	if bend.Index == 0 {
		bend.Index = inflections / 2
	}
	if bend.Index < 1 || bend.Index > inflections-2 {
		return nil, fmt.Errorf("%w: bend index %d outside 1..%d", ErrInvalidParameter, bend.Index, inflections-2)
	}
	if bend.Direction == 0 {
		bend.Direction = 1
	}
	if bend.Direction != 1 && bend.Direction != -1 {
		return nil, fmt.Errorf("%w: bend direction %d", ErrInvalidParameter, bend.Direction)
	}
	if bend.Scale == 0 {
		bend.Scale = DefaultBendScale
	}
	if !finite(bend.Intensity, bend.Scale) || bend.Intensity < 0 || bend.Scale < 0 {
		return nil, fmt.Errorf("%w: negative bend intensity or scale", ErrInvalidParameter)
	}

	xs := make([]float64, inflections)
	ys := make([]float64, inflections)
	peak := bend.Intensity * bend.Scale * float64(bend.Direction)
	for i := range xs {
		xs[i] = length * float64(i) / float64(inflections-1)
		if i == 0 || i == inflections-1 {
			continue
		}
		k := float64(i-bend.Index) / bendSigma
		ys[i] = peak * math.Exp(-k*k)
	}
	xs[inflections-1] = length

	curve, err := NewMonotone(xs, ys)
	if err != nil {
		return nil, err
	}
	return &Centerline{length: length, curve: curve}, nil
}

// Length returns the length of the hole the centerline spans.
func (c *Centerline) Length() float64 { return c.length }

// At returns the lateral offset at distance d from the tee.
func (c *Centerline) At(d float64) (float64, error) {
	return c.curve.At(d)
}

// Slope returns the derivative of the lateral offset at distance d.
func (c *Centerline) Slope(d float64) (float64, error) {
	return c.curve.Deriv(d)
}

// Controls returns the control points the centerline interpolates, as
// (distance, offset) pairs.
func (c *Centerline) Controls() []Point {
	xs, ys := c.curve.Knots()
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Pt(xs[i], ys[i])
	}
	return pts
}

// centerlineFromControls rebuilds a centerline from its control points.
func centerlineFromControls(controls []Point) (*Centerline, error) {
	xs := make([]float64, len(controls))
	ys := make([]float64, len(controls))
	for i, pt := range controls {
		xs[i], ys[i] = pt.X, pt.Y
	}
	curve, err := NewMonotone(xs, ys)
	if err != nil {
		return nil, err
	}
	lo, hi := curve.Domain()
	if lo != 0 || ys[0] != 0 || ys[len(ys)-1] != 0 {
		return nil, fmt.Errorf("%w: centerline must start at distance 0 and be pinned to 0 at both ends", ErrInvalidParameter)
	}
	return &Centerline{length: hi, curve: curve}, nil
}
