package links

import (
	"errors"
	"math"
)

var (
	// ErrInvalidParameter reports a generation parameter outside its valid
	// range: a non-positive length, a par other than 3, 4 or 5, a negative
	// width or variance, or a value that is NaN or infinite.
	ErrInvalidParameter = errors.New("links: invalid parameter")
	// ErrDegenerateSpline reports too few control points for the requested
	// spline degree.
	ErrDegenerateSpline = errors.New("links: degenerate spline")
	// ErrDegenerateGeometry reports geometry that has no well-defined result,
	// such as a zero-length segment where a normal is needed or a collapsed
	// ring.
	ErrDegenerateGeometry = errors.New("links: degenerate geometry")
	// ErrOutOfDomain reports a curve evaluated outside [0, length].
	ErrOutOfDomain = errors.New("links: evaluation outside curve domain")
)

const (
	// minSegmentLength is the shortest segment that still has a direction.
	minSegmentLength = 1e-9
	// domainSlack absorbs rounding when callers evaluate exactly at a domain
	// end computed by floating point arithmetic.
	domainSlack = 1e-9
)

// finite reports whether every value is a number other than ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
