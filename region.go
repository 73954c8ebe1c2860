package links

import (
	"fmt"
	"math"
)

// Profile is a scalar function of distance from the tee, such as a
// [Centerline] or a [WidthProfile].
type Profile interface {
	At(d float64) (float64, error)
}

// RegionConfig controls how a closed region is traced around the centerline.
type RegionConfig struct {
	// Samples is the number of distances sampled along the hole.
	Samples int `yaml:"samples"`
	// Epsilon is the smallest half-width used when tracing; narrower samples
	// are widened to it so the two sides never meet.
	Epsilon float64 `yaml:"epsilon"`
	// Strict rejects rings whose edges cross.
	Strict bool `yaml:"strict"`
}

func DefaultRegionConfig() RegionConfig {
	return RegionConfig{
		Samples: 50,
		Epsilon: 0.5,
	}
}

// Region describes a band around the centerline bounded by two half-width
// profiles.
type Region struct {
	Length float64
	Center Profile
	Top    Profile
	Bottom Profile
	// Margin is added to both half-widths. The rough is the fairway region
	// with a positive margin.
	Margin float64
	// Resolution is the number of points in the resampled ring, including
	// the closing point.
	Resolution int
}

// minRegionArea is the smallest area a traced region may enclose before it
// is considered collapsed.
const minRegionArea = 1e-6

// BuildRegion traces the region's top side from tee to green and its bottom
// side back again, fits a closed spline through the loop and resamples it.
// The resulting ring runs clockwise.
//
// Widening narrow samples to cfg.Epsilon keeps the seam at both ends open,
// but sharp bends can still fold the ring over itself; set cfg.Strict to
// reject those rings, or raise cfg.Samples.
func BuildRegion(r Region, cfg RegionConfig) (Polygon, error) {
	if !finite(r.Length) || !(r.Length > 0) {
		return nil, fmt.Errorf("%w: region length %g", ErrInvalidParameter, r.Length)
	}
	if cfg.Samples < 2 {
		return nil, fmt.Errorf("%w: %d region samples, need at least 2", ErrInvalidParameter, cfg.Samples)
	}
	if !finite(cfg.Epsilon, r.Margin) || cfg.Epsilon <= 0 || r.Margin < 0 {
		return nil, fmt.Errorf("%w: epsilon %g, margin %g", ErrInvalidParameter, cfg.Epsilon, r.Margin)
	}

	n := cfg.Samples
	top := make([]Point, n)
	bottom := make([]Point, n)
	for i := range n {
		x := r.Length * float64(i) / float64(n-1)
		if i == n-1 {
			x = r.Length
		}
		c, err := r.Center.At(x)
		if err != nil {
			return nil, fmt.Errorf("sampling centerline: %w", err)
		}
		wt, err := r.Top.At(x)
		if err != nil {
			return nil, fmt.Errorf("sampling top width: %w", err)
		}
		wb, err := r.Bottom.At(x)
		if err != nil {
			return nil, fmt.Errorf("sampling bottom width: %w", err)
		}
		top[i] = Pt(x, c+max(wt+r.Margin, cfg.Epsilon))
		bottom[i] = Pt(x, c-max(wb+r.Margin, cfg.Epsilon))
	}

	loop := make([]Point, 0, 2*n)
	loop = append(loop, top...)
	for i := n - 1; i >= 0; i-- {
		loop = append(loop, bottom[i])
	}

	poly, err := fitAndResample(loop, r.Resolution)
	if err != nil {
		return nil, err
	}
	if math.Abs(poly.SignedArea()) < minRegionArea {
		return nil, fmt.Errorf("%w: region collapsed", ErrDegenerateGeometry)
	}
	if cfg.Strict && poly.SelfIntersects() {
		return nil, fmt.Errorf("%w: region boundary crosses itself", ErrDegenerateGeometry)
	}
	return poly, nil
}
