package links

import (
	"fmt"
	"math"
)

// BlobConfig describes a stochastic, roughly elliptical closed shape such as
// a green or a free-standing bunker.
type BlobConfig struct {
	HalfWidth  float64 `yaml:"half_width"`
	HalfHeight float64 `yaml:"half_height"`
	// Variance is the standard deviation of each sampled radius.
	Variance float64 `yaml:"variance"`
	// Samples is the number of angles sampled around the blob.
	Samples int `yaml:"samples"`
	// Resolution is the number of points in the resampled ring. Zero applies
	// [DefaultResolutionPolicy] to the blob's approximate perimeter.
	Resolution int `yaml:"resolution"`
}

// minRadiusFraction floors each sampled radius at this fraction of the
// average so a large draw cannot turn the blob inside out.
const minRadiusFraction = 0.1

func (cfg BlobConfig) validate() error {
	if !finite(cfg.HalfWidth, cfg.HalfHeight, cfg.Variance) ||
		!(cfg.HalfWidth > 0) || !(cfg.HalfHeight > 0) || cfg.Variance < 0 {
		return fmt.Errorf("%w: blob half-size %g×%g, variance %g",
			ErrInvalidParameter, cfg.HalfWidth, cfg.HalfHeight, cfg.Variance)
	}
	if cfg.Samples < 3 {
		return fmt.Errorf("%w: %d blob samples, need at least 3", ErrInvalidParameter, cfg.Samples)
	}
	return nil
}

// approxPerimeter estimates the blob's perimeter from its average radii.
func (cfg BlobConfig) approxPerimeter() float64 {
	return math.Pi * (cfg.HalfWidth + cfg.HalfHeight)
}

// NewBlob samples cfg.Samples angles evenly over a full turn and, per angle,
// draws the x radius and then the y radius from rng. The ring through the
// sampled points is fitted and resampled. The blob lies around the origin.
func NewBlob(cfg BlobConfig, rng Stream) (Polygon, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	ring := make([]Point, cfg.Samples)
	for i := range ring {
		theta := 2 * math.Pi * float64(i) / float64(cfg.Samples)
		rx := max(cfg.HalfWidth+cfg.Variance*rng.NormFloat64(), minRadiusFraction*cfg.HalfWidth)
		ry := max(cfg.HalfHeight+cfg.Variance*rng.NormFloat64(), minRadiusFraction*cfg.HalfHeight)
		sin, cos := math.Sincos(theta)
		ring[i] = Pt(rx*cos, ry*sin)
	}
	resolution := cfg.Resolution
	if resolution == 0 {
		resolution = DefaultResolutionPolicy().Points(cfg.approxPerimeter())
	}
	return fitAndResample(ring, resolution)
}
