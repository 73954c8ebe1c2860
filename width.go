package links

import "fmt"

// WidthConfig controls the random half-width profile of one side of the
// fairway.
type WidthConfig struct {
	// Degree of the B-spline.
	Degree int `yaml:"degree"`
	// Controls is the number of control values.
	Controls int `yaml:"controls"`
	// MinWidth sets the range of interior control values, which fall in
	// [MinWidth/2, 3·MinWidth/2].
	MinWidth float64 `yaml:"min_width"`
	// StartTaper and EndTaper pin the profile at the tee and at the green.
	StartTaper float64 `yaml:"start_taper"`
	EndTaper   float64 `yaml:"end_taper"`
}

func DefaultWidthConfig() WidthConfig {
	return WidthConfig{
		Degree:   6,
		Controls: 10,
		MinWidth: 10,
	}
}

func (cfg WidthConfig) validate() error {
	if cfg.Degree < 1 {
		return fmt.Errorf("%w: width spline degree %d", ErrInvalidParameter, cfg.Degree)
	}
	if !finite(cfg.MinWidth, cfg.StartTaper, cfg.EndTaper) || cfg.MinWidth < 0 || cfg.StartTaper < 0 || cfg.EndTaper < 0 {
		return fmt.Errorf("%w: negative width (min %g, tapers %g/%g)",
			ErrInvalidParameter, cfg.MinWidth, cfg.StartTaper, cfg.EndTaper)
	}
	if cfg.Controls < cfg.Degree+1 {
		return fmt.Errorf("%w: %d control points for degree %d, need at least %d",
			ErrDegenerateSpline, cfg.Controls, cfg.Degree, cfg.Degree+1)
	}
	return nil
}

// WidthProfile gives the fairway half-width on one side of the centerline as
// a function of distance from the tee. It is never negative.
type WidthProfile struct {
	spline *BSpline
}

// NewWidthProfile draws cfg.Controls values from rng, in index order, and
// fits a clamped B-spline through them over [0, length]. The first and last
// values are then replaced by the tapers, so exactly cfg.Controls draws are
// consumed regardless of the tapers.
func NewWidthProfile(length float64, cfg WidthConfig, rng Stream) (*WidthProfile, error) {
	if !(length > 0) {
		return nil, fmt.Errorf("%w: width profile length %g", ErrInvalidParameter, length)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	half := cfg.MinWidth / 2
	coeffs := make([]float64, cfg.Controls)
	for i := range coeffs {
		coeffs[i] = half + half*2*rng.Float64()
	}
	coeffs[0] = cfg.StartTaper
	coeffs[len(coeffs)-1] = cfg.EndTaper

	spline, err := NewBSpline(ClampedKnots(0, length, cfg.Controls, cfg.Degree), coeffs, cfg.Degree)
	if err != nil {
		return nil, err
	}
	return &WidthProfile{spline: spline}, nil
}

// widthFromSpline wraps an existing spline, rejecting negative coefficients
// since they could produce a negative half-width.
func widthFromSpline(spline *BSpline) (*WidthProfile, error) {
	for i, c := range spline.coeffs {
		if c < 0 {
			return nil, fmt.Errorf("%w: negative width coefficient %g at %d", ErrInvalidParameter, c, i)
		}
	}
	return &WidthProfile{spline: spline}, nil
}

// At returns the half-width at distance d from the tee.
func (w *WidthProfile) At(d float64) (float64, error) {
	v, err := w.spline.At(d)
	if err != nil {
		return 0, err
	}
	// The basis functions are non-negative; this only absorbs rounding.
	return max(v, 0), nil
}

// Spline returns the underlying B-spline.
func (w *WidthProfile) Spline() *BSpline { return w.spline }
