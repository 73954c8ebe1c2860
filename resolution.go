package links

import "math"

// ResolutionPolicy decides how many points a resampled ring gets. Every
// ring is sampled in proportion to its approximate perimeter, so a par 5
// fairway and a small bunker end up with comparable point spacing.
type ResolutionPolicy struct {
	PointsPerYard float64 `yaml:"points_per_yard"`
	MinPoints     int     `yaml:"min_points"`
}

// DefaultResolutionPolicy samples one point every two yards of perimeter.
// For a fairway that is about one point per yard of hole length.
func DefaultResolutionPolicy() ResolutionPolicy {
	return ResolutionPolicy{
		PointsPerYard: 0.5,
		MinPoints:     32,
	}
}

// Points returns the resolution for a ring of the given perimeter.
func (r ResolutionPolicy) Points(perimeter float64) int {
	n := int(math.Ceil(perimeter * r.PointsPerYard))
	return max(n, r.MinPoints, 4)
}
