package links

import (
	"encoding/json"
	"fmt"
)

// Snapshot is a serializable copy of a [Course]. It holds enough to rebuild
// a query-ready course with [Restore] without regenerating anything.
type Snapshot struct {
	Length             int               `json:"length"`
	Par                int               `json:"par"`
	Seed               int64             `json:"seed"`
	Baseline           float64           `json:"baseline"`
	CenterlineControls [][2]float64      `json:"centerline_controls"`
	TopWidth           SplineSnapshot    `json:"top_width"`
	BottomWidth        SplineSnapshot    `json:"bottom_width"`
	Features           []FeatureSnapshot `json:"features"`
	// Heightmap is indexed [z][x].
	Heightmap [][]float64 `json:"heightmap"`
}

// SplineSnapshot describes a [BSpline].
type SplineSnapshot struct {
	Degree       int       `json:"degree"`
	Knots        []float64 `json:"knots"`
	Coefficients []float64 `json:"coefficients"`
}

// FeatureSnapshot is a feature with its anchor already resolved. Boundary is
// relative to Anchor.
type FeatureSnapshot struct {
	Kind     string       `json:"kind"`
	Anchor   [2]float64   `json:"anchor"`
	Boundary [][2]float64 `json:"boundary"`
}

func pairs(pts []Point) [][2]float64 {
	out := make([][2]float64, len(pts))
	for i, pt := range pts {
		out[i] = [2]float64{pt.X, pt.Y}
	}
	return out
}

func points(pairs [][2]float64) []Point {
	out := make([]Point, len(pairs))
	for i, p := range pairs {
		out[i] = Pt(p[0], p[1])
	}
	return out
}

func splineSnapshot(s *BSpline) SplineSnapshot {
	return SplineSnapshot{
		Degree:       s.Degree(),
		Knots:        s.Knots(),
		Coefficients: s.Coefficients(),
	}
}

// Snapshot captures the course.
func (c *Course) Snapshot() (Snapshot, error) {
	s := Snapshot{
		Length:             c.length,
		Par:                c.par,
		Seed:               c.seed,
		Baseline:           c.baseline,
		CenterlineControls: pairs(c.centerline.Controls()),
		TopWidth:           splineSnapshot(c.top.Spline()),
		BottomWidth:        splineSnapshot(c.bottom.Spline()),
		Features:           make([]FeatureSnapshot, len(c.features)),
		Heightmap:          c.heightmap.Rows(),
	}
	for i, f := range c.features {
		anchor, err := c.Anchor(i)
		if err != nil {
			return Snapshot{}, err
		}
		s.Features[i] = FeatureSnapshot{
			Kind:     f.Kind.String(),
			Anchor:   [2]float64{anchor.X, anchor.Y},
			Boundary: pairs(f.Boundary),
		}
	}
	return s, nil
}

// MarshalJSON encodes the course as its [Snapshot].
func (c *Course) MarshalJSON() ([]byte, error) {
	s, err := c.Snapshot()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// Restore rebuilds a course from a snapshot. Every feature of the restored
// course is anchored directly at its recorded anchor.
func Restore(s Snapshot) (*Course, error) {
	if s.Length < 1 {
		return nil, fmt.Errorf("%w: snapshot length %d", ErrInvalidParameter, s.Length)
	}
	c := &Course{
		length:   s.Length,
		par:      s.Par,
		seed:     s.Seed,
		baseline: s.Baseline,
	}
	var err error
	if c.centerline, err = centerlineFromControls(points(s.CenterlineControls)); err != nil {
		return nil, fmt.Errorf("restoring centerline: %w", err)
	}
	if c.top, err = restoreWidth(s.TopWidth); err != nil {
		return nil, fmt.Errorf("restoring top width: %w", err)
	}
	if c.bottom, err = restoreWidth(s.BottomWidth); err != nil {
		return nil, fmt.Errorf("restoring bottom width: %w", err)
	}
	if c.heightmap, err = heightmapFromRows(s.Heightmap); err != nil {
		return nil, fmt.Errorf("restoring heightmap: %w", err)
	}
	c.features = make([]Feature, len(s.Features))
	for i, fs := range s.Features {
		kind, err := ParseKind(fs.Kind)
		if err != nil {
			return nil, fmt.Errorf("restoring feature %d: %w", i, err)
		}
		boundary := Polygon(points(fs.Boundary))
		if err := boundary.Validate(); err != nil {
			return nil, fmt.Errorf("restoring feature %d: %w", i, err)
		}
		c.features[i] = Feature{
			Kind:     kind,
			Boundary: boundary,
			Placement: Placement{
				Parent: ParentNone,
				Offset: Vec(fs.Anchor[0], fs.Anchor[1]),
			},
		}
	}
	c.resolved = make([]resolvedFeature, len(c.features))
	return c, nil
}

func restoreWidth(s SplineSnapshot) (*WidthProfile, error) {
	spline, err := NewBSpline(s.Knots, s.Coefficients, s.Degree)
	if err != nil {
		return nil, err
	}
	return widthFromSpline(spline)
}
