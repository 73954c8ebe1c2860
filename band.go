package links

import "fmt"

// BandConfig describes a bunker that hugs one sector of a parent boundary.
type BandConfig struct {
	// Sectors is the number of equal arcs the parent ring is split into;
	// the band occupies one of them.
	Sectors int `yaml:"sectors"`
	// AvgWidth and Variance set the band's width at each sampled point.
	AvgWidth float64 `yaml:"avg_width"`
	Variance float64 `yaml:"variance"`
	// MinWidth floors each sampled width.
	MinWidth float64 `yaml:"min_width"`
	// Outset is the gap between the parent boundary and the band.
	Outset float64 `yaml:"outset"`
	// Stride places a band sample at every Stride-th point of the sector.
	Stride int `yaml:"stride"`
	// Resolution is the number of points in the resampled ring. Zero applies
	// [DefaultResolutionPolicy] to the band's approximate perimeter.
	Resolution int `yaml:"resolution"`
}

func DefaultBandConfig() BandConfig {
	return BandConfig{
		Sectors:  3,
		AvgWidth: 5,
		Variance: 1,
		MinWidth: 0.5,
		Outset:   1,
		Stride:   1,
	}
}

func (cfg BandConfig) validate() error {
	if cfg.Sectors < 1 || cfg.Stride < 1 {
		return fmt.Errorf("%w: %d sectors, stride %d", ErrInvalidParameter, cfg.Sectors, cfg.Stride)
	}
	if !finite(cfg.AvgWidth, cfg.Variance, cfg.MinWidth, cfg.Outset) ||
		!(cfg.AvgWidth > 0) || !(cfg.MinWidth > 0) || cfg.Variance < 0 || cfg.Outset < 0 {
		return fmt.Errorf("%w: band width %g±%g (min %g), outset %g",
			ErrInvalidParameter, cfg.AvgWidth, cfg.Variance, cfg.MinWidth, cfg.Outset)
	}
	return nil
}

// BuildBand builds a bunker along one sector of parent, in parent's
// coordinate frame.
//
// The sector is drawn from rng first, followed by one width per sampled
// point in sector order.
//
// The outward normal of an edge with tangent ⟨dx, dy⟩ is ⟨dy, −dx⟩, which
// points away from the interior of a counter-clockwise ring; for clockwise
// rings the normal is negated. An edge of zero length has no normal and
// fails with [ErrDegenerateGeometry].
//
// Smoothing rounds the band's corners, which can pull the inner edge towards
// the parent. Vertices that end up closer than Outset to parent, or inside
// it, are moved back out to Outset along the direction away from the nearest
// point of parent.
func BuildBand(parent Polygon, cfg BandConfig, rng Stream) (Polygon, error) {
	ring, err := bandRing(parent, cfg, rng)
	if err != nil {
		return nil, err
	}
	resolution := cfg.Resolution
	if resolution == 0 {
		var perimeter float64
		for i := range ring {
			perimeter += ring[i].Distance(ring[(i+1)%len(ring)])
		}
		resolution = DefaultResolutionPolicy().Points(perimeter)
	}
	band, err := fitAndResample(ring, resolution)
	if err != nil {
		return nil, err
	}
	return clearParent(band, parent, cfg.Outset)
}

// clearParent moves the vertices of band that lie inside parent or within
// outset of it to a distance of outset from their nearest point on parent.
func clearParent(band, parent Polygon, outset float64) (Polygon, error) {
	orient := 1.0
	if parent.SignedArea() < 0 {
		orient = -1
	}
	last := len(band) - 1
	for i, pt := range band[:last] {
		q, edge := parent.Nearest(pt)
		d := pt.Distance(q)
		inside := parent.Contains(pt)
		if !inside && d >= outset {
			continue
		}
		var dir Vec2
		if d > 0 {
			dir = pt.Sub(q).Div(d)
			if inside {
				dir = dir.Mul(-1)
			}
		} else {
			n, ok := edge.Normal()
			if !ok {
				continue
			}
			dir = n.Mul(orient)
		}
		band[i] = q.Translate(dir.Mul(outset))
	}
	band[last] = band[0]
	if err := band.Validate(); err != nil {
		return nil, fmt.Errorf("band after clearing parent: %w", err)
	}
	return band, nil
}

// bandRing returns the unfitted band: inner points forward, then outer points
// in reverse.
func bandRing(parent Polygon, cfg BandConfig, rng Stream) ([]Point, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := parent.Validate(); err != nil {
		return nil, fmt.Errorf("band parent: %w", err)
	}
	verts := parent.Open()
	n := len(verts)
	if n < 2*cfg.Sectors {
		return nil, fmt.Errorf("%w: parent has %d vertices, too few for %d sectors",
			ErrDegenerateGeometry, n, cfg.Sectors)
	}

	s := rng.IntN(cfg.Sectors)
	lo := s * n / cfg.Sectors
	hi := (s + 1) * n / cfg.Sectors
	sector := make([]Point, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		sector = append(sector, verts[i%n])
	}

	orient := 1.0
	if parent.SignedArea() < 0 {
		orient = -1
	}

	var inner, outer []Point
	last := len(sector) - 1
	for j := 1; j <= last; j++ {
		normal, ok := Line{sector[j-1], sector[j]}.Normal()
		if !ok {
			return nil, fmt.Errorf("%w: zero-length parent edge at vertex %d",
				ErrDegenerateGeometry, (lo+j)%n)
		}
		if (j-1)%cfg.Stride != 0 && j != last {
			continue
		}
		normal = normal.Mul(orient)
		width := max(cfg.AvgWidth+cfg.Variance*rng.NormFloat64(), cfg.MinWidth)
		in := sector[j].Translate(normal.Mul(cfg.Outset))
		inner = append(inner, in)
		outer = append(outer, in.Translate(normal.Mul(width)))
	}
	if len(inner) < 2 {
		return nil, fmt.Errorf("%w: band has %d samples, need 2", ErrDegenerateGeometry, len(inner))
	}

	ring := inner
	for i := len(outer) - 1; i >= 0; i-- {
		ring = append(ring, outer[i])
	}
	return ring, nil
}
