package links

import "math"

// Height returns the elevation at grid cell (x, z). Coordinates outside the
// grid read as 0, so callers sampling at the edge never need a special case.
func (c *Course) Height(x, z int) float64 {
	return c.heightmap.At(x, z)
}

// Slope returns the forward differences of the heightmap at (x, z).
//
// A neighbor past the upper edge of the grid reads as 0 like any other
// out-of-range cell, so the last column and row report a gradient towards
// zero rather than a clamped one.
func (c *Course) Slope(x, z int) (dx, dz float64) {
	h := c.Height(x, z)
	return c.Height(x+1, z) - h, c.Height(x, z+1) - h
}

// OnFairwayBand is [Course.WithinBand] for grid coordinates.
func (c *Course) OnFairwayBand(x, z int) bool {
	return c.WithinBand(float64(x), float64(z))
}

// WithinBand is a fast approximate fairway test: it reports whether z is
// within half the total fairway width of the centerline at x. It is false
// for x outside [0, Length).
//
// The band is symmetric about the centerline while the fairway's two edges
// are not, so WithinBand can disagree with InPolygon near the edges.
func (c *Course) WithinBand(x, z float64) bool {
	if !(x >= 0 && x < float64(c.length)) {
		return false
	}
	center, err := c.CenterZ(x)
	if err != nil {
		return false
	}
	w, err := c.FairwayWidth(x)
	if err != nil {
		return false
	}
	return math.Abs(z-center) <= w/2
}

// InPolygon reports whether (x, z) lies inside feature i's absolute boundary
// under the nonzero winding rule. It returns false for an invalid index.
func (c *Course) InPolygon(i int, x, z float64) bool {
	r, err := c.resolve(i)
	if err != nil {
		return false
	}
	pt := Pt(x, z)
	if !r.box.Contains(pt) {
		return false
	}
	return r.abs.Winding(pt) != 0
}

// FeatureAt returns the kind of the feature covering (x, z). Where features
// overlap, kinds earlier in [Kinds] win. ok is false if no feature covers
// the point.
func (c *Course) FeatureAt(x, z float64) (kind Kind, ok bool) {
	best := len(Kinds)
	for i, f := range c.features {
		rank := kindRank(f.Kind)
		if rank >= best || !c.InPolygon(i, x, z) {
			continue
		}
		best = rank
		kind = f.Kind
	}
	return kind, best < len(Kinds)
}

func kindRank(k Kind) int {
	for i, kk := range Kinds {
		if kk == k {
			return i
		}
	}
	return len(Kinds)
}
