package links

import (
	"fmt"
	"log/slog"
	"time"
)

// Course is a generated hole. It is immutable once returned by a generator
// and safe for concurrent queries.
//
// Course coordinates put the tee at x = 0 and the hole at x = Length, with
// the centerline's baseline at y = Baseline. The heightmap shares this
// frame: grid cell (x, z) sits at Pt(x, z).
type Course struct {
	length     int
	par        int
	seed       int64
	baseline   float64
	centerline *Centerline
	top        *WidthProfile
	bottom     *WidthProfile
	features   []Feature
	resolved   []resolvedFeature
	heightmap  *Heightmap
}

// Generate builds a course from the basic parameters, using defaults for
// everything else. A length of 0 derives the length from par.
func Generate(length, par int, dogleg bool, intensity float64, seed int64) (*Course, error) {
	p := DefaultParams()
	p.Length = length
	p.Par = par
	p.Dogleg = dogleg
	p.Intensity = intensity
	p.Seed = seed
	return GenerateParams(p)
}

// GenerateParams builds a course.
//
// Shapes are drawn from one stream in a fixed order: the bend (only when
// p.RandomBend and p.Dogleg are set), the top width profile, the bottom width
// profile, the green, the green-side bunkers, and finally the number of
// free-standing bunkers followed by each bunker's shape and placement. The
// heightmap does not use the stream.
//
// On error no course is returned.
func GenerateParams(p Params) (*Course, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	length, err := p.HoleLength()
	if err != nil {
		return nil, err
	}
	rng := p.Stream
	if rng == nil {
		rng = NewStream(p.Seed)
	}
	g := &generator{
		p:   p,
		rng: rng,
		log: p.Logger,
		c: &Course{
			length:   length,
			par:      p.Par,
			seed:     p.Seed,
			baseline: float64(p.Terrain.Depth()) / 2,
		},
	}
	if g.log == nil {
		g.log = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	stages := []struct {
		name string
		fn   func() error
	}{
		{"centerline", g.centerline},
		{"width", g.widths},
		{"fairway", g.fairway},
		{"green", g.green},
		{"bunkers", g.bunkers},
		{"terrain", g.terrain},
	}
	for _, st := range stages {
		t := time.Now()
		if err := st.fn(); err != nil {
			return nil, fmt.Errorf("generating %s: %w", st.name, err)
		}
		g.log.Debug("stage complete", "stage", st.name, "elapsed", time.Since(t))
	}
	c := g.c
	c.resolved = make([]resolvedFeature, len(c.features))
	g.log.Info("course generated",
		"length", c.length, "par", c.par, "seed", c.seed,
		"features", len(c.features), "elapsed", time.Since(start))
	return c, nil
}

// generator holds the state of one generation. Nothing it builds is visible
// to callers until every stage has succeeded.
type generator struct {
	p        Params
	rng      Stream
	log      *slog.Logger
	c        *Course
	greenIdx int
}

func (g *generator) centerline() error {
	bend := Bend{
		Index:     g.p.BendIndex,
		Direction: g.p.BendDirection,
		Scale:     g.p.BendScale,
	}
	if g.p.Dogleg {
		bend.Intensity = g.p.Intensity
		if g.p.RandomBend {
			n := g.p.Inflections
			if n == 0 {
				n = DefaultInflections
			}
			if n < 3 {
				return fmt.Errorf("%w: %d inflection points", ErrInvalidParameter, n)
			}
			bend.Index = 1 + g.rng.IntN(n-2)
			bend.Direction = 1 - 2*g.rng.IntN(2)
		}
	}
	cl, err := NewCenterline(float64(g.c.length), g.p.Inflections, bend)
	if err != nil {
		return err
	}
	g.c.centerline = cl
	return nil
}

func (g *generator) widths() error {
	var err error
	length := float64(g.c.length)
	if g.c.top, err = NewWidthProfile(length, g.p.Width, g.rng); err != nil {
		return fmt.Errorf("top: %w", err)
	}
	if g.c.bottom, err = NewWidthProfile(length, g.p.Width, g.rng); err != nil {
		return fmt.Errorf("bottom: %w", err)
	}
	return nil
}

func (g *generator) fairway() error {
	length := float64(g.c.length)
	for _, f := range []struct {
		kind   Kind
		margin float64
	}{
		{Fairway, 0},
		{Rough, g.p.RoughMargin},
	} {
		r := Region{
			Length:     length,
			Center:     g.c.centerline,
			Top:        g.c.top,
			Bottom:     g.c.bottom,
			Margin:     f.margin,
			Resolution: g.p.Resolution.Points(2 * length),
		}
		poly, err := BuildRegion(r, g.p.Region)
		if err != nil {
			return fmt.Errorf("%s: %w", f.kind, err)
		}
		g.add(Feature{
			Kind:      f.kind,
			Boundary:  poly,
			Placement: Placement{Parent: ParentNone, Offset: Vec(0, g.c.baseline)},
		})
	}
	return nil
}

func (g *generator) green() error {
	cfg := g.p.Green
	if cfg.Resolution == 0 {
		cfg.Resolution = g.p.Resolution.Points(cfg.approxPerimeter())
	}
	poly, err := NewBlob(cfg, g.rng)
	if err != nil {
		return err
	}
	length := float64(g.c.length)
	g.greenIdx = g.add(Feature{
		Kind:     Green,
		Boundary: poly,
		Placement: Placement{
			Parent:   ParentCenterline,
			Distance: max(length-cfg.HalfWidth, length/2),
		},
	})
	return nil
}

func (g *generator) bunkers() error {
	green := g.c.features[g.greenIdx].Boundary
	band := g.p.Band
	if band.Resolution == 0 {
		arc := green.Perimeter() / float64(max(band.Sectors, 1))
		band.Resolution = g.p.Resolution.Points(2*arc + 2*band.AvgWidth)
	}
	for i := range g.p.GreenBunkers {
		poly, err := BuildBand(green, band, g.rng)
		if err != nil {
			return fmt.Errorf("green bunker %d: %w", i, err)
		}
		g.add(Feature{
			Kind:      Bunker,
			Boundary:  poly,
			Placement: Placement{Parent: ParentFeature, Index: g.greenIdx},
		})
	}

	free := g.p.FreeBunkers
	count := free.Min + g.rng.IntN(free.Max-free.Min+1)
	cfg := g.p.Bunker
	if cfg.Resolution == 0 {
		cfg.Resolution = g.p.Resolution.Points(cfg.approxPerimeter())
	}
	length := float64(g.c.length)
	for i := range count {
		poly, err := NewBlob(cfg, g.rng)
		if err != nil {
			return fmt.Errorf("free bunker %d: %w", i, err)
		}
		d := length * (0.2 + 0.55*g.rng.Float64())
		side := 1 - 2*g.rng.IntN(2)
		edge := g.c.top
		if side < 0 {
			edge = g.c.bottom
		}
		w, err := edge.At(d)
		if err != nil {
			return fmt.Errorf("free bunker %d: %w", i, err)
		}
		lateral := float64(side) * (w + g.p.BunkerGap + cfg.HalfHeight)
		g.add(Feature{
			Kind:     Bunker,
			Boundary: poly,
			Placement: Placement{
				Parent:   ParentCenterline,
				Distance: d,
				Offset:   Vec(0, lateral),
			},
		})
	}
	return nil
}

func (g *generator) terrain() error {
	h, err := NewHeightmap(g.c.length, g.p.Terrain, g.p.Seed)
	if err != nil {
		return err
	}
	g.c.heightmap = h
	return nil
}

func (g *generator) add(f Feature) int {
	g.c.features = append(g.c.features, f)
	return len(g.c.features) - 1
}

func (c *Course) Length() int                { return c.length }
func (c *Course) Par() int                   { return c.par }
func (c *Course) Seed() int64                { return c.seed }
func (c *Course) Centerline() *Centerline    { return c.centerline }
func (c *Course) TopWidth() *WidthProfile    { return c.top }
func (c *Course) BottomWidth() *WidthProfile { return c.bottom }
func (c *Course) Heightmap() *Heightmap      { return c.heightmap }

// Baseline is the lateral coordinate the centerline's offsets are measured
// from, half the terrain depth.
func (c *Course) Baseline() float64 { return c.baseline }

// NumFeatures returns the number of features on the course.
func (c *Course) NumFeatures() int { return len(c.features) }

// Feature returns feature i. Its boundary is shared and must not be
// modified.
func (c *Course) Feature(i int) (Feature, bool) {
	if i < 0 || i >= len(c.features) {
		return Feature{}, false
	}
	return c.features[i], true
}

// FeaturesOf returns the indices of all features of kind k, in generation
// order.
func (c *Course) FeaturesOf(k Kind) []int {
	var out []int
	for i, f := range c.features {
		if f.Kind == k {
			out = append(out, i)
		}
	}
	return out
}

// CenterZ returns the lateral course coordinate of the centerline at
// distance x from the tee.
func (c *Course) CenterZ(x float64) (float64, error) {
	off, err := c.centerline.At(x)
	if err != nil {
		return 0, err
	}
	return c.baseline + off, nil
}

// FairwayWidth returns the full fairway width at distance x, the sum of the
// two half-width profiles.
func (c *Course) FairwayWidth(x float64) (float64, error) {
	wt, err := c.top.At(x)
	if err != nil {
		return 0, err
	}
	wb, err := c.bottom.At(x)
	if err != nil {
		return 0, err
	}
	return wt + wb, nil
}
