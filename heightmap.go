package links

import (
	"fmt"
	"runtime"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/sync/errgroup"
)

// NoiseKind selects the coherent noise behind the heightmap.
type NoiseKind string

const (
	PerlinNoise  NoiseKind = "perlin"
	SimplexNoise NoiseKind = "simplex"
)

// TerrainConfig controls heightmap synthesis.
type TerrainConfig struct {
	// FairwayWidth and Margin size the lateral axis of the grid: it spans
	// FairwayWidth·Margin yards, leaving room for the rough.
	FairwayWidth float64 `yaml:"fairway_width"`
	Margin       float64 `yaml:"margin"`
	Octaves      int     `yaml:"octaves"`
	// Scale divides grid coordinates before sampling noise; larger is
	// smoother.
	Scale float64 `yaml:"scale"`
	// Amplitude multiplies the noise value.
	Amplitude float64   `yaml:"amplitude"`
	Noise     NoiseKind `yaml:"noise"`
	// Workers bounds the number of rows computed concurrently. Zero uses
	// GOMAXPROCS. The result does not depend on it.
	Workers int `yaml:"workers"`
}

func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		FairwayWidth: 50,
		Margin:       3,
		Octaves:      4,
		Scale:        100,
		Amplitude:    10,
		Noise:        PerlinNoise,
	}
}

// Depth returns the number of grid rows along the lateral axis. It is only
// meaningful for a configuration that validates.
func (cfg TerrainConfig) Depth() int {
	return int(cfg.FairwayWidth * cfg.Margin)
}

func (cfg TerrainConfig) validate() error {
	if !finite(cfg.FairwayWidth, cfg.Margin, cfg.Scale, cfg.Amplitude) {
		return fmt.Errorf("%w: non-finite terrain fairway width %g, margin %g, scale %g or amplitude %g",
			ErrInvalidParameter, cfg.FairwayWidth, cfg.Margin, cfg.Scale, cfg.Amplitude)
	}
	if cfg.Depth() < 1 {
		return fmt.Errorf("%w: terrain depth %g×%g", ErrInvalidParameter, cfg.FairwayWidth, cfg.Margin)
	}
	if cfg.Octaves < 1 || !(cfg.Scale > 0) || cfg.Workers < 0 {
		return fmt.Errorf("%w: %d octaves, scale %g, %d workers",
			ErrInvalidParameter, cfg.Octaves, cfg.Scale, cfg.Workers)
	}
	switch cfg.Noise {
	case PerlinNoise, SimplexNoise:
		return nil
	default:
		return fmt.Errorf("%w: unknown noise %q", ErrInvalidParameter, cfg.Noise)
	}
}

// field is a coherent noise function. Implementations are read-only after
// construction and safe for concurrent use.
type field interface {
	sample(x, y float64) float64
}

type perlinField struct {
	p *perlin.Perlin
}

func (f perlinField) sample(x, y float64) float64 {
	return f.p.Noise2D(x, y)
}

type simplexField struct {
	n       opensimplex.Noise
	octaves int
}

// sample sums octaves of halving amplitude and doubling frequency,
// normalized back to the range of a single octave.
func (f simplexField) sample(x, y float64) float64 {
	var total, norm float64
	amp, freq := 1.0, 1.0
	for range f.octaves {
		total += f.n.Eval2(x*freq, y*freq) * amp
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return total / norm
}

func newField(cfg TerrainConfig, seed int64) field {
	switch cfg.Noise {
	case SimplexNoise:
		return simplexField{n: opensimplex.New(seed), octaves: cfg.Octaves}
	default:
		return perlinField{p: perlin.NewPerlin(2, 2, int32(cfg.Octaves), seed)}
	}
}

// Heightmap is a dense grid of elevations indexed by integer (x, z), with x
// along the hole and z across it.
type Heightmap struct {
	width int
	depth int
	cells []float64 // row-major: cells[z*width+x]
}

// NewHeightmap synthesizes a width×cfg.Depth() grid. Each cell is a pure
// function of its coordinates and seed, so rows are filled concurrently
// without coordination and the result is identical for any worker count.
func NewHeightmap(width int, cfg TerrainConfig, seed int64) (*Heightmap, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: heightmap width %d", ErrInvalidParameter, width)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	h := &Heightmap{
		width: width,
		depth: cfg.Depth(),
	}
	h.cells = make([]float64, h.width*h.depth)
	f := newField(cfg, seed)

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for z := range h.depth {
		row := h.cells[z*h.width : (z+1)*h.width]
		g.Go(func() error {
			for x := range row {
				row[x] = cfg.Amplitude * f.sample(float64(x)/cfg.Scale, float64(z)/cfg.Scale)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return h, nil
}

// heightmapFromRows rebuilds a heightmap from rows indexed [z][x].
func heightmapFromRows(rows [][]float64) (*Heightmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty heightmap", ErrInvalidParameter)
	}
	h := &Heightmap{width: len(rows[0]), depth: len(rows)}
	h.cells = make([]float64, 0, h.width*h.depth)
	for z, row := range rows {
		if len(row) != h.width {
			return nil, fmt.Errorf("%w: heightmap row %d has %d cells, want %d",
				ErrInvalidParameter, z, len(row), h.width)
		}
		h.cells = append(h.cells, row...)
	}
	return h, nil
}

func (h *Heightmap) Width() int { return h.width }
func (h *Heightmap) Depth() int { return h.depth }

// InBounds reports whether (x, z) is a grid cell.
func (h *Heightmap) InBounds(x, z int) bool {
	return x >= 0 && x < h.width && z >= 0 && z < h.depth
}

// At returns the elevation at (x, z), or 0 outside the grid.
func (h *Heightmap) At(x, z int) float64 {
	if !h.InBounds(x, z) {
		return 0
	}
	return h.cells[z*h.width+x]
}

// Rows returns a copy of the grid as rows indexed [z][x].
func (h *Heightmap) Rows() [][]float64 {
	rows := make([][]float64, h.depth)
	for z := range rows {
		rows[z] = append([]float64(nil), h.cells[z*h.width:(z+1)*h.width]...)
	}
	return rows
}
