package links

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// parLengths maps a hole's par to its default length in yards.
var parLengths = map[int]int{
	3: 150,
	4: 350,
	5: 550,
}

// ParLength returns the default length of a hole of the given par.
func ParLength(par int) (int, error) {
	length, ok := parLengths[par]
	if !ok {
		return 0, fmt.Errorf("%w: par %d, want 3, 4 or 5", ErrInvalidParameter, par)
	}
	return length, nil
}

// BunkerRange bounds the number of free-standing bunkers.
type BunkerRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Params holds every generation parameter. The zero value is not useful;
// start from [DefaultParams] or [ParseParams].
type Params struct {
	// Length of the hole in yards. Zero derives it from Par.
	Length    int     `yaml:"length"`
	Par       int     `yaml:"par"`
	Dogleg    bool    `yaml:"dogleg"`
	Intensity float64 `yaml:"intensity"`
	Seed      int64   `yaml:"seed"`

	// RandomBend draws the bend's position and direction from the stream
	// instead of using BendIndex and BendDirection.
	RandomBend    bool    `yaml:"random_bend"`
	BendIndex     int     `yaml:"bend_index"`
	BendDirection int     `yaml:"bend_direction"`
	BendScale     float64 `yaml:"bend_scale"`
	Inflections   int     `yaml:"inflections"`

	Width       WidthConfig      `yaml:"width"`
	Region      RegionConfig     `yaml:"region"`
	Resolution  ResolutionPolicy `yaml:"resolution"`
	RoughMargin float64          `yaml:"rough_margin"`

	Green        BlobConfig  `yaml:"green"`
	GreenBunkers int         `yaml:"green_bunkers"`
	Band         BandConfig  `yaml:"band"`
	FreeBunkers  BunkerRange `yaml:"free_bunkers"`
	Bunker       BlobConfig  `yaml:"bunker"`
	// BunkerGap is the distance between the fairway edge and a free-standing
	// bunker.
	BunkerGap float64 `yaml:"bunker_gap"`

	Terrain TerrainConfig `yaml:"terrain"`

	// Stream replaces the seeded stream. The heightmap still uses Seed.
	Stream Stream `yaml:"-"`
	// Logger receives stage timings. Nil discards them.
	Logger *slog.Logger `yaml:"-"`
}

func DefaultParams() Params {
	return Params{
		Par:         4,
		Intensity:   1,
		Inflections: DefaultInflections,
		BendScale:   DefaultBendScale,
		Width:       DefaultWidthConfig(),
		Region:      DefaultRegionConfig(),
		Resolution:  DefaultResolutionPolicy(),
		RoughMargin: 20,
		Green: BlobConfig{
			HalfWidth:  15,
			HalfHeight: 15,
			Variance:   2,
			Samples:    12,
		},
		GreenBunkers: 1,
		Band:         DefaultBandConfig(),
		FreeBunkers:  BunkerRange{Min: 0, Max: 2},
		Bunker: BlobConfig{
			HalfWidth:  4,
			HalfHeight: 3,
			Variance:   0.5,
			Samples:    8,
		},
		BunkerGap: 2,
		Terrain:   DefaultTerrainConfig(),
	}
}

// ParseParams decodes YAML on top of [DefaultParams], so a document only
// needs the fields it changes.
func ParseParams(data []byte) (Params, error) {
	p := DefaultParams()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("parsing params YAML: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// LoadParams reads parameters from a YAML file.
func LoadParams(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("reading params file: %w", err)
	}
	return ParseParams(data)
}

// HoleLength returns the explicit length, or the par's default length when
// none is set.
func (p Params) HoleLength() (int, error) {
	byPar, err := ParLength(p.Par)
	if err != nil {
		return 0, err
	}
	switch {
	case p.Length < 0:
		return 0, fmt.Errorf("%w: length %d", ErrInvalidParameter, p.Length)
	case p.Length == 0:
		return byPar, nil
	default:
		return p.Length, nil
	}
}

// Validate checks every parameter, so a bad value fails before any stage
// runs. Builders validate their own configuration again when called
// directly.
func (p Params) Validate() error {
	if _, err := p.HoleLength(); err != nil {
		return err
	}
	if !finite(p.Intensity, p.BendScale, p.RoughMargin, p.BunkerGap, p.Resolution.PointsPerYard) {
		return fmt.Errorf("%w: non-finite intensity %g, bend scale %g, rough margin %g, bunker gap %g or resolution %g",
			ErrInvalidParameter, p.Intensity, p.BendScale, p.RoughMargin, p.BunkerGap, p.Resolution.PointsPerYard)
	}
	if p.Intensity < 0 || p.BendScale < 0 {
		return fmt.Errorf("%w: negative bend intensity %g or scale %g", ErrInvalidParameter, p.Intensity, p.BendScale)
	}
	if p.RoughMargin < 0 || p.BunkerGap < 0 {
		return fmt.Errorf("%w: negative rough margin %g or bunker gap %g", ErrInvalidParameter, p.RoughMargin, p.BunkerGap)
	}
	if p.GreenBunkers < 0 || p.FreeBunkers.Min < 0 || p.FreeBunkers.Max < p.FreeBunkers.Min {
		return fmt.Errorf("%w: bunker counts green=%d free=%d..%d",
			ErrInvalidParameter, p.GreenBunkers, p.FreeBunkers.Min, p.FreeBunkers.Max)
	}
	if p.Resolution.PointsPerYard <= 0 || p.Resolution.MinPoints < 4 {
		return fmt.Errorf("%w: resolution %g points/yard, min %d",
			ErrInvalidParameter, p.Resolution.PointsPerYard, p.Resolution.MinPoints)
	}
	if err := p.Width.validate(); err != nil {
		return err
	}
	if !finite(p.Region.Epsilon) || !(p.Region.Epsilon > 0) || p.Region.Samples < 2 {
		return fmt.Errorf("%w: region epsilon %g, %d samples", ErrInvalidParameter, p.Region.Epsilon, p.Region.Samples)
	}
	if err := p.Green.validate(); err != nil {
		return fmt.Errorf("green: %w", err)
	}
	if err := p.Bunker.validate(); err != nil {
		return fmt.Errorf("bunker: %w", err)
	}
	if err := p.Band.validate(); err != nil {
		return err
	}
	return p.Terrain.validate()
}
