package links

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseParams(t *testing.T) {
	p, err := ParseParams([]byte(`
par: 5
dogleg: true
intensity: 0.75
seed: 67
green:
  half_width: 18
bunker_gap: 3.5
free_bunkers:
  min: 1
  max: 4
terrain:
  noise: simplex
  workers: 2
`))
	require.NoError(t, err)
	require.Equal(t, 5, p.Par)
	require.True(t, p.Dogleg)
	require.Equal(t, 0.75, p.Intensity)
	require.Equal(t, int64(67), p.Seed)
	require.Equal(t, 3.5, p.BunkerGap)
	require.Equal(t, BunkerRange{Min: 1, Max: 4}, p.FreeBunkers)
	require.Equal(t, SimplexNoise, p.Terrain.Noise)
	require.Equal(t, 2, p.Terrain.Workers)

	// unset fields keep their defaults, including inside nested sections
	def := DefaultParams()
	require.Equal(t, 18.0, p.Green.HalfWidth)
	require.Equal(t, def.Green.HalfHeight, p.Green.HalfHeight)
	require.Equal(t, def.Width, p.Width)
	require.Equal(t, def.Terrain.Octaves, p.Terrain.Octaves)

	length, err := p.HoleLength()
	require.NoError(t, err)
	require.Equal(t, 550, length)
}

func TestParseParamsInvalid(t *testing.T) {
	for name, doc := range map[string]string{
		"par":         "par: 7",
		"length":      "length: -1",
		"intensity":   "intensity: -2",
		"bunkers":     "free_bunkers: {min: 3, max: 1}",
		"noise":       "terrain: {noise: value}",
		"resolution":  "resolution: {points_per_yard: 0}",
		"rough":       "rough_margin: -4",
		"green count": "green_bunkers: -1",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseParams([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}

	_, err := ParseParams([]byte("par: [4"))
	require.Error(t, err)
}

func TestParseParamsNonFinite(t *testing.T) {
	for name, doc := range map[string]string{
		"intensity":     "intensity: .nan",
		"bend scale":    "bend_scale: .inf",
		"rough":         "rough_margin: .nan",
		"gap":           "bunker_gap: .inf",
		"resolution":    "resolution: {points_per_yard: .inf}",
		"width":         "width: {min_width: .nan}",
		"taper":         "width: {end_taper: .inf}",
		"epsilon":       "region: {epsilon: .nan}",
		"green":         "green: {variance: .nan}",
		"bunker":        "bunker: {half_width: .inf}",
		"band outset":   "band: {outset: .nan}",
		"band variance": "band: {variance: .inf}",
		"fairway width": "terrain: {fairway_width: .nan}",
		"margin":        "terrain: {margin: .inf}",
		"amplitude":     "terrain: {amplitude: -.inf}",
		"scale":         "terrain: {scale: .inf}",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseParams([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestLoadParams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hole.yaml")
	require.NoError(t, os.WriteFile(path, []byte("par: 3\nlength: 180\n"), 0o644))
	p, err := LoadParams(path)
	require.NoError(t, err)
	length, err := p.HoleLength()
	require.NoError(t, err)
	require.Equal(t, 180, length)

	_, err = LoadParams(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParLength(t *testing.T) {
	for par, want := range map[int]int{3: 150, 4: 350, 5: 550} {
		got, err := ParLength(par)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := ParLength(1)
	require.ErrorIs(t, err, ErrInvalidParameter)
}
