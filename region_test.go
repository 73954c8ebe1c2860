package links

import (
	"errors"
	"testing"
)

type profileFunc func(d float64) float64

func (f profileFunc) At(d float64) (float64, error) { return f(d), nil }

func constant(v float64) Profile {
	return profileFunc(func(float64) float64 { return v })
}

func TestBuildRegionStraight(t *testing.T) {
	r := Region{
		Length:     100,
		Center:     constant(0),
		Top:        constant(10),
		Bottom:     constant(6),
		Resolution: 200,
	}
	poly, err := BuildRegion(r, DefaultRegionConfig())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(poly) != 200 {
		t.Errorf("got %d points, want 200", len(poly))
	}
	if err := poly.Validate(); err != nil {
		t.Errorf("invalid region: %s", err)
	}
	for _, tc := range []struct {
		pt   Point
		want bool
	}{
		{Pt(50, 0), true},
		{Pt(50, 9), true},
		{Pt(50, -5), true},
		{Pt(50, 11), false},
		{Pt(50, -7), false},
		{Pt(-5, 0), false},
		{Pt(105, 0), false},
	} {
		if got := poly.Contains(tc.pt); got != tc.want {
			t.Errorf("Contains(%v) = %t, want %t", tc.pt, got, tc.want)
		}
	}

	r.Margin = 5
	rough, err := BuildRegion(r, DefaultRegionConfig())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !rough.Contains(Pt(50, 14)) || !rough.Contains(Pt(50, -10)) {
		t.Error("margin should widen the region on both sides")
	}
	if rough.Contains(Pt(50, 16)) {
		t.Error("margin widened the region too far")
	}
}

func TestBuildRegionTapered(t *testing.T) {
	center, err := NewCenterline(350, 7, Bend{Intensity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	top, err := NewWidthProfile(350, DefaultWidthConfig(), NewStream(3))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	bottom, err := NewWidthProfile(350, DefaultWidthConfig(), NewStream(4))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	cfg := DefaultRegionConfig()
	cfg.Strict = true
	poly, err := BuildRegion(Region{
		Length:     350,
		Center:     center,
		Top:        top,
		Bottom:     bottom,
		Resolution: 350,
	}, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// the top edge is traced first, from tee to green, so the ring runs
	// clockwise
	if poly.SignedArea() >= 0 {
		t.Errorf("got area %g, want a clockwise ring", poly.SignedArea())
	}
	for _, x := range []float64{50, 175, 300} {
		c, _ := center.At(x)
		if !poly.Contains(Pt(x, c)) {
			t.Errorf("centerline point at %g outside the region", x)
		}
	}
}

func TestBuildRegionErrors(t *testing.T) {
	base := Region{
		Length:     100,
		Center:     constant(0),
		Top:        constant(5),
		Bottom:     constant(5),
		Resolution: 100,
	}
	for _, tc := range []struct {
		name   string
		mutate func(*Region, *RegionConfig)
		want   error
	}{
		{"zero length", func(r *Region, _ *RegionConfig) { r.Length = 0 }, ErrInvalidParameter},
		{"one sample", func(_ *Region, c *RegionConfig) { c.Samples = 1 }, ErrInvalidParameter},
		{"zero epsilon", func(_ *Region, c *RegionConfig) { c.Epsilon = 0 }, ErrInvalidParameter},
		{"negative margin", func(r *Region, _ *RegionConfig) { r.Margin = -1 }, ErrInvalidParameter},
		{"low resolution", func(r *Region, _ *RegionConfig) { r.Resolution = 3 }, ErrInvalidParameter},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, cfg := base, DefaultRegionConfig()
			tc.mutate(&r, &cfg)
			if _, err := BuildRegion(r, cfg); !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}

	short, err := NewCenterline(50, 5, Bend{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	r := base
	r.Center = short
	if _, err := BuildRegion(r, DefaultRegionConfig()); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("got error %v, want %v", err, ErrOutOfDomain)
	}
}
