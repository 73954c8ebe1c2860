package links

import (
	"errors"
	"math"
	"testing"
)

func TestPolygonValidate(t *testing.T) {
	if err := square(0, 0, 10, 10).Validate(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	for name, p := range map[string]Polygon{
		"too few":    {Pt(0, 0), Pt(1, 0), Pt(0, 0)},
		"unclosed":   {Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
		"coincident": {Pt(0, 0), Pt(1, 0), Pt(1, 0), Pt(0, 1), Pt(0, 0)},
		"nan":        {Pt(0, 0), Pt(1, 0), Pt(math.NaN(), 1), Pt(0, 1), Pt(0, 0)},
	} {
		t.Run(name, func(t *testing.T) {
			if err := p.Validate(); !errors.Is(err, ErrDegenerateGeometry) {
				t.Errorf("got error %v, want %v", err, ErrDegenerateGeometry)
			}
		})
	}
}

func TestPolygonMeasures(t *testing.T) {
	p := square(0, 0, 10, 5)
	if a := p.SignedArea(); a != 50 {
		t.Errorf("got area %g, want 50", a)
	}
	if a := reversed(p).SignedArea(); a != -50 {
		t.Errorf("got area %g, want -50", a)
	}
	if l := p.Perimeter(); l != 30 {
		t.Errorf("got perimeter %g, want 30", l)
	}
	diff(t, Rect{0, 0, 10, 5}, p.BoundingBox())

	open := Polygon(p.Open())
	if len(open) != 4 {
		t.Fatalf("got %d open vertices, want 4", len(open))
	}
	// an open ring is closed implicitly
	if a := open.SignedArea(); a != 50 {
		t.Errorf("got area %g for open ring, want 50", a)
	}
}

func TestPolygonWinding(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	cw := reversed(ccw)
	for _, tc := range []struct {
		pt      Point
		ccw, cw int
	}{
		{Pt(5, 5), 1, -1},
		{Pt(0.5, 9.5), 1, -1},
		{Pt(-5, 5), 0, 0},
		{Pt(15, 5), 0, 0},
		{Pt(5, 15), 0, 0},
	} {
		if w := ccw.Winding(tc.pt); w != tc.ccw {
			t.Errorf("ccw winding at %v = %d, want %d", tc.pt, w, tc.ccw)
		}
		if w := cw.Winding(tc.pt); w != tc.cw {
			t.Errorf("cw winding at %v = %d, want %d", tc.pt, w, tc.cw)
		}
		if got, want := ccw.Contains(tc.pt), tc.ccw != 0; got != want {
			t.Errorf("Contains(%v) = %t, want %t", tc.pt, got, want)
		}
		if got, want := cw.Contains(tc.pt), tc.ccw != 0; got != want {
			t.Errorf("Contains(%v) on reversed ring = %t, want %t", tc.pt, got, want)
		}
	}
}

func TestPolygonContainsCircle(t *testing.T) {
	c := circle(Pt(3, -2), 10, 64)
	for i := range 36 {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / 36)
		inside := Pt(3+9*cos, -2+9*sin)
		outside := Pt(3+11*cos, -2+11*sin)
		if !c.Contains(inside) {
			t.Errorf("%v should be inside", inside)
		}
		if c.Contains(outside) {
			t.Errorf("%v should be outside", outside)
		}
	}
}

func TestPolygonDistance(t *testing.T) {
	p := square(0, 0, 10, 10)
	for _, tc := range []struct {
		pt   Point
		want float64
	}{
		{Pt(5, -3), 3},
		{Pt(5, 5), 5},
		{Pt(13, 14), 5},
	} {
		if d := p.Distance(tc.pt); math.Abs(d-tc.want) > 1e-12 {
			t.Errorf("Distance(%v) = %g, want %g", tc.pt, d, tc.want)
		}
	}
}

func TestPolygonNearest(t *testing.T) {
	p := square(0, 0, 10, 10)
	for _, tc := range []struct {
		pt   Point
		want Point
		edge Line
	}{
		{Pt(5, -3), Pt(5, 0), Line{Pt(0, 0), Pt(10, 0)}},
		{Pt(9, 4), Pt(10, 4), Line{Pt(10, 0), Pt(10, 10)}},
		{Pt(13, 14), Pt(10, 10), Line{Pt(10, 0), Pt(10, 10)}},
	} {
		q, edge := p.Nearest(tc.pt)
		if !q.Coincides(tc.want, 1e-12) {
			t.Errorf("Nearest(%v) = %v, want %v", tc.pt, q, tc.want)
		}
		if edge != tc.edge {
			t.Errorf("Nearest(%v) edge = %v, want %v", tc.pt, edge, tc.edge)
		}
		if d := tc.pt.Distance(q); math.Abs(d-p.Distance(tc.pt)) > 1e-12 {
			t.Errorf("Nearest(%v) is %g away, Distance says %g", tc.pt, d, p.Distance(tc.pt))
		}
	}
}

func TestPolygonSelfIntersects(t *testing.T) {
	if square(0, 0, 10, 10).SelfIntersects() {
		t.Error("square shouldn't intersect itself")
	}
	if circle(Pt(0, 0), 5, 40).SelfIntersects() {
		t.Error("circle shouldn't intersect itself")
	}
	bowtie := Polygon{Pt(0, 0), Pt(10, 10), Pt(10, 0), Pt(0, 10), Pt(0, 0)}
	if !bowtie.SelfIntersects() {
		t.Error("bowtie should intersect itself")
	}
}

func TestPolygonTranslate(t *testing.T) {
	p := square(0, 0, 1, 1)
	got := p.Translate(Vec(2, -3))
	diff(t, square(2, -3, 3, -2), got)
	diff(t, square(0, 0, 1, 1), p)
}
