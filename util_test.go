package links

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// fixedStream replays constant values, cycling IntN through its sequence.
type fixedStream struct {
	uniform float64
	normal  float64
	ints    []int
	calls   int
}

func (s *fixedStream) Float64() float64     { s.calls++; return s.uniform }
func (s *fixedStream) NormFloat64() float64 { s.calls++; return s.normal }

func (s *fixedStream) IntN(n int) int {
	s.calls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = append(s.ints[1:], v)
	return v % n
}

// circle returns a closed counter-clockwise ring of n distinct points.
func circle(center Point, r float64, n int) Polygon {
	p := make(Polygon, n+1)
	for i := range n {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		p[i] = center.Translate(Vec(r*cos, r*sin))
	}
	p[n] = p[0]
	return p
}

func square(x0, y0, x1, y1 float64) Polygon {
	return Polygon{Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1), Pt(x0, y0)}
}

func reversed(p Polygon) Polygon {
	out := make(Polygon, len(p))
	for i, pt := range p {
		out[len(p)-1-i] = pt
	}
	return out
}
