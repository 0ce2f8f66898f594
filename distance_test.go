package polyline

import (
	"math"
	"testing"
)

func TestPerpendicularDistance(t *testing.T) {
	tests := []struct {
		name       string
		p          Point
		start, end Point
		want       float64
	}{
		{"on the line", Pt(1, 1), Pt(0, 0), Pt(2, 2), 0},
		{"above horizontal", Pt(1, 0.01), Pt(0, 0), Pt(2, 0), 0.01},
		{"left of vertical", Pt(-3, 7), Pt(0, 0), Pt(0, 10), 3},
		{"reversed direction", Pt(1, 1), Pt(2, 0), Pt(0, 0), 1},
		{"beyond segment end", Pt(10, 1), Pt(0, 0), Pt(1, 0), 1},
		{"before segment start", Pt(-5, -2), Pt(0, 0), Pt(1, 0), 2},
		{"diagonal", Pt(0, 1), Pt(0, 0), Pt(1, 1), math.Sqrt2 / 2},
		{"degenerate segment", Pt(3, 4), Pt(0, 0), Pt(0, 0), 5},
		{"degenerate segment at point", Pt(2, 2), Pt(2, 2), Pt(2, 2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PerpendicularDistance(tt.p, tt.start, tt.end)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("PerpendicularDistance(%v, %v, %v) = %v, want %v", tt.p, tt.start, tt.end, got, tt.want)
			}
			if got < 0 {
				t.Errorf("PerpendicularDistance() = %v, want non-negative", got)
			}
		})
	}
}

func TestPerpendicularDistanceDegenerateMatchesDistance(t *testing.T) {
	s := Pt(-1.5, 2.25)
	for _, p := range []Point{Pt(0, 0), Pt(10, -3), Pt(-1.5, 2.25), Pt(1e6, 1e-6)} {
		if got, want := PerpendicularDistance(p, s, s), p.Distance(s); got != want {
			t.Errorf("PerpendicularDistance(%v, s, s) = %v, want %v", p, got, want)
		}
	}
}

func TestPerpendicularDistanceNaN(t *testing.T) {
	d := PerpendicularDistance(Pt(1, math.NaN()), Pt(0, 0), Pt(2, 0))
	if !math.IsNaN(d) {
		t.Errorf("PerpendicularDistance() = %v, want NaN", d)
	}
}
