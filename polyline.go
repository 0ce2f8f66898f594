package polyline

import "math"

// Polyline is an ordered sequence of points describing a piecewise-linear
// path. Duplicate and coincident points are allowed.
type Polyline []Point

// FromSamples converts evenly spaced samples into a polyline where point i
// is (i, samples[i]).
func FromSamples(samples []float64) Polyline {
	pl := make(Polyline, len(samples))
	for i, y := range samples {
		pl[i] = Point{X: float64(i), Y: y}
	}
	return pl
}

// Simplify returns the polyline reduced with tolerance epsilon.
// See [Simplify] for the exact semantics.
func (pl Polyline) Simplify(epsilon float64) Polyline {
	return Simplify(pl, epsilon)
}

// Len returns the number of points.
func (pl Polyline) Len() int {
	return len(pl)
}

// Bounds returns the minimum and maximum corners of the axis-aligned box
// enclosing all finite points. ok is false when there are none.
func (pl Polyline) Bounds() (lo, hi Point, ok bool) {
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range pl {
		if !p.IsFinite() {
			continue
		}
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
		ok = true
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return lo, hi, true
}
