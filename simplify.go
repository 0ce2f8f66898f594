package polyline

import "slices"

// span is a pending sub-range [first, last] of point indices.
type span struct {
	first, last int
}

// Simplify reduces points with the Ramer-Douglas-Peucker algorithm.
//
// Interior points whose perpendicular distance to the chord of their
// sub-range is at most epsilon are discarded. The result is always a
// subsequence of points that keeps the first and last point. Inputs with
// fewer than three points are returned unchanged. The returned slice never
// shares its backing array with points.
//
// When several interior points share the maximum distance, the leftmost one
// becomes the pivot. A pivot whose distance equals epsilon is dropped.
// Coordinates are not validated: a NaN distance never compares greater than
// the running maximum, so such a point is never chosen as a pivot. Use
// [Validate] to reject non-finite input up front.
//
// A negative epsilon keeps every point.
func Simplify(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return slices.Clone(points)
	}

	indices := SimplifyIndices(points, epsilon)
	out := make([]Point, len(indices))
	for i, idx := range indices {
		out[i] = points[idx]
	}

	Logger().Debug("polyline: simplified",
		"in", len(points),
		"out", len(out),
		"epsilon", epsilon)
	return out
}

// SimplifyIndices returns the ascending indices of the points that
// [Simplify] keeps.
func SimplifyIndices(points []Point, epsilon float64) []int {
	n := len(points)
	if n < 3 || epsilon < 0 {
		indices := make([]int, n)
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	keep := make([]bool, n)
	keep[0] = true
	keep[n-1] = true
	kept := 2

	// Spans are popped in the same left-to-right order the recursive
	// definition visits them. Each span's decision depends only on its own
	// points, so marking kept indices in a mask yields the same output.
	stack := []span{{first: 0, last: n - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.last-s.first < 2 {
			continue
		}

		index, dmax := farthest(points, s.first, s.last)
		if dmax > epsilon {
			keep[index] = true
			kept++
			stack = append(stack,
				span{first: index, last: s.last},
				span{first: s.first, last: index})
		}
	}

	indices := make([]int, 0, kept)
	for i, k := range keep {
		if k {
			indices = append(indices, i)
		}
	}
	return indices
}

// farthest scans the interior of points[first..last] and returns the index
// of the first point at maximum distance from the chord, with that distance.
func farthest(points []Point, first, last int) (int, float64) {
	start, end := points[first], points[last]
	dmax := 0.0
	index := first
	for i := first + 1; i < last; i++ {
		if d := PerpendicularDistance(points[i], start, end); d > dmax {
			index = i
			dmax = d
		}
	}
	return index, dmax
}
