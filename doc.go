// Package polyline simplifies 2D polylines with the Ramer-Douglas-Peucker
// algorithm.
//
// # Overview
//
// A densely sampled curve, such as a waveform captured at audio rate, often
// carries far more points than a display needs. Simplify removes every
// interior point that lies within a tolerance (epsilon) of the chord it
// would be replaced by, keeping the points that define the visible shape.
//
//	pts := []polyline.Point{polyline.Pt(0, 0), polyline.Pt(1, 0.01), polyline.Pt(2, 0)}
//	out := polyline.Simplify(pts, 0.1) // [{0 0} {2 0}]
//
// # Guarantees
//
//   - The result is a subsequence of the input: same order, same values.
//   - The first and last input points are always kept.
//   - Fewer than three points are returned unchanged.
//   - A larger epsilon never keeps more points than a smaller one.
//
// Distances are measured to the infinite line through a sub-range's
// endpoints, not to the clamped segment.
//
// # Implementation
//
// The divide-and-conquer structure runs over an explicit stack of index
// spans, so very long polylines do not grow the goroutine stack. The output
// is identical to the classic recursive formulation, including its
// leftmost-pivot tie-break.
//
// # Collaborators
//
// Package wave generates sampled waveforms to feed the simplifier and
// package render plots original and simplified polylines to PNG or SVG.
// The core package depends on neither.
package polyline
