// Package stroke expands polylines into fillable outlines.
//
// A stroke of width w around a polyline is built from simple pieces rather
// than one continuous outline:
//   - one quadrilateral per non-degenerate segment, offset by w/2 on each
//     side of the segment (butt ends)
//   - one join polygon per corner, filling the wedge on the outer side of
//     the turn
//
// Every polygon is wound the same way. A rasterizer that accumulates signed
// coverage and clamps it (such as golang.org/x/image/vector) therefore
// fills overlaps once instead of cancelling them, and the union of the
// pieces is the stroked path.
//
// # Line Joins
//
//   - LineJoinMiter: sharp corner, falling back to bevel beyond MiterLimit
//   - LineJoinBevel: straight line across the corner
//   - LineJoinNone: no join geometry, segments simply overlap
//
// # Usage
//
//	e := stroke.NewExpander(stroke.Stroke{Width: 2, Join: stroke.LineJoinMiter, MiterLimit: 4})
//	for _, poly := range e.Expand(points) {
//	    // rasterize poly
//	}
package stroke
