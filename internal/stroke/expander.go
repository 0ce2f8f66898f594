package stroke

import (
	"math"
)

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length < 1e-10 {
		return Vec2{X: 0, Y: 0}
	}
	return Vec2{X: v.X / length, Y: v.Y / length}
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
	// LineJoinNone emits no join geometry.
	LineJoinNone
)

// Stroke defines the style for stroke expansion.
type Stroke struct {
	Width      float64
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns a stroke with default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Join:       LineJoinMiter,
		MiterLimit: 4.0,
	}
}

// Polygon is a closed outline. The last vertex connects back to the first.
type Polygon []Point

// SignedArea returns the shoelace area, positive for counter-clockwise
// winding in a Y-up frame.
func (pg Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range pg {
		q := pg[(i+1)%len(pg)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

// Expander converts polylines to sets of uniformly wound polygons.
type Expander struct {
	style Stroke
}

// NewExpander creates an expander with the given style. A non-positive
// miter limit is replaced by the default of 4.
func NewExpander(style Stroke) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4
	}
	return &Expander{style: style}
}

// Expand returns the outline pieces of the stroked polyline. Consecutive
// duplicate points are skipped. Nothing is returned for a non-positive
// width or fewer than two distinct points.
func (e *Expander) Expand(points []Point) []Polygon {
	hw := e.style.Width / 2
	if !(hw > 0) || len(points) < 2 {
		return nil
	}

	var out []Polygon
	var prevNorm Vec2
	havePrev := false

	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		tan := b.Sub(a)
		if tan.Length() == 0 {
			continue
		}
		norm := tan.Normalize().Perp().Scale(hw)

		if havePrev && e.style.Join != LineJoinNone {
			if join := e.join(a, prevNorm, norm); join != nil {
				out = append(out, join)
			}
		}

		out = append(out, oriented(Polygon{
			a.Add(norm), a.Add(norm.Neg()), b.Add(norm.Neg()), b.Add(norm),
		}))
		prevNorm, havePrev = norm, true
	}
	return out
}

// join returns the wedge filling the outer side of the corner at v, where
// n0 and n1 are the half-width normals of the incoming and outgoing
// segments. It returns nil when the segments are collinear.
func (e *Expander) join(v Point, n0, n1 Vec2) Polygon {
	turn := n0.Cross(n1)
	if turn == 0 {
		return nil
	}

	// A left turn opens the gap on the right-hand side.
	if turn > 0 {
		n0, n1 = n0.Neg(), n1.Neg()
	}
	o0, o1 := v.Add(n0), v.Add(n1)

	if e.style.Join == LineJoinMiter {
		hw := e.style.Width / 2
		cos := n0.Dot(n1) / (hw * hw)
		if 1+cos > 0 && 2/(1+cos) <= e.style.MiterLimit*e.style.MiterLimit {
			tip := v.Add(n0.Add(n1).Scale(1 / (1 + cos)))
			return oriented(Polygon{v, o0, tip, o1})
		}
	}
	return oriented(Polygon{v, o0, o1})
}

// oriented returns pg wound counter-clockwise (positive area).
func oriented(pg Polygon) Polygon {
	if pg.SignedArea() < 0 {
		for i, j := 0, len(pg)-1; i < j; i, j = i+1, j-1 {
			pg[i], pg[j] = pg[j], pg[i]
		}
	}
	return pg
}
