package polyline

import "math"

// PerpendicularDistance returns the distance from p to the infinite line
// through start and end.
//
// The line is not clamped to the segment: a point whose foot lies beyond
// either end is still measured against the extended line. When start and
// end coincide exactly, the result is the Euclidean distance from p to start.
func PerpendicularDistance(p, start, end Point) float64 {
	if start == end {
		return p.Distance(start)
	}
	dx := end.X - start.X
	dy := end.Y - start.Y
	num := math.Abs(dy*p.X - dx*p.Y + end.X*start.Y - end.Y*start.X)
	return num / math.Sqrt(dy*dy+dx*dx)
}
