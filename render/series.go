// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"
	"math"

	"github.com/gogpu/polyline"
	"github.com/gogpu/polyline/internal/stroke"
)

// Series is one polyline to plot.
type Series struct {
	Label  string
	Points polyline.Polyline

	// Color is the stroke color. The zero value picks the next color from
	// Palette by series position.
	Color color.RGBA
}

// Palette holds the colors assigned to series without an explicit Color.
var Palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// colorAt returns the color series i is drawn with.
func colorAt(series []Series, i int) color.RGBA {
	if c := series[i].Color; c != (color.RGBA{}) {
		return c
	}
	return Palette[i%len(Palette)]
}

// frame maps data coordinates into a pixel rectangle, flipping Y.
type frame struct {
	lo, hi polyline.Point
	x0, y0 float64 // pixel position of lo.X and hi.Y
	sx, sy float64
}

// newFrame fits the union bounding box of series into the pixel rectangle
// [x0, x1] x [y0, y1]. ok is false when no series has a finite point or
// the extent is too wide to scale.
func newFrame(series []Series, x0, y0, x1, y1 float64) (f frame, ok bool) {
	lo := polyline.Pt(math.Inf(1), math.Inf(1))
	hi := polyline.Pt(math.Inf(-1), math.Inf(-1))
	for _, s := range series {
		l, h, found := s.Points.Bounds()
		if !found {
			continue
		}
		lo = polyline.Pt(math.Min(lo.X, l.X), math.Min(lo.Y, l.Y))
		hi = polyline.Pt(math.Max(hi.X, h.X), math.Max(hi.Y, h.Y))
		ok = true
	}
	if !ok {
		return frame{}, false
	}

	// A flat extent is centered instead of divided by zero.
	if hi.X == lo.X {
		lo.X, hi.X = lo.X-0.5, hi.X+0.5
	}
	if hi.Y == lo.Y {
		lo.Y, hi.Y = lo.Y-0.5, hi.Y+0.5
	}

	f = frame{
		lo: lo,
		hi: hi,
		x0: x0,
		y0: y0,
		sx: (x1 - x0) / (hi.X - lo.X),
		sy: (y1 - y0) / (hi.Y - lo.Y),
	}
	// An extent wider than MaxFloat64 overflows to +Inf and collapses the
	// scale to zero.
	if !usableScale(f.sx) || !usableScale(f.sy) {
		polyline.Logger().Warn("render: data extent cannot be scaled",
			"lo", lo, "hi", hi, "sx", f.sx, "sy", f.sy)
		return frame{}, false
	}
	return f, true
}

func usableScale(s float64) bool {
	return s > 0 && !math.IsInf(s, 1)
}

// project returns the pixel position of p.
func (f frame) project(p polyline.Point) stroke.Point {
	return stroke.Point{
		X: f.x0 + (p.X-f.lo.X)*f.sx,
		Y: f.y0 + (f.hi.Y-p.Y)*f.sy,
	}
}

// runs projects pl, splitting it at non-finite points.
func (f frame) runs(pl polyline.Polyline) [][]stroke.Point {
	var out [][]stroke.Point
	var cur []stroke.Point
	for _, p := range pl {
		if !p.IsFinite() {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, f.project(p))
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}
