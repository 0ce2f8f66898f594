// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/polyline"
	"github.com/gogpu/polyline/internal/stroke"
)

// ErrInvalidSize is returned by NewPlot for dimensions that leave no room to
// draw.
var ErrInvalidSize = errors.New("render: invalid plot size")

// Plot renders series into a fixed-size image.
type Plot struct {
	width, height int
	opts          options
}

// NewPlot creates a plot of the given pixel size.
func NewPlot(width, height int, opts ...Option) (*Plot, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d (both must be > 0)", ErrInvalidSize, width, height)
	}
	if 2*o.margin >= width || 2*o.margin >= height {
		return nil, fmt.Errorf("%w: margin %d leaves no plot area in %dx%d", ErrInvalidSize, o.margin, width, height)
	}
	return &Plot{width: width, height: height, opts: o}, nil
}

// Width returns the image width in pixels.
func (p *Plot) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *Plot) Height() int { return p.height }

// area returns the plot area inside the margin.
func (p *Plot) area() image.Rectangle {
	m := p.opts.margin
	return image.Rect(m, m, p.width-m, p.height-m)
}

// frame fits series into the plot area.
func (p *Plot) frame(series []Series) (frame, bool) {
	a := p.area()
	return newFrame(series, float64(a.Min.X), float64(a.Min.Y), float64(a.Max.X), float64(a.Max.Y))
}

// Draw renders the series and returns the image.
func (p *Plot) Draw(series ...Series) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(p.opts.background), image.Point{}, xdraw.Src)

	f, ok := p.frame(series)
	if p.opts.axes {
		p.drawAxes(img, f, ok)
	}
	if !ok {
		polyline.Logger().Warn("render: nothing to plot", "series", len(series))
		return img
	}

	z := vector.NewRasterizer(p.width, p.height)
	ex := stroke.NewExpander(stroke.Stroke{Width: p.opts.lineWidth, Join: p.opts.join})
	for i, s := range series {
		runs := f.runs(s.Points)
		if len(runs) == 0 {
			polyline.Logger().Warn("render: series has no finite points", "label", s.Label)
			continue
		}
		z.Reset(p.width, p.height)
		for _, run := range runs {
			fillPolygons(z, ex.Expand(run))
		}
		z.Draw(img, img.Bounds(), image.NewUniform(colorAt(series, i)), image.Point{})
		polyline.Logger().Debug("render: series drawn", "label", s.Label, "points", s.Points.Len())
	}

	if p.opts.legend {
		p.drawLegend(img, series)
	}
	return img
}

// EncodePNG draws the series and writes them to w as PNG.
func (p *Plot) EncodePNG(w io.Writer, series ...Series) error {
	return png.Encode(w, p.Draw(series...))
}

// SavePNG draws the series and writes them to a PNG file.
func (p *Plot) SavePNG(path string, series ...Series) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.EncodePNG(f, series...); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	polyline.Logger().Info("render: wrote PNG", "path", path, "width", p.width, "height", p.height)
	return nil
}

// fillPolygons adds every polygon to the rasterizer as a closed path.
func fillPolygons(z *vector.Rasterizer, polys []stroke.Polygon) {
	for _, pg := range polys {
		if len(pg) < 3 {
			continue
		}
		z.MoveTo(float32(pg[0].X), float32(pg[0].Y))
		for _, v := range pg[1:] {
			z.LineTo(float32(v.X), float32(v.Y))
		}
		z.ClosePath()
	}
}

// drawAxes outlines the plot area and, when it is in range, the y = 0 line.
func (p *Plot) drawAxes(img *image.RGBA, f frame, ok bool) {
	a := p.area()
	x0, y0 := float64(a.Min.X)+0.5, float64(a.Min.Y)+0.5
	x1, y1 := float64(a.Max.X)-0.5, float64(a.Max.Y)-0.5

	z := vector.NewRasterizer(p.width, p.height)
	ex := stroke.NewExpander(stroke.Stroke{Width: 1, Join: stroke.LineJoinMiter})
	fillPolygons(z, ex.Expand([]stroke.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0}}))
	if ok && f.lo.Y < 0 && f.hi.Y > 0 {
		y := f.project(polyline.Pt(f.lo.X, 0)).Y
		fillPolygons(z, ex.Expand([]stroke.Point{{X: x0, Y: y}, {X: x1, Y: y}}))
	}
	z.Draw(img, img.Bounds(), image.NewUniform(p.opts.axisColor), image.Point{})
}

// drawLegend lists labeled series in the top-left corner of the plot area.
func (p *Plot) drawLegend(img *image.RGBA, series []Series) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 4
	a := p.area()
	x, y := a.Min.X+8, a.Min.Y+8

	d := &font.Drawer{Dst: img, Face: face}
	for i, s := range series {
		if s.Label == "" {
			continue
		}
		c := colorAt(series, i)
		swatch := image.Rect(x, y+3, x+16, y+6)
		xdraw.Draw(img, swatch, image.NewUniform(c), image.Point{}, xdraw.Over)

		d.Src = image.NewUniform(color.RGBA{A: 255})
		d.Dot = fixed.P(x+22, y+face.Metrics().Ascent.Ceil()-2)
		d.DrawString(s.Label)
		y += lineHeight
	}
}
