// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/gogpu/polyline"
	"github.com/gogpu/polyline/internal/stroke"
)

// WriteSVG writes the series to w as an SVG document with one <polyline>
// element per finite run of points.
func (p *Plot) WriteSVG(w io.Writer, series ...Series) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		p.width, p.height, p.width, p.height)
	fmt.Fprintf(bw, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(p.opts.background))

	f, ok := p.frame(series)
	if p.opts.axes {
		a := p.area()
		fmt.Fprintf(bw, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="1"/>`+"\n",
			a.Min.X, a.Min.Y, a.Dx(), a.Dy(), hex(p.opts.axisColor))
	}

	if ok {
		for i, s := range series {
			for _, run := range f.runs(s.Points) {
				bw.WriteString(`<polyline fill="none" stroke-linejoin="`)
				bw.WriteString(p.svgJoin())
				fmt.Fprintf(bw, `" stroke="%s" stroke-width="%s" points="`, hex(colorAt(series, i)), num(p.opts.lineWidth))
				for j, pt := range run {
					if j > 0 {
						bw.WriteByte(' ')
					}
					bw.WriteString(num(pt.X))
					bw.WriteByte(',')
					bw.WriteString(num(pt.Y))
				}
				bw.WriteString("\"/>\n")
			}
		}
	}

	if p.opts.legend {
		a := p.area()
		y := a.Min.Y + 18
		for i, s := range series {
			if s.Label == "" {
				continue
			}
			fmt.Fprintf(bw, `<text x="%d" y="%d" font-family="monospace" font-size="12" fill="%s">`,
				a.Min.X+8, y, hex(colorAt(series, i)))
			if err := xml.EscapeText(bw, []byte(s.Label)); err != nil {
				return err
			}
			bw.WriteString("</text>\n")
			y += 16
		}
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// SaveSVG writes the series to an SVG file.
func (p *Plot) SaveSVG(path string, series ...Series) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.WriteSVG(f, series...); err != nil {
		_ = f.Close()
		return fmt.Errorf("render: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	polyline.Logger().Info("render: wrote SVG", "path", path)
	return nil
}

func (p *Plot) svgJoin() string {
	if p.opts.join == stroke.LineJoinBevel {
		return "bevel"
	}
	return "miter"
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// num formats a pixel coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
