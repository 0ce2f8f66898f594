// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image/color"

	"github.com/gogpu/polyline/internal/stroke"
)

// Option configures a Plot during creation.
//
// Example:
//
//	plot, _ := render.NewPlot(800, 600,
//	    render.WithMargin(40),
//	    render.WithBackground(color.RGBA{A: 255}),
//	)
type Option func(*options)

// options holds optional configuration for Plot creation.
type options struct {
	margin     int
	lineWidth  float64
	join       stroke.LineJoin
	background color.RGBA
	axisColor  color.RGBA
	axes       bool
	legend     bool
}

// defaultOptions returns the default plot options.
func defaultOptions() options {
	return options{
		margin:     24,
		lineWidth:  1.5,
		join:       stroke.LineJoinMiter,
		background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		axisColor:  color.RGBA{R: 160, G: 160, B: 160, A: 255},
		axes:       true,
		legend:     true,
	}
}

// WithMargin sets the blank border, in pixels, around the plot area.
// Negative values are ignored.
func WithMargin(px int) Option {
	return func(o *options) {
		if px >= 0 {
			o.margin = px
		}
	}
}

// WithLineWidth sets the stroke width of every series, in pixels.
// Non-positive values are ignored.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithBevelJoins draws series corners beveled instead of mitered.
func WithBevelJoins() Option {
	return func(o *options) {
		o.join = stroke.LineJoinBevel
	}
}

// WithBackground sets the background color.
func WithBackground(c color.RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithAxes enables or disables the plot frame and the y = 0 line.
func WithAxes(enabled bool) Option {
	return func(o *options) {
		o.axes = enabled
	}
}

// WithLegend enables or disables the series legend.
func WithLegend(enabled bool) Option {
	return func(o *options) {
		o.legend = enabled
	}
}
