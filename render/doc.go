// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render plots polylines.
//
// It is the display side of the simplifier: a Plot maps one or more series
// into a shared frame and rasterizes them to an *image.RGBA, a PNG file or
// an SVG document, and WriteSummary reports how many points simplification
// removed.
//
// # Usage
//
//	plot, err := render.NewPlot(800, 600, render.WithLineWidth(1.5))
//	if err != nil {
//	    return err
//	}
//	err = plot.SavePNG("wave.png",
//	    render.Series{Label: "Original Data", Points: original},
//	    render.Series{Label: "Simplified Data", Points: simplified},
//	)
//
// # Coordinates
//
// Data coordinates are Y-up. The union bounding box of all series is
// stretched to fill the plot area inside the margin. Non-finite points are
// left out and split a series into separate runs.
//
// Series are only read, never modified.
package render
