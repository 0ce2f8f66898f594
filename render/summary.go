// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteSummary reports the point counts before and after simplification,
// with digit grouping:
//
//	Original Data Points: 44,100
//	Simplified Data Points: 61
//	Reduction: 99.9%
//
// The reduction line is omitted when original is zero.
func WriteSummary(w io.Writer, original, simplified int) error {
	p := message.NewPrinter(language.English)
	if _, err := p.Fprintf(w, "Original Data Points: %d\n", original); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Simplified Data Points: %d\n", simplified); err != nil {
		return err
	}
	if original == 0 {
		return nil
	}
	reduction := 100 * (1 - float64(simplified)/float64(original))
	_, err := p.Fprintf(w, "Reduction: %.1f%%\n", reduction)
	return err
}
