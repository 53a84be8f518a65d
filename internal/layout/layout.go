// Package layout picks a font size and margin for a paragraph slide.
//
// The fit is a heuristic: line width is approximated by character count, so
// it is cheap enough to run on every frame without font metrics.
package layout

import (
	"strings"
	"unicode/utf8"
)

const (
	// A line of ReferenceChars characters should span 1/ReferenceDivisor of
	// the viewport width.
	ReferenceChars   = 8.0
	ReferenceDivisor = 3.0

	// CapRatio bounds the font size as a fraction of the viewport width.
	CapRatio = 0.025

	// MarginRatio is the margin on every side as a fraction of the width.
	MarginRatio = 0.01
)

// Result is the presentation of a paragraph, in viewport width units.
type Result struct {
	FontSize float64
	Margin   float64
}

// Compute returns the font size and margin for text at the given viewport
// width. The font size shrinks as the longest line grows and never exceeds
// width*CapRatio.
func Compute(text string, viewportWidth float64) Result {
	longest := float64(LongestLine(text))

	upper := viewportWidth * CapRatio
	size := viewportWidth / ReferenceDivisor * (ReferenceChars / longest)
	if size > upper {
		size = upper
	}

	return Result{
		FontSize: size,
		Margin:   viewportWidth * MarginRatio,
	}
}

// LongestLine returns the rune count of the longest newline-delimited line
// of text, and at least 1.
func LongestLine(text string) int {
	longest := 1
	for _, line := range strings.Split(text, "\n") {
		if n := utf8.RuneCountInString(line); n > longest {
			longest = n
		}
	}
	return longest
}
