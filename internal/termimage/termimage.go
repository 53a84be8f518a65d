// Package termimage draws images in a terminal using half-block characters.
//
// Each cell shows two vertically stacked pixels: the upper half block takes
// the top pixel as its foreground and the bottom pixel as its background.
package termimage

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"plaindeck/internal/imageload"
)

const upperHalf = "▀"

// Render scales img to fit cols x rows cells, keeping its aspect ratio, and
// returns it centered in a cols x rows block.
func Render(img image.Image, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	scaled := imageload.Fit(img, cols, rows*2)
	b := scaled.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hex(scaled.At(x, y))
			bottom := top
			if y+1 < b.Max.Y {
				bottom = hex(scaled.At(x, y+1))
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalf))
		}
	}

	return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, sb.String())
}

// hex flattens c onto black and formats it as #rrggbb.
func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
