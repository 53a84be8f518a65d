package termimage

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{G: 255, A: 255})
		}
	}
	return img
}

func TestRenderFitsBox(t *testing.T) {
	out := Render(solid(40, 20), 30, 10)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	for _, line := range lines {
		assert.Equal(t, 30, lipgloss.Width(line))
	}
	assert.Contains(t, out, upperHalf)
}

func TestRenderKeepsAspect(t *testing.T) {
	// 20x20 pixels into 40 columns x 5 rows is limited by height: 10x10 pixels,
	// so 10 half-block cells per line on 5 lines.
	out := Render(solid(20, 20), 40, 5)

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 10, strings.Count(line, upperHalf))
	}
}

func TestRenderEmptyBox(t *testing.T) {
	assert.Empty(t, Render(solid(4, 4), 0, 10))
	assert.Empty(t, Render(solid(4, 4), 10, 0))
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ff8000", hex(color.RGBA{R: 0xff, G: 0x80, A: 0xff}))
	assert.Equal(t, "#000000", hex(color.Transparent))
}
