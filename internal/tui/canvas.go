package tui

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"plaindeck/internal/layout"
	"plaindeck/internal/termimage"
	"plaindeck/internal/viewer"
)

// termCanvas draws one frame into a cols x rows block of terminal cells.
//
// Layout units are converted to cells with cellWidth. Terminal cells are about
// twice as tall as they are wide, so vertical margins use half as many rows.
type termCanvas struct {
	cols, rows int
	cellWidth  float64
	images     map[string]image.Image
	imageErrs  map[string]error
	// rendered caches image frames; the model clears it on resize.
	rendered map[imageKey]string

	out string
}

func (c *termCanvas) viewportWidth() float64 {
	return float64(c.cols) * c.cellWidth
}

func (c *termCanvas) DrawCenteredText(text string, fontSize, margin float64) error {
	marginCols := int(math.Round(margin / c.cellWidth))
	marginRows := int(math.Round(margin / (2 * c.cellWidth)))

	inner := max(c.cols-2*marginCols, 1)
	innerRows := max(c.rows-2*marginRows, 1)

	wrapped := wrapCells(text, inner)
	lines := strings.Split(wrapped, "\n")
	if len(lines) > innerRows {
		lines = lines[:innerRows]
	}

	style := lipgloss.NewStyle().Align(lipgloss.Center)
	// The terminal cannot scale glyphs; text at the size cap is emphasized.
	if fontSize >= c.viewportWidth()*layout.CapRatio {
		style = style.Bold(true)
	}

	block := style.Render(strings.Join(lines, "\n"))
	c.out = lipgloss.Place(c.cols, c.rows, lipgloss.Center, lipgloss.Center, block)
	return nil
}

func (c *termCanvas) DrawCenteredImage(uri string) error {
	if err, ok := c.imageErrs[uri]; ok {
		c.message("Cannot show image: " + err.Error())
		return nil
	}

	img, ok := c.images[uri]
	if !ok {
		c.message("Loading image...")
		return nil
	}

	k := imageKey{uri: uri, cols: c.cols, rows: c.rows}
	if out, ok := c.rendered[k]; ok {
		c.out = out
		return nil
	}

	c.out = termimage.Render(img, c.cols, c.rows)
	if c.rendered != nil {
		c.rendered[k] = c.out
	}
	return nil
}

func (c *termCanvas) message(msg string) {
	block := wrapCells(msg, max(c.cols-2, 1))
	c.out = lipgloss.Place(c.cols, c.rows, lipgloss.Center, lipgloss.Center, block)
}

type imageKey struct {
	uri        string
	cols, rows int
}

// wrapCells breaks text at spaces, then hard-breaks anything still wider
// than width display cells (long words, CJK runs).
func wrapCells(text string, width int) string {
	return wrap.String(wordwrap.String(text, width), width)
}

var _ viewer.Canvas = (*termCanvas)(nil)
