// Package raster draws slides into images with fogleman/gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"plaindeck/internal/imageload"
	"plaindeck/internal/viewer"
)

const lineSpacing = 1.2

var (
	goFont     *truetype.Font
	goFontErr  error
	goFontOnce sync.Once
)

func loadGoFont() (*truetype.Font, error) {
	goFontOnce.Do(func() {
		goFont, goFontErr = truetype.Parse(goregular.TTF)
	})
	return goFont, goFontErr
}

// Canvas is a viewer.Canvas backed by an in-memory image.
type Canvas struct {
	dc *gg.Context
	fg color.Color
	bg color.Color
}

// NewCanvas returns a width x height canvas cleared to bg.
func NewCanvas(width, height int, fg, bg color.Color) *Canvas {
	c := &Canvas{dc: gg.NewContext(width, height), fg: fg, bg: bg}
	c.Clear()
	return c
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	c.dc.SetColor(c.bg)
	c.dc.Clear()
}

// Width returns the viewport width in pixels.
func (c *Canvas) Width() float64 { return float64(c.dc.Width()) }

// Image returns the drawn image.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// DrawCenteredText wraps text inside the margins and draws it centered.
func (c *Canvas) DrawCenteredText(text string, fontSize, margin float64) error {
	if fontSize <= 0 {
		return nil
	}

	font, err := loadGoFont()
	if err != nil {
		return fmt.Errorf("parsing embedded font: %w", err)
	}
	c.dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: fontSize}))
	c.dc.SetColor(c.fg)

	w := float64(c.dc.Width())
	h := float64(c.dc.Height())
	c.dc.DrawStringWrapped(text, w/2, h/2, 0.5, 0.5, w-2*margin, lineSpacing, gg.AlignCenter)
	return nil
}

// DrawCenteredImage loads the image at uri and draws it centered, scaled to
// fit the canvas.
func (c *Canvas) DrawCenteredImage(uri string) error {
	img, err := imageload.Load(uri)
	if err != nil {
		return err
	}

	fitted := imageload.Fit(img, c.dc.Width(), c.dc.Height())
	c.dc.DrawImageAnchored(fitted, c.dc.Width()/2, c.dc.Height()/2, 0.5, 0.5)
	return nil
}

var _ viewer.Canvas = (*Canvas)(nil)
