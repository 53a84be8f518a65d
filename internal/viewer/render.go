package viewer

import "fmt"

// Canvas is what a host must provide to draw a slide.
type Canvas interface {
	DrawCenteredText(text string, fontSize, margin float64) error
	DrawCenteredImage(uri string) error
}

// RenderSpec describes one frame: a TextSpec or an ImageSpec.
type RenderSpec interface {
	Draw(c Canvas) error
}

// TextSpec draws text centered at FontSize with Margin on every side.
type TextSpec struct {
	Text     string
	FontSize float64
	Margin   float64
}

// ImageSpec draws the image at URI centered and scaled to fit.
type ImageSpec struct {
	URI string
}

func (s TextSpec) Draw(c Canvas) error {
	if err := c.DrawCenteredText(s.Text, s.FontSize, s.Margin); err != nil {
		return fmt.Errorf("drawing text: %w", err)
	}
	return nil
}

func (s ImageSpec) Draw(c Canvas) error {
	if err := c.DrawCenteredImage(s.URI); err != nil {
		return fmt.Errorf("drawing image %s: %w", s.URI, err)
	}
	return nil
}
