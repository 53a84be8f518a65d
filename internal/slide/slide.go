// Package slide turns a plain-text document into an ordered list of slides.
//
// Slides are separated by a blank line. A block that starts with '!' names an
// image file; every other block is shown as a paragraph, verbatim.
package slide

import (
	"net/url"
	"path/filepath"
)

// Slide is one displayable unit of a presentation: a Paragraph or an Image.
type Slide interface {
	isSlide()
}

// Paragraph is text to be centered and auto-sized.
type Paragraph struct {
	Text string
}

// Image is a full-bleed picture addressed by an absolute file:// URI.
type Image struct {
	URI string
}

func (Paragraph) isSlide() {}
func (Image) isSlide()     {}

// Path returns the filesystem path behind the image URI.
func (i Image) Path() (string, error) {
	u, err := url.Parse(i.URI)
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(u.Path), nil
}

// fileURI wraps an absolute path as a file:// URI.
func fileURI(abs string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}
