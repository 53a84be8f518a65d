// Package viewer composes slides, navigation and layout into the frames a
// host draws.
package viewer

import (
	"fmt"
	"sync"

	"plaindeck/internal/layout"
	"plaindeck/internal/nav"
	"plaindeck/internal/slide"
)

// Controller owns a presentation and the position within it.
// It is driven from a single goroutine; see Locked otherwise.
type Controller struct {
	slides []slide.Slide
	nav    nav.State
	keys   KeyMap
}

// New returns a Controller on the first slide. An empty presentation is
// rejected with slide.ErrEmptyDocument.
func New(slides []slide.Slide, keys KeyMap) (*Controller, error) {
	if len(slides) == 0 {
		return nil, slide.ErrEmptyDocument
	}
	return &Controller{
		slides: slides,
		nav:    nav.New(len(slides)),
		keys:   keys,
	}, nil
}

// OnKey handles one key press and reports whether the current slide changed.
// Keys that are neither previous nor next are ignored.
func (c *Controller) OnKey(key string) bool {
	switch {
	case c.keys.isPrevious(key):
		return c.nav.Retreat()
	case c.keys.isNext(key):
		return c.nav.Advance()
	default:
		return false
	}
}

// CurrentView describes how to draw the current slide at viewportWidth.
func (c *Controller) CurrentView(viewportWidth float64) RenderSpec {
	switch s := c.Current().(type) {
	case slide.Paragraph:
		res := layout.Compute(s.Text, viewportWidth)
		return TextSpec{Text: s.Text, FontSize: res.FontSize, Margin: res.Margin}
	case slide.Image:
		return ImageSpec{URI: s.URI}
	default:
		panic(fmt.Sprintf("viewer: unknown slide type %T", s))
	}
}

func (c *Controller) Current() slide.Slide { return c.slides[c.nav.Index()] }

func (c *Controller) Index() int { return c.nav.Index() }

func (c *Controller) Total() int { return c.nav.Total() }

func (c *Controller) Progress() float64 { return c.nav.Progress() }

// Slides returns the presentation. Callers must not modify it.
func (c *Controller) Slides() []slide.Slide { return c.slides }

// Locked serializes access to a Controller for hosts that deliver input and
// render from different goroutines.
type Locked struct {
	mu sync.Mutex
	c  *Controller
}

func NewLocked(c *Controller) *Locked {
	return &Locked{c: c}
}

func (l *Locked) OnKey(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.OnKey(key)
}

func (l *Locked) CurrentView(viewportWidth float64) RenderSpec {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.CurrentView(viewportWidth)
}

func (l *Locked) Index() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.c.Index()
}
