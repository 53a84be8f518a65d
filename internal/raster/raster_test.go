package raster

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plaindeck/internal/slide"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

func countNot(img image.Image, c color.Color) int {
	wr, wg, wb, wa := c.RGBA()
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if r != wr || g != wg || b != wb || a != wa {
				n++
			}
		}
	}
	return n
}

func writeRedPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	path := filepath.Join(dir, "red.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestCanvasDrawCenteredText(t *testing.T) {
	c := NewCanvas(200, 100, black, white)
	require.NoError(t, c.DrawCenteredText("Hi", 20, 2))
	assert.Positive(t, countNot(c.Image(), white), "text should mark some pixels")

	c.Clear()
	assert.Zero(t, countNot(c.Image(), white))

	require.NoError(t, c.DrawCenteredText("Hi", 0, 2))
	assert.Zero(t, countNot(c.Image(), white), "zero font size draws nothing")
}

func TestCanvasDrawCenteredImage(t *testing.T) {
	path := writeRedPNG(t, t.TempDir())

	c := NewCanvas(100, 50, black, white)
	require.NoError(t, c.DrawCenteredImage("file://"+filepath.ToSlash(path)))

	img := c.Image()
	r, g, b, _ := img.At(50, 25).RGBA()
	assert.Greater(t, r, uint32(0xf000))
	assert.Less(t, g, uint32(0x1000))
	assert.Less(t, b, uint32(0x1000))

	// A square fitted into 100x50 is 50x50 and centered, leaving the sides empty.
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(5, 25)))

	err := c.DrawCenteredImage("file:///no/such/image.png")
	assert.Error(t, err)
}

func TestExporterExport(t *testing.T) {
	dir := t.TempDir()
	red := writeRedPNG(t, dir)
	slides, err := slide.Parse("Title\n\n!" + red + "\n\nThe end\nthanks")
	require.NoError(t, err)

	e := &Exporter{Width: 320, Height: 180, Foreground: black, Background: white}
	out := filepath.Join(dir, "out")
	files, err := e.Export(context.Background(), slides, out)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(out, "slide-001.png"),
		filepath.Join(out, "slide-002.png"),
		filepath.Join(out, "slide-003.png"),
	}, files)

	for _, path := range files {
		f, err := os.Open(path)
		require.NoError(t, err)
		cfg, err := png.DecodeConfig(f)
		require.NoError(t, f.Close())
		require.NoError(t, err)
		assert.Equal(t, 320, cfg.Width)
		assert.Equal(t, 180, cfg.Height)
	}
}

func TestExporterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := &Exporter{Width: 10, Height: 10, Foreground: black, Background: white}
	files, err := e.Export(ctx, []slide.Slide{slide.Paragraph{Text: "x"}}, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, files)
}

func TestExporterEmpty(t *testing.T) {
	e := &Exporter{Width: 10, Height: 10, Foreground: black, Background: white}
	_, err := e.Export(context.Background(), nil, t.TempDir())
	assert.ErrorIs(t, err, slide.ErrEmptyDocument)
}
