// Package imageload decodes the images named by image slides.
package imageload

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"net/url"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP
)

// Load decodes the image at a file:// URI.
func Load(uri string) (image.Image, error) {
	path, err := pathFromURI(uri)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) // #nosec G304 - path comes from the presentation
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}

// Fit scales img to the largest size that fits in maxW x maxH while keeping
// its aspect ratio. Images are scaled up as well as down.
func Fit(img image.Image, maxW, maxH int) image.Image {
	if maxW <= 0 || maxH <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	w, h := FitSize(img.Bounds().Dx(), img.Bounds().Dy(), maxW, maxH)
	if w == img.Bounds().Dx() && h == img.Bounds().Dy() {
		return img
	}
	return resize.Resize(uint(w), uint(h), img, resize.Bilinear)
}

// FitSize returns the dimensions of a w x h box scaled to fit maxW x maxH.
// The result is at least 1x1 whenever the bounds are positive.
func FitSize(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}

	scale := min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := max(int(float64(w)*scale), 1)
	fh := max(int(float64(h)*scale), 1)
	return min(fw, maxW), min(fh, maxH)
}

func pathFromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parsing image URI %q: %w", uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported image URI scheme %q", u.Scheme)
	}
	return filepath.FromSlash(u.Path), nil
}
