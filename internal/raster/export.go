package raster

import (
	"context"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"plaindeck/internal/slide"
	"plaindeck/internal/viewer"
)

// Exporter renders every slide of a presentation to a PNG file.
type Exporter struct {
	Width, Height int
	Foreground    color.Color
	Background    color.Color
	Logger        *slog.Logger
}

// Export writes slide-001.png, slide-002.png, ... into dir and returns the
// paths written. It stops between slides when ctx is cancelled.
func (e *Exporter) Export(ctx context.Context, slides []slide.Slide, dir string) ([]string, error) {
	logger := e.Logger
	if logger == nil {
		logger = slog.Default()
	}

	next := "next"
	ctrl, err := viewer.New(slides, viewer.KeyMap{Previous: []string{"previous"}, Next: []string{next}})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	canvas := NewCanvas(e.Width, e.Height, e.Foreground, e.Background)
	files := make([]string, 0, ctrl.Total())
	for {
		if err := ctx.Err(); err != nil {
			return files, err
		}

		canvas.Clear()
		spec := ctrl.CurrentView(canvas.Width())
		if err := spec.Draw(canvas); err != nil {
			return files, fmt.Errorf("slide %d: %w", ctrl.Index()+1, err)
		}

		path := filepath.Join(dir, fmt.Sprintf("slide-%03d.png", ctrl.Index()+1))
		if err := savePNG(canvas, path); err != nil {
			return files, err
		}
		files = append(files, path)
		logger.Debug("exported slide", slog.Int("index", ctrl.Index()+1), slog.String("path", path))

		if !ctrl.OnKey(next) {
			break
		}
	}

	logger.Info("export complete", slog.Int("slides", len(files)), slog.String("dir", dir))
	return files, nil
}

func savePNG(c *Canvas, path string) error {
	f, err := os.Create(path) // #nosec G304 - path is under the user's output directory
	if err != nil {
		return fmt.Errorf("creating PNG file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, c.Image()); err != nil {
		return fmt.Errorf("encoding PNG %s: %w", path, err)
	}
	return nil
}
