package slide

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var errEmptyPath = errors.New("empty path")

const (
	separator = "\n\n"
	directive = "!"
)

// Parse splits document into slides in document order.
//
// It fails with ErrEmptyDocument if the trimmed document is empty and with an
// *ImagePathError if an image directive names a path that does not exist.
func Parse(document string) ([]Slide, error) {
	document = strings.TrimSpace(document)
	if document == "" {
		return nil, ErrEmptyDocument
	}

	blocks := strings.Split(document, separator)
	slides := make([]Slide, 0, len(blocks))
	for i, block := range blocks {
		if !strings.HasPrefix(block, directive) {
			slides = append(slides, Paragraph{Text: block})
			continue
		}

		img, err := parseImage(i, block)
		if err != nil {
			return nil, err
		}
		slides = append(slides, img)
	}

	return slides, nil
}

// ParseFile reads the document at path and parses it.
func ParseFile(path string) ([]Slide, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is the user's presentation
	if err != nil {
		return nil, fmt.Errorf("reading presentation %s: %w", path, err)
	}

	slides, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing presentation %s: %w", path, err)
	}
	return slides, nil
}

func parseImage(index int, block string) (Image, error) {
	line, _, _ := strings.Cut(block, "\n")
	raw := strings.TrimPrefix(line, directive)

	abs, err := canonicalize(raw)
	if err != nil {
		return Image{}, &ImagePathError{Index: index, Path: raw, Err: err}
	}
	return Image{URI: fileURI(abs)}, nil
}

// canonicalize resolves p against the working directory and follows symlinks.
func canonicalize(p string) (string, error) {
	if p == "" {
		return "", errEmptyPath
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
