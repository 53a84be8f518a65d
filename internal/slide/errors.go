package slide

import (
	"errors"
	"fmt"
)

// ErrEmptyDocument is returned when a document contains no slides.
var ErrEmptyDocument = errors.New("document contains no slides")

// ImagePathError reports an image directive whose path could not be resolved.
type ImagePathError struct {
	Index int    // 0-based slide index
	Path  string // path as written after '!'
	Err   error
}

func (e *ImagePathError) Error() string {
	return fmt.Sprintf("slide %d: resolving image %q: %v", e.Index+1, e.Path, e.Err)
}

func (e *ImagePathError) Unwrap() error {
	return e.Err
}
