package manifest

import (
	"errors"
	"fmt"
)

// ErrInvalidManifest is the sentinel wrapped by every Error, so callers can
// classify parse failures with errors.Is without caring about the path.
var ErrInvalidManifest = errors.New("invalid manifest")

// Error reports a manifest that could not be decoded, carrying the path of
// the offending file and the underlying cause.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid manifest %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidManifest) match any manifest Error.
func (e *Error) Is(target error) bool {
	return target == ErrInvalidManifest
}
