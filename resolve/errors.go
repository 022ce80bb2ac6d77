package resolve

import (
	"errors"
	"fmt"
)

// ErrResolution indicates a surface location with no leaf section behind it.
var ErrResolution = errors.New("no leaf section for surface location")

// ResolutionError reports why a surface location could not be resolved.
type ResolutionError struct {
	Offset int
	Reason string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve: %s (offset %d): %s", e.Reason, e.Offset, ErrResolution)
}

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }
