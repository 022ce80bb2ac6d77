package cursor

import (
	"errors"
	"fmt"

	"github.com/iw2rmb/postcursor/post"
)

// Errors returned by position construction.
var (
	// ErrInvalidSection indicates a position was requested on a section that
	// cannot hold one: nil or a container.
	ErrInvalidSection = errors.New("section is not addressable")

	// ErrOffsetOutOfRange indicates an offset outside [0, section length].
	ErrOffsetOutOfRange = errors.New("offset out of range")
)

// InvalidSectionError reports a position constructed on a container or a
// nil section.
type InvalidSectionError struct {
	Section *post.Section
}

func (e *InvalidSectionError) Error() string {
	return fmt.Sprintf("cursor: %v: %s", e.Section, ErrInvalidSection)
}

func (e *InvalidSectionError) Is(target error) bool { return target == ErrInvalidSection }

// OffsetOutOfRangeError reports an offset outside [0, Length].
type OffsetOutOfRangeError struct {
	Section *post.Section
	Offset  int
	Length  int
}

func (e *OffsetOutOfRangeError) Error() string {
	return fmt.Sprintf("cursor: %v: offset %d not in [0, %d]: %s", e.Section, e.Offset, e.Length, ErrOffsetOutOfRange)
}

func (e *OffsetOutOfRangeError) Is(target error) bool { return target == ErrOffsetOutOfRange }
