package cursor

import (
	"fmt"

	"github.com/iw2rmb/postcursor/post"
)

// Position addresses one cursor location: a leaf section and an offset in
// [0, section.Length()]. The zero value is the blank position, which belongs
// to no section and never moves.
type Position struct {
	section *post.Section
	offset  int
}

// New returns the position at offset in section.
func New(section *post.Section, offset int) (Position, error) {
	if section == nil || !section.IsLeaf() {
		return Position{}, &InvalidSectionError{Section: section}
	}
	if n := section.Length(); offset < 0 || offset > n {
		return Position{}, &OffsetOutOfRangeError{Section: section, Offset: offset, Length: n}
	}
	return Position{section: section, offset: offset}, nil
}

// MustNew is like New but panics on error.
func MustNew(section *post.Section, offset int) Position {
	p, err := New(section, offset)
	if err != nil {
		panic(err)
	}
	return p
}

// Head returns the position before the first unit of s. For a container it
// is the head of its first leaf.
func Head(s *post.Section) (Position, error) {
	leaf := s.FirstLeaf()
	if leaf == nil {
		return Position{}, &InvalidSectionError{Section: s}
	}
	return Position{section: leaf}, nil
}

// Tail returns the position after the last unit of s. For a container it is
// the tail of its last leaf.
func Tail(s *post.Section) (Position, error) {
	leaf := s.LastLeaf()
	if leaf == nil {
		return Position{}, &InvalidSectionError{Section: s}
	}
	return Position{section: leaf, offset: leaf.Length()}, nil
}

// PostHead returns the head of the first leaf of p.
func PostHead(p *post.Post) (Position, bool) {
	leaf := p.FirstLeaf()
	if leaf == nil {
		return Position{}, false
	}
	return Position{section: leaf}, true
}

// PostTail returns the tail of the last leaf of p.
func PostTail(p *post.Post) (Position, bool) {
	leaf := p.LastLeaf()
	if leaf == nil {
		return Position{}, false
	}
	return Position{section: leaf, offset: leaf.Length()}, true
}

func headOf(s *post.Section) Position { return Position{section: s} }

func tailOf(s *post.Section) Position { return Position{section: s, offset: s.Length()} }

func (p Position) Section() *post.Section { return p.section }

func (p Position) Offset() int { return p.offset }

func (p Position) IsBlank() bool { return p.section == nil }

func (p Position) IsHead() bool { return !p.IsBlank() && p.offset == 0 }

func (p Position) IsTail() bool { return !p.IsBlank() && p.offset == p.section.Length() }

// IsHeadOfPost reports whether no leaf precedes p and p is at its head.
func (p Position) IsHeadOfPost() bool {
	return p.IsHead() && p.section.PrevLeaf() == nil
}

// IsTailOfPost reports whether no leaf follows p and p is at its tail.
func (p Position) IsTailOfPost() bool {
	return p.IsTail() && p.section.NextLeaf() == nil
}

// LeafIndex is the document-order index of the position's section, or -1.
func (p Position) LeafIndex() int {
	if p.IsBlank() || p.section.Post() == nil {
		return -1
	}
	return p.section.Post().LeafIndex(p.section)
}

// Marker returns the marker holding the unit on the bias side of p.
func (p Position) Marker(bias post.Bias) (*post.Marker, int, bool) {
	return p.section.MarkerAt(p.offset, bias)
}

// Equal reports whether both positions address the same section and offset.
func (p Position) Equal(o Position) bool {
	return p.section == o.section && p.offset == o.offset
}

// Compare orders positions by document order of their sections, then by
// offset. Blank positions sort first.
func (p Position) Compare(o Position) int {
	switch {
	case p.IsBlank() && o.IsBlank():
		return 0
	case p.IsBlank():
		return -1
	case o.IsBlank():
		return 1
	}
	if c := post.CompareSections(p.section, o.section); c != 0 {
		return c
	}
	switch {
	case p.offset < o.offset:
		return -1
	case p.offset > o.offset:
		return 1
	default:
		return 0
	}
}

func (p Position) Before(o Position) bool { return p.Compare(o) < 0 }

func (p Position) After(o Position) bool { return p.Compare(o) > 0 }

func (p Position) String() string {
	if p.IsBlank() {
		return "Position(blank)"
	}
	return fmt.Sprintf("Position(%v, %d)", p.section, p.offset)
}
