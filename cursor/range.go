package cursor

import "fmt"

// Range is a directional span between two positions. Anchor stays put while
// Focus follows the cursor.
type Range struct {
	Anchor Position
	Focus  Position
}

func NewRange(anchor, focus Position) Range {
	return Range{Anchor: anchor, Focus: focus}
}

// Caret returns the collapsed range at p.
func Caret(p Position) Range {
	return Range{Anchor: p, Focus: p}
}

func (r Range) IsCollapsed() bool { return r.Anchor.Equal(r.Focus) }

// Head returns the earlier end in document order.
func (r Range) Head() Position {
	if r.Focus.Before(r.Anchor) {
		return r.Focus
	}
	return r.Anchor
}

// Tail returns the later end in document order.
func (r Range) Tail() Position {
	if r.Focus.Before(r.Anchor) {
		return r.Anchor
	}
	return r.Focus
}

// Direction is Backward when the focus precedes the anchor.
func (r Range) Direction() Direction {
	if r.Focus.Before(r.Anchor) {
		return Backward
	}
	return Forward
}

// Extend moves the focus by units in dir.
func (r Range) Extend(dir Direction, units int) Range {
	r.Focus = r.Focus.MoveN(dir, units)
	return r
}

// ExtendWord moves the focus to the next word boundary in dir.
func (r Range) ExtendWord(dir Direction) Range {
	r.Focus = r.Focus.MoveWord(dir)
	return r
}

// Collapse returns a caret at the head (Backward) or tail (Forward).
func (r Range) Collapse(dir Direction) Range {
	if dir < 0 {
		return Caret(r.Head())
	}
	return Caret(r.Tail())
}

func (r Range) Equal(o Range) bool {
	return r.Anchor.Equal(o.Anchor) && r.Focus.Equal(o.Focus)
}

func (r Range) String() string {
	return fmt.Sprintf("Range(%v -> %v)", r.Anchor, r.Focus)
}
