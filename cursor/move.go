package cursor

import (
	"github.com/iw2rmb/postcursor/internal/grapheme"
	"github.com/iw2rmb/postcursor/post"
)

// Move returns the position one unit away from p in dir.
//
// Inside a markerable section a unit is one grapheme cluster or one atom.
// A card's head and tail are one unit apart. Leaving a section lands on the
// head (forward) or tail (backward) of the adjacent leaf. At the start or end
// of the post the move is a no-op.
func (p Position) Move(dir Direction) Position {
	return p.MoveN(dir, 1)
}

// MoveN moves p by units single steps in dir. Negative units move in the
// opposite direction and zero units return p unchanged.
func (p Position) MoveN(dir Direction, units int) Position {
	if units < 0 {
		dir, units = dir.Reverse(), -units
	}
	cur := p
	for i := 0; i < units; i++ {
		next := cur.step(dir)
		if next == cur {
			break
		}
		cur = next
	}
	return cur
}

func (p Position) step(dir Direction) Position {
	if p.IsBlank() {
		return p
	}
	if dir < 0 {
		if p.IsHead() {
			if prev := p.section.PrevLeaf(); prev != nil {
				return tailOf(prev)
			}
			return p
		}
		if p.section.IsCard() {
			return headOf(p.section)
		}
		u, ok := p.unitAt(Backward)
		if !ok {
			return p
		}
		return Position{section: p.section, offset: u.start}
	}

	if p.IsTail() {
		if next := p.section.NextLeaf(); next != nil {
			return headOf(next)
		}
		return p
	}
	if p.section.IsCard() {
		return tailOf(p.section)
	}
	u, ok := p.unitAt(Forward)
	if !ok {
		return p
	}
	return Position{section: p.section, offset: u.end}
}

// unit is the addressable content next to a position inside a markerable
// section: an atom or one grapheme cluster. start and end are section
// offsets.
type unit struct {
	atom    bool
	cluster string
	start   int
	end     int
}

// unitAt returns the unit adjacent to p in dir, without leaving p's section.
// Marker boundaries always split clusters.
func (p Position) unitAt(dir Direction) (unit, bool) {
	if !p.section.IsMarkerable() {
		return unit{}, false
	}

	bias := post.BiasRight
	if dir < 0 {
		bias = post.BiasLeft
	}
	m, off, ok := p.section.MarkerAt(p.offset, bias)
	if !ok {
		return unit{}, false
	}
	base := p.offset - off
	if m.IsAtom() {
		return unit{atom: true, start: base, end: base + 1}, true
	}

	at := off
	if dir < 0 {
		if at, ok = grapheme.Prev(m.Value, off); !ok {
			return unit{}, false
		}
	}
	c, start, end, ok := grapheme.ClusterAt(m.Value, at)
	if !ok {
		return unit{}, false
	}
	return unit{cluster: c, start: base + start, end: base + end}, true
}

func (p Position) atEdge(dir Direction) bool {
	if dir < 0 {
		return p.IsHead()
	}
	return p.IsTail()
}
