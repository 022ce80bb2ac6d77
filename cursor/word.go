package cursor

import "github.com/iw2rmb/postcursor/internal/grapheme"

// MoveWord returns the position at the next word boundary from p in dir.
//
// Whitespace and '-', '+', '=', '|' separate words; every other character,
// including '_' and ':', is part of a word. An atom is one indivisible word.
// The separator run next to p is skipped first, then the word run after it.
//
// At a section edge the move continues in the adjacent leaf. A card is
// crossed as a single unit and always stops the move at its far edge.
func (p Position) MoveWord(dir Direction) Position {
	if p.IsBlank() {
		return p
	}
	if (dir < 0 && p.IsHeadOfPost()) || (dir > 0 && p.IsTailOfPost()) {
		return p
	}
	if p.section.IsCard() {
		return p.Move(dir)
	}
	if p.atEdge(dir) {
		return p.Move(dir).MoveWord(dir)
	}

	if u, ok := p.unitAt(dir); ok && u.atom {
		return p.step(dir)
	}

	pos := p
	for {
		u, ok := pos.unitAt(dir)
		if !ok || u.atom || !grapheme.IsSeparator(u.cluster) {
			break
		}
		pos = pos.step(dir)
	}

	if pos.atEdge(dir) {
		if next := pos.Move(dir); next.section != pos.section && next.section.IsMarkerable() {
			return next.MoveWord(dir)
		}
		return pos
	}

	if u, ok := pos.unitAt(dir); ok && u.atom {
		// Backward stops in front of an atom that follows a separator run.
		if dir > 0 {
			return pos.step(dir)
		}
		return pos
	}

	for {
		u, ok := pos.unitAt(dir)
		if !ok || u.atom || grapheme.IsSeparator(u.cluster) {
			break
		}
		pos = pos.step(dir)
	}
	return pos
}
