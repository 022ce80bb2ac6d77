// Package cursor implements logical cursor positions in a post.
//
// A Position is an immutable (section, offset) pair on a leaf section. Moving
// a Position never mutates it: Move, MoveN and MoveWord return new values.
// Positions hold a reference to their section, so they go stale when the
// post is restructured and must be resolved again by the caller.
//
// Offsets in markerable sections are UTF-16 code units. A single step always
// covers a whole grapheme cluster, so a cursor never lands inside a surrogate
// pair or a combining sequence. Atoms and cards are single units.
//
// Basic usage:
//
//	p := post.WithText("abc def")
//	pos, _ := cursor.PostTail(p)
//	pos = pos.MoveWord(cursor.Backward) // "abc |def"
//	pos = pos.Move(cursor.Backward)     // "abc| def"
package cursor
