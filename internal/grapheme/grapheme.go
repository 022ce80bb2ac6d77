// Package grapheme measures text in grapheme clusters and UTF-16 code units.
//
// Cursor offsets inside a text run are UTF-16 code units, the unit rendering
// surfaces report. A single cursor step covers one grapheme cluster, so a
// surrogate pair (or a longer emoji sequence) is never split.
package grapheme

import (
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// UTF16Len returns the length of text in UTF-16 code units.
func UTF16Len(text string) int {
	n := 0
	for _, r := range text {
		n += runeLen16(r)
	}
	return n
}

func runeLen16(r rune) int {
	if l := utf16.RuneLen(r); l > 0 {
		return l
	}
	// Invalid runes are encoded as U+FFFD.
	return 1
}

// Boundaries returns the UTF-16 offsets of every cluster boundary in text,
// starting with 0 and ending with UTF16Len(text).
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += UTF16Len(g.Str())
		out = append(out, off)
	}
	return out
}

// Next returns the first cluster boundary strictly after off.
// ok is false when off is already at (or past) the end of text.
func Next(text string, off int) (int, bool) {
	for _, b := range Boundaries(text) {
		if b > off {
			return b, true
		}
	}
	return off, false
}

// Prev returns the last cluster boundary strictly before off.
// ok is false when off is at (or before) the start of text.
func Prev(text string, off int) (int, bool) {
	bounds := Boundaries(text)
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] < off {
			return bounds[i], true
		}
	}
	return off, false
}

// ClusterAt returns the cluster that starts at or contains the UTF-16 offset
// off, and the boundaries around it. ok is false past the end of text.
func ClusterAt(text string, off int) (cluster string, start, end int, ok bool) {
	if off < 0 {
		return "", 0, 0, false
	}
	g := uniseg.NewGraphemes(text)
	cur := 0
	for g.Next() {
		s := g.Str()
		next := cur + UTF16Len(s)
		if off < next {
			return s, cur, next, true
		}
		cur = next
	}
	return "", cur, cur, false
}

// ByteOffset converts a UTF-16 offset in text into a UTF-8 byte offset.
// Offsets inside a surrogate pair round down to the start of the rune.
// ok is false when off is outside [0, UTF16Len(text)].
func ByteOffset(text string, off int) (int, bool) {
	if off < 0 {
		return 0, false
	}
	cur := 0
	for i, r := range text {
		if cur == off {
			return i, true
		}
		next := cur + runeLen16(r)
		if off < next {
			return i, true
		}
		cur = next
	}
	if cur == off {
		return len(text), true
	}
	return 0, false
}

// UTF16Offset converts a UTF-8 byte offset in text into a UTF-16 offset.
// Byte offsets inside a rune round down. ok is false outside [0, len(text)].
func UTF16Offset(text string, byteOff int) (int, bool) {
	if byteOff < 0 || byteOff > len(text) {
		return 0, false
	}
	cur := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if byteOff < i+size {
			return cur, true
		}
		cur += runeLen16(r)
		i += size
	}
	return cur, true
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsSeparator reports whether cluster ends a word run.
//
// Separators are whitespace and the fixed set '-', '+', '=', '|'.
// Underscore, colon and all other characters belong to words.
func IsSeparator(cluster string) bool {
	if IsSpace(cluster) {
		return true
	}
	switch cluster {
	case "-", "+", "=", "|":
		return true
	}
	return false
}

// IsWordChar reports whether cluster belongs to a word run.
func IsWordChar(cluster string) bool {
	return cluster != "" && !IsSeparator(cluster)
}
