package post

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/postcursor/internal/grapheme"
)

// Kind tags the closed set of section variants.
type Kind uint8

const (
	KindMarkup Kind = iota
	KindListItem
	KindList
	KindCard
)

func (k Kind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindListItem:
		return "list-item"
	case KindList:
		return "list"
	case KindCard:
		return "card"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Bias selects which side of an offset a lookup reads from.
type Bias uint8

const (
	BiasLeft Bias = iota
	BiasRight
)

// ObjectReplacement stands in for an atom in Section.Text.
const ObjectReplacement = "\uFFFC"

// Section is one node of the post tree.
type Section struct {
	Kind Kind
	// Tag is the markup tag ("p", "h2"), list tag ("ul", "ol"), "li" for
	// list items, or the card name.
	Tag string

	Markers []*Marker      // markerable sections only
	Items   []*Section     // lists only
	Payload map[string]any // cards only

	post   *Post
	parent *Section
	index  int
}

func (s *Section) IsMarkerable() bool {
	return s != nil && (s.Kind == KindMarkup || s.Kind == KindListItem)
}

// IsCard reports whether s is a non-markerable leaf.
func (s *Section) IsCard() bool { return s != nil && s.Kind == KindCard }

func (s *Section) IsContainer() bool { return s != nil && s.Kind == KindList }

// IsLeaf reports whether a cursor position may be placed in s.
func (s *Section) IsLeaf() bool { return s.IsMarkerable() || s.IsCard() }

// Length is the number of addressable units in s: the sum of marker lengths
// for markerable sections, 1 for cards and 0 for containers.
func (s *Section) Length() int {
	switch {
	case s.IsMarkerable():
		n := 0
		for _, m := range s.Markers {
			n += m.Length()
		}
		return n
	case s.IsCard():
		return 1
	default:
		return 0
	}
}

func (s *Section) Post() *Post { return s.post }

// Parent returns the enclosing container, or nil for a top-level section.
func (s *Section) Parent() *Section { return s.parent }

// Index is the position of s among its siblings.
func (s *Section) Index() int { return s.index }

func (s *Section) siblings() []*Section {
	if s.parent != nil {
		return s.parent.Items
	}
	if s.post != nil {
		return s.post.Sections
	}
	return nil
}

// FirstLeaf returns s itself for a leaf, or the first leaf nested inside a
// container. It returns nil for a container without leaves.
func (s *Section) FirstLeaf() *Section {
	if s == nil {
		return nil
	}
	if s.IsLeaf() {
		return s
	}
	for _, item := range s.Items {
		if leaf := item.FirstLeaf(); leaf != nil {
			return leaf
		}
	}
	return nil
}

// LastLeaf mirrors FirstLeaf from the right.
func (s *Section) LastLeaf() *Section {
	if s == nil {
		return nil
	}
	if s.IsLeaf() {
		return s
	}
	for i := len(s.Items) - 1; i >= 0; i-- {
		if leaf := s.Items[i].LastLeaf(); leaf != nil {
			return leaf
		}
	}
	return nil
}

// NextLeaf returns the leaf following s in document order, descending into
// containers and skipping them. It returns nil at the end of the post.
func (s *Section) NextLeaf() *Section {
	for cur := s; cur != nil; cur = cur.parent {
		sibs := cur.siblings()
		for i := cur.index + 1; i < len(sibs); i++ {
			if leaf := sibs[i].FirstLeaf(); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}

// PrevLeaf returns the leaf preceding s in document order, or nil at the
// start of the post.
func (s *Section) PrevLeaf() *Section {
	for cur := s; cur != nil; cur = cur.parent {
		sibs := cur.siblings()
		for i := cur.index - 1; i >= 0; i-- {
			if leaf := sibs[i].LastLeaf(); leaf != nil {
				return leaf
			}
		}
	}
	return nil
}

// Path returns the sibling indexes from the top of the post down to s.
func (s *Section) Path() []int {
	var rev []int
	for cur := s; cur != nil; cur = cur.parent {
		rev = append(rev, cur.index)
	}
	out := make([]int, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}
	return out
}

// Text returns the section content with each atom replaced by U+FFFC, so
// UTF-16 offsets into Text equal section offsets.
func (s *Section) Text() string {
	if !s.IsMarkerable() {
		return ""
	}
	var sb strings.Builder
	for _, m := range s.Markers {
		if m.IsAtom() {
			sb.WriteString(ObjectReplacement)
			continue
		}
		sb.WriteString(m.Value)
	}
	return sb.String()
}

// MarkerAt returns the marker holding the unit on the bias side of offset,
// together with offset expressed relative to the start of that marker.
// Empty markers never match. ok is false when there is no unit on that side.
func (s *Section) MarkerAt(offset int, bias Bias) (m *Marker, offsetInMarker int, ok bool) {
	if !s.IsMarkerable() {
		return nil, 0, false
	}
	start := 0
	for _, cur := range s.Markers {
		end := start + cur.Length()
		switch bias {
		case BiasRight:
			if offset >= start && offset < end {
				return cur, offset - start, true
			}
		case BiasLeft:
			if offset > start && offset <= end {
				return cur, offset - start, true
			}
		}
		start = end
	}
	return nil, 0, false
}

// OffsetOfMarker returns the section offset at which m starts, or -1 when m
// does not belong to s.
func (s *Section) OffsetOfMarker(m *Marker) int {
	off := 0
	for _, cur := range s.Markers {
		if cur == m {
			return off
		}
		off += cur.Length()
	}
	return -1
}

// ByteOffset converts a section offset into a byte offset of Text.
func (s *Section) ByteOffset(offset int) (int, bool) {
	return grapheme.ByteOffset(s.Text(), offset)
}

// OffsetFromByte converts a byte offset of Text into a section offset.
func (s *Section) OffsetFromByte(byteOff int) (int, bool) {
	return grapheme.UTF16Offset(s.Text(), byteOff)
}

func (s *Section) String() string {
	if s == nil {
		return "<nil section>"
	}
	return fmt.Sprintf("%s<%s>%v", s.Kind, s.Tag, s.Path())
}
