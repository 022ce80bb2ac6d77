package post

import "github.com/iw2rmb/postcursor/internal/grapheme"

type MarkerKind uint8

const (
	MarkerText MarkerKind = iota
	MarkerAtom
)

// Marker is one inline item of a markerable section: a text run or an atom.
type Marker struct {
	Kind MarkerKind

	// Value is the run text, or the display text of an atom.
	Value string
	// Name identifies the atom type.
	Name    string
	Markups []string
	Payload map[string]any

	section *Section
	index   int
}

func (m *Marker) IsAtom() bool { return m != nil && m.Kind == MarkerAtom }

// Length counts UTF-16 code units for text and exactly 1 for an atom.
func (m *Marker) Length() int {
	if m == nil {
		return 0
	}
	if m.IsAtom() {
		return 1
	}
	return grapheme.UTF16Len(m.Value)
}

func (m *Marker) Section() *Section { return m.section }

func (m *Marker) Index() int { return m.index }

// Offset returns the section offset at which m starts.
func (m *Marker) Offset() int {
	if m.section == nil {
		return 0
	}
	return m.section.OffsetOfMarker(m)
}

func (m *Marker) Next() *Marker {
	if m.section == nil || m.index+1 >= len(m.section.Markers) {
		return nil
	}
	return m.section.Markers[m.index+1]
}

func (m *Marker) Prev() *Marker {
	if m.section == nil || m.index == 0 {
		return nil
	}
	return m.section.Markers[m.index-1]
}
