package resolve

import "github.com/iw2rmb/postcursor/post"

// Node is one node of a rendering surface.
type Node interface {
	// Parent returns nil for the surface root.
	Parent() Node
	ChildNodes() []Node
}

// Edge identifies one of the two cursor-hosting nodes around a card.
type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
)

func (e Edge) String() string {
	if e == EdgeRight {
		return "right"
	}
	return "left"
}

// Lookup is the renderer's mapping between surface nodes and the post.
type Lookup interface {
	// Root is the element holding the whole post.
	Root() Node
	Post() *post.Post
	// SectionFor reports the section whose element is n.
	SectionFor(n Node) (*post.Section, bool)
	// MarkerFor reports the marker rendered by n: the text node of a text
	// marker, or the wrapper element of an atom.
	MarkerFor(n Node) (*post.Marker, bool)
	// CardEdge reports whether n is an edge node of a card.
	CardEdge(n Node) (*post.Section, Edge, bool)
}
