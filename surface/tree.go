package surface

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/post"
	"github.com/iw2rmb/postcursor/resolve"
)

// EdgeText is the zero-width text of a card edge node.
const EdgeText = "\u200c"

type cardEdge struct {
	section *post.Section
	edge    resolve.Edge
}

// Tree is a rendered post. It is rebuilt, never patched, after the post
// changes.
type Tree struct {
	post *post.Post
	root *Node

	sections     map[*Node]*post.Section
	markers      map[*Node]*post.Marker
	edges        map[*Node]cardEdge
	sectionNodes map[*post.Section]*Node
	markerNodes  map[*post.Marker]*Node
}

var _ resolve.Lookup = (*Tree)(nil)

// Render builds the node tree for p.
func Render(p *post.Post) *Tree {
	t := &Tree{
		post:         p,
		root:         newElement("div", ""),
		sections:     make(map[*Node]*post.Section),
		markers:      make(map[*Node]*post.Marker),
		edges:        make(map[*Node]cardEdge),
		sectionNodes: make(map[*post.Section]*Node),
		markerNodes:  make(map[*post.Marker]*Node),
	}
	if p == nil {
		return t
	}
	for _, s := range p.Sections {
		t.root.append(t.renderSection(s))
	}
	return t
}

func (t *Tree) renderSection(s *post.Section) *Node {
	var el *Node
	switch s.Kind {
	case post.KindList:
		el = newElement(s.Tag, "")
		for _, item := range s.Items {
			el.append(t.renderSection(item))
		}
	case post.KindCard:
		el = t.renderCard(s)
	default:
		el = newElement(s.Tag, "")
		for _, m := range s.Markers {
			el.append(t.renderMarker(m))
		}
		if s.Length() == 0 {
			el.append(newElement("br", ""))
		}
	}
	t.sections[el] = s
	t.sectionNodes[s] = el
	return el
}

func (t *Tree) renderMarker(m *post.Marker) *Node {
	var n *Node
	if m.IsAtom() {
		n = newElement("span", "atom").append(newText(m.Value))
	} else {
		n = newText(m.Value)
		n.Markups = m.Markups
	}
	t.markers[n] = m
	t.markerNodes[m] = n
	return n
}

func (t *Tree) renderCard(s *post.Section) *Node {
	left, right := newText(EdgeText), newText(EdgeText)
	left.Class, right.Class = "edge", "edge"
	content := newElement("div", "card-content").append(newText(cardLabel(s)))
	t.edges[left] = cardEdge{section: s, edge: resolve.EdgeLeft}
	t.edges[right] = cardEdge{section: s, edge: resolve.EdgeRight}
	return newElement("div", "card").append(left, content, right)
}

// cardLabel is the card name followed by its payload keys.
func cardLabel(s *post.Section) string {
	if len(s.Payload) == 0 {
		return s.Tag
	}
	keys := make([]string, 0, len(s.Payload))
	for k := range s.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return s.Tag + " " + strings.Join(keys, ",")
}

func (t *Tree) node(n resolve.Node) (*Node, bool) {
	sn, ok := n.(*Node)
	return sn, ok && sn != nil
}

// Root implements resolve.Lookup.
func (t *Tree) Root() resolve.Node { return t.root }

// RootNode returns the root element.
func (t *Tree) RootNode() *Node { return t.root }

// Post implements resolve.Lookup.
func (t *Tree) Post() *post.Post { return t.post }

// SectionFor implements resolve.Lookup.
func (t *Tree) SectionFor(n resolve.Node) (*post.Section, bool) {
	sn, ok := t.node(n)
	if !ok {
		return nil, false
	}
	s, ok := t.sections[sn]
	return s, ok
}

// MarkerFor implements resolve.Lookup.
func (t *Tree) MarkerFor(n resolve.Node) (*post.Marker, bool) {
	sn, ok := t.node(n)
	if !ok {
		return nil, false
	}
	m, ok := t.markers[sn]
	return m, ok
}

// CardEdge implements resolve.Lookup.
func (t *Tree) CardEdge(n resolve.Node) (*post.Section, resolve.Edge, bool) {
	sn, ok := t.node(n)
	if !ok {
		return nil, resolve.EdgeLeft, false
	}
	e, ok := t.edges[sn]
	return e.section, e.edge, ok
}

// NodeFor returns the element rendered for s.
func (t *Tree) NodeFor(s *post.Section) (*Node, bool) {
	n, ok := t.sectionNodes[s]
	return n, ok
}

// NodeForMarker returns the text node or atom wrapper rendered for m.
func (t *Tree) NodeForMarker(m *post.Marker) (*Node, bool) {
	n, ok := t.markerNodes[m]
	return n, ok
}

// NodeAtPath walks child indexes from the root.
func (t *Tree) NodeAtPath(path ...int) (*Node, bool) {
	n := t.root
	for _, i := range path {
		if i < 0 || i >= len(n.children) {
			return nil, false
		}
		n = n.children[i]
	}
	return n, true
}

// Project returns the surface location of pos. Text positions prefer the
// end of the preceding text node.
func (t *Tree) Project(pos cursor.Position) (*Node, int, bool) {
	s := pos.Section()
	if s == nil {
		return nil, 0, false
	}
	el, ok := t.sectionNodes[s]
	if !ok {
		return nil, 0, false
	}
	if s.IsCard() {
		if pos.IsHead() {
			return el.children[0], 0, true
		}
		right := el.children[2]
		return right, right.Len(), true
	}

	for _, bias := range []post.Bias{post.BiasLeft, post.BiasRight} {
		m, off, ok := s.MarkerAt(pos.Offset(), bias)
		if !ok {
			continue
		}
		n := t.markerNodes[m]
		if !m.IsAtom() {
			return n, off, true
		}
		i := n.IndexInParent()
		if bias == post.BiasLeft {
			i++
		}
		return el, i, true
	}
	return el, 0, true
}

// Dump returns an indented outline of the tree.
func (t *Tree) Dump() string {
	var b strings.Builder
	t.dump(&b, t.root, 0)
	return b.String()
}

func (t *Tree) dump(b *strings.Builder, n *Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	switch {
	case n.IsText():
		fmt.Fprintf(b, "#text %q", n.Text)
		if len(n.Markups) > 0 {
			fmt.Fprintf(b, " %v", n.Markups)
		}
	default:
		b.WriteString(n.String())
	}
	if s, ok := t.sections[n]; ok {
		fmt.Fprintf(b, " -> %s", s)
	}
	if e, ok := t.edges[n]; ok {
		fmt.Fprintf(b, " -> %s edge of %s", e.edge, e.section)
	}
	b.WriteByte('\n')
	for _, c := range n.children {
		t.dump(b, c, depth+1)
	}
}
