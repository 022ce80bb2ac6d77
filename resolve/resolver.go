package resolve

import (
	"log/slog"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/post"
)

// Resolver turns surface locations into positions. It holds no state
// besides the injected lookup and is safe to reuse across renders as long
// as the lookup is.
type Resolver struct {
	lookup Lookup
	log    *slog.Logger
}

type Option func(*Resolver)

// WithLogger sets the logger used for fallback diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

func New(lookup Lookup, opts ...Option) *Resolver {
	r := &Resolver{lookup: lookup, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromNode resolves (node, offset) with a one-off Resolver.
func FromNode(lookup Lookup, node Node, offset int) (cursor.Position, error) {
	return New(lookup).FromNode(node, offset)
}

// FromNode returns the position equivalent to offset in node.
//
// Rules, in priority order:
//   - a marker's node: the marker's section offset plus offset;
//   - the root: post head at offset 0, post tail otherwise;
//   - a card edge: the card's head (left) or tail (right);
//   - a section element: offset picks a child;
//   - anything else: the nearest mapped ancestor decides.
func (r *Resolver) FromNode(node Node, offset int) (cursor.Position, error) {
	if node == nil {
		return cursor.Position{}, &ResolutionError{Offset: offset, Reason: "nil node"}
	}
	if offset < 0 {
		offset = 0
	}

	if m, ok := r.lookup.MarkerFor(node); ok {
		return r.fromMarker(m, offset)
	}
	if node == r.lookup.Root() {
		return r.fromRoot(offset)
	}
	if s, edge, ok := r.lookup.CardEdge(node); ok {
		return r.fromCardEdge(s, edge, offset)
	}
	if s, ok := r.lookup.SectionFor(node); ok {
		return r.fromSectionElement(s, node, offset)
	}

	child := node
	depth := 0
	for cur := node.Parent(); cur != nil; child, cur = cur, cur.Parent() {
		depth++
		if m, ok := r.lookup.MarkerFor(cur); ok {
			r.log.Debug("resolved inside marker element",
				slog.Int("depth", depth),
				slog.Int("offset", offset))
			return r.fromMarker(m, offset)
		}
		if cur == r.lookup.Root() {
			break
		}
		s, ok := r.lookup.SectionFor(cur)
		if !ok {
			continue
		}
		r.log.Debug("resolved via ancestor section",
			slog.String("section", s.String()),
			slog.Int("depth", depth),
			slog.Int("offset", offset))
		return r.fromSectionDescendant(s, cur, child, offset)
	}
	return cursor.Position{}, &ResolutionError{Offset: offset, Reason: "node has no mapped section"}
}

func (r *Resolver) fromRoot(offset int) (cursor.Position, error) {
	p := r.lookup.Post()
	var (
		pos cursor.Position
		ok  bool
	)
	if p != nil {
		if offset == 0 {
			pos, ok = cursor.PostHead(p)
		} else {
			pos, ok = cursor.PostTail(p)
		}
	}
	if !ok {
		return cursor.Position{}, &ResolutionError{Offset: offset, Reason: "post has no leaf sections"}
	}
	return pos, nil
}

func (r *Resolver) fromMarker(m *post.Marker, offset int) (cursor.Position, error) {
	s := m.Section()
	if s == nil {
		return cursor.Position{}, &ResolutionError{Offset: offset, Reason: "marker is not attached to a section"}
	}
	start := m.Offset()
	if m.IsAtom() {
		if offset > 0 {
			start++
		}
		return cursor.New(s, start)
	}
	return cursor.New(s, start+min(offset, m.Length()))
}

func (r *Resolver) fromCardEdge(s *post.Section, edge Edge, offset int) (cursor.Position, error) {
	if edge == EdgeRight {
		return r.leafPosition(cursor.Tail, s, offset)
	}
	return r.leafPosition(cursor.Head, s, offset)
}

// fromSectionElement handles offsets reported on a section's own element,
// where offset counts child nodes.
func (r *Resolver) fromSectionElement(s *post.Section, node Node, offset int) (cursor.Position, error) {
	children := node.ChildNodes()
	switch {
	case s.IsCard():
		// Children are [left edge, content, right edge].
		if offset < 2 {
			return r.leafPosition(cursor.Head, s, offset)
		}
		return r.leafPosition(cursor.Tail, s, offset)

	case s.IsContainer():
		if offset >= len(children) {
			return r.leafPosition(cursor.Tail, s, offset)
		}
		return r.fromContainerChild(s, children[offset], offset)

	default:
		if offset >= len(children) {
			return r.leafPosition(cursor.Tail, s, offset)
		}
		return cursor.New(s, r.contentLength(children[:offset]))
	}
}

// fromSectionDescendant handles an unmapped node below a section element.
// child is the ancestor of that node directly under the section element.
func (r *Resolver) fromSectionDescendant(s *post.Section, sectionNode, child Node, offset int) (cursor.Position, error) {
	switch {
	case s.IsCard():
		return r.leafPosition(cursor.Head, s, offset)
	case s.IsContainer():
		return r.fromContainerChild(s, child, offset)
	}

	children := sectionNode.ChildNodes()
	pre := 0
	for _, c := range children {
		if c == child {
			break
		}
		pre += r.contentLength([]Node{c})
	}
	return cursor.New(s, min(pre+offset, s.Length()))
}

func (r *Resolver) fromContainerChild(container *post.Section, child Node, offset int) (cursor.Position, error) {
	if item, ok := r.lookup.SectionFor(child); ok {
		return r.leafPosition(cursor.Head, item, offset)
	}
	// Unmapped filler between items: use the next item that has a leaf.
	seen := false
	for _, c := range child.Parent().ChildNodes() {
		if c == child {
			seen = true
			continue
		}
		if !seen {
			continue
		}
		if item, ok := r.lookup.SectionFor(c); ok && item.FirstLeaf() != nil {
			return r.leafPosition(cursor.Head, item, offset)
		}
	}
	return r.leafPosition(cursor.Tail, container, offset)
}

func (r *Resolver) contentLength(nodes []Node) int {
	n := 0
	for _, c := range nodes {
		if m, ok := r.lookup.MarkerFor(c); ok {
			n += m.Length()
		}
	}
	return n
}

func (r *Resolver) leafPosition(at func(*post.Section) (cursor.Position, error), s *post.Section, offset int) (cursor.Position, error) {
	pos, err := at(s)
	if err != nil {
		return cursor.Position{}, &ResolutionError{Offset: offset, Reason: "section " + s.String() + " has no leaf"}
	}
	return pos, nil
}
