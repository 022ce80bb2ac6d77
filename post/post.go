package post

import "iter"

// Post is the root of a document: an ordered list of top-level sections.
type Post struct {
	Sections []*Section
}

// New assembles a post and links every section and marker to its parent.
func New(sections ...*Section) *Post {
	p := &Post{Sections: sections}
	for i, s := range sections {
		p.link(s, nil, i)
	}
	return p
}

func (p *Post) link(s *Section, parent *Section, index int) {
	s.post = p
	s.parent = parent
	s.index = index
	for i, m := range s.Markers {
		m.section = s
		m.index = i
	}
	for i, item := range s.Items {
		p.link(item, s, i)
	}
}

// FirstLeaf returns the first addressable section, or nil for a post
// without leaves.
func (p *Post) FirstLeaf() *Section {
	for _, s := range p.Sections {
		if leaf := s.FirstLeaf(); leaf != nil {
			return leaf
		}
	}
	return nil
}

func (p *Post) LastLeaf() *Section {
	for i := len(p.Sections) - 1; i >= 0; i-- {
		if leaf := p.Sections[i].LastLeaf(); leaf != nil {
			return leaf
		}
	}
	return nil
}

// Leaves yields the leaf sections in document order. The sequence is lazy
// and can be ranged over any number of times.
func (p *Post) Leaves() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for s := p.FirstLeaf(); s != nil; s = s.NextLeaf() {
			if !yield(s) {
				return
			}
		}
	}
}

// LeavesBackward yields the leaf sections in reverse document order.
func (p *Post) LeavesBackward() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for s := p.LastLeaf(); s != nil; s = s.PrevLeaf() {
			if !yield(s) {
				return
			}
		}
	}
}

// LeafCount returns the number of leaf sections.
func (p *Post) LeafCount() int {
	n := 0
	for range p.Leaves() {
		n++
	}
	return n
}

// LeafAt returns the i-th leaf in document order.
func (p *Post) LeafAt(i int) (*Section, bool) {
	if i < 0 {
		return nil, false
	}
	n := 0
	for s := range p.Leaves() {
		if n == i {
			return s, true
		}
		n++
	}
	return nil, false
}

// LeafIndex returns the document-order index of leaf, or -1.
func (p *Post) LeafIndex(leaf *Section) int {
	n := 0
	for s := range p.Leaves() {
		if s == leaf {
			return n
		}
		n++
	}
	return -1
}

// CompareSections orders two sections of the same post by document order.
// A container sorts before the sections nested inside it.
func CompareSections(a, b *Section) int {
	if a == b {
		return 0
	}
	pa, pb := a.Path(), b.Path()
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] < pb[i] {
			return -1
		}
		if pa[i] > pb[i] {
			return 1
		}
	}
	switch {
	case len(pa) < len(pb):
		return -1
	case len(pa) > len(pb):
		return 1
	default:
		return 0
	}
}
