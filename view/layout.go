package view

import (
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/iw2rmb/postcursor/internal/grapheme"
	"github.com/iw2rmb/postcursor/post"
	"github.com/iw2rmb/postcursor/surface"
)

type cellKind uint8

const (
	cellText cellKind = iota
	cellAtom
	cellEdge
	cellLabel
)

// cell is one grapheme cluster on screen.
type cell struct {
	kind    cellKind
	text    string
	width   int
	markups []string

	// node hosts the cluster on the surface; nodeOff is the cluster's start
	// inside a text node.
	node    *surface.Node
	nodeOff int
	nodeEnd int

	// from and to are the section offsets covered by the cluster's unit.
	from, to int
	// caret is the section offset drawn on this cell, or -1.
	caret int
}

// line is the screen row of one leaf section.
type line struct {
	section *post.Section
	el      *surface.Node
	prefix  string
	cells   []cell
}

func (l line) width() int {
	w := runewidth.StringWidth(l.prefix)
	for _, c := range l.cells {
		w += c.width
	}
	return w
}

func (l line) hasCaret(off int) bool {
	for _, c := range l.cells {
		if c.caret == off {
			return true
		}
	}
	return false
}

// buildLines lays out every leaf of the tree's post, one row per leaf.
func buildLines(tree *surface.Tree) []line {
	p := tree.Post()
	if p == nil {
		return nil
	}
	out := make([]line, 0, p.LeafCount())
	for s := range p.Leaves() {
		el, ok := tree.NodeFor(s)
		if !ok {
			continue
		}
		ln := line{section: s, el: el, prefix: prefixFor(s)}
		switch {
		case s.IsCard():
			ln.cells = cardCells(el)
		default:
			ln.cells = markerCells(tree, el)
		}
		out = append(out, ln)
	}
	return out
}

func prefixFor(s *post.Section) string {
	if s.Kind != post.KindListItem {
		return ""
	}
	if parent := s.Parent(); parent != nil && parent.Tag == "ol" {
		return strconv.Itoa(s.Index()+1) + ". "
	}
	return "• "
}

func markerCells(tree *surface.Tree, el *surface.Node) []cell {
	var out []cell
	for _, child := range el.Children() {
		m, ok := tree.MarkerFor(child)
		if !ok {
			continue
		}
		base := m.Offset()
		if m.IsAtom() {
			for i, c := range clusterCells(child.TextContent()) {
				c.kind = cellAtom
				c.node = child
				c.from, c.to = base, base+1
				c.caret = -1
				if i == 0 {
					c.caret = base
				}
				out = append(out, c)
			}
			continue
		}
		for _, c := range clusterCells(child.Text) {
			c.kind = cellText
			c.node = child
			c.markups = child.Markups
			c.from, c.to = base+c.nodeOff, base+c.nodeEnd
			c.caret = c.from
			out = append(out, c)
		}
	}
	return out
}

func cardCells(el *surface.Node) []cell {
	children := el.Children()
	left, content, right := children[0], children[1], children[2]

	out := []cell{{kind: cellEdge, text: "[", width: 1, node: left, from: 0, to: 1, caret: 0}}
	for _, c := range clusterCells(content.TextContent()) {
		c.kind = cellLabel
		c.node = content
		c.from, c.to = 0, 1
		c.caret = -1
		out = append(out, c)
	}
	return append(out, cell{kind: cellEdge, text: "]", width: 1, node: right, from: 0, to: 1, caret: 1})
}

// clusterCells splits text into cells carrying UTF-16 node offsets.
func clusterCells(text string) []cell {
	var out []cell
	off := 0
	for _, g := range grapheme.Split(text) {
		end := off + grapheme.UTF16Len(g)
		display, w := g, cellWidth(g)
		if w == 0 {
			display, w = " ", 1
		}
		out = append(out, cell{text: display, width: w, nodeOff: off, nodeEnd: end})
		off = end
	}
	return out
}

func cellWidth(text string) int {
	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(text); fallback > w {
			w = fallback
		}
	}
	return w
}
