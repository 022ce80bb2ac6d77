package view

import (
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/surface"
)

// hitTest maps a content x (after gutter and prefix) on ln to the surface
// location an editor surface would report for a click there.
//
// Text clicks land before the clicked cluster. Atoms and cards pick the side
// nearest to the click.
func hitTest(ln line, x int) (*surface.Node, int) {
	if x < 0 || len(ln.cells) == 0 {
		return ln.el, 0
	}

	cellX := 0
	for i := 0; i < len(ln.cells); i++ {
		c := ln.cells[i]
		switch c.kind {
		case cellAtom, cellLabel, cellEdge:
			// Treat the run of cells sharing this unit as one box.
			j, w := i, 0
			for ; j < len(ln.cells) && sameUnit(ln.cells[j], c); j++ {
				w += ln.cells[j].width
			}
			if x < cellX+w {
				return sideOf(ln, c, i, j, x-cellX < w/2+w%2)
			}
			cellX += w
			i = j - 1
		default:
			if x < cellX+c.width {
				return c.node, c.nodeOff
			}
			cellX += c.width
		}
	}

	last := ln.cells[len(ln.cells)-1]
	switch last.kind {
	case cellText:
		return last.node, last.nodeEnd
	case cellAtom:
		return last.node, 1
	default:
		return last.node, 0
	}
}

func sameUnit(a, b cell) bool {
	if a.kind == cellText || b.kind == cellText {
		return false
	}
	if a.kind == cellAtom || b.kind == cellAtom {
		return a.kind == b.kind && a.node == b.node
	}
	// Card edges and label form one box.
	return a.from == b.from && a.to == b.to
}

func sideOf(ln line, c cell, from, to int, left bool) (*surface.Node, int) {
	if c.kind == cellAtom {
		if left {
			return c.node, 0
		}
		return c.node, 1
	}
	if left {
		return ln.cells[from].node, 0
	}
	return ln.cells[to-1].node, 0
}

// screenToPos maps viewport-local coordinates to a position through the
// surface tree and the resolver.
//
// Coordinates are in terminal cells: (0,0) is the top-left of the visible
// content region. y is clamped into the document.
func (m *Model) screenToPos(x, y int) (cursor.Position, bool) {
	if len(m.lines) == 0 {
		return cursor.Position{}, false
	}
	row := clampInt(m.viewport.YOffset+y, 0, len(m.lines)-1)
	ln := m.lines[row]

	x -= m.gutterWidth()
	x -= runewidth.StringWidth(ln.prefix)
	node, off := hitTest(ln, x)
	pos, err := m.resolver.FromNode(node, off)
	if err != nil {
		m.log.Debug("click did not resolve", "row", row, "x", x, "err", err)
		return cursor.Position{}, false
	}
	return pos, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
