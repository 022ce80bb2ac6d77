package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/postcursor/cursor"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	if !m.focused {
		return m, cmd
	}

	// Only left button interactions move the cursor.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}
		p, ok := m.screenToPos(msg.X, msg.Y)
		if !ok {
			return m, cmd
		}
		if msg.Shift {
			m.mouseAnchor = m.sel.Anchor
			m.sel = cursor.NewRange(m.sel.Anchor, p)
		} else {
			m.mouseAnchor = p
			m.sel = cursor.Caret(p)
		}
		m.mouseDragging = true
		m.rebuildContent()

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}
		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		p, ok := m.screenToPos(x, y)
		if !ok {
			return m, cmd
		}
		m.sel = cursor.NewRange(m.mouseAnchor, p)
		m.rebuildContent()

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
