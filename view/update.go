package view

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/postcursor/cursor"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	if key.Matches(msg, km.Quit) {
		return m, tea.Quit
	}
	if !m.focused || m.sel.Focus.IsBlank() {
		return m, nil
	}

	prev := m.sel
	switch {
	case key.Matches(msg, km.Left):
		m.sel = m.collapseOrMove(cursor.Backward)
	case key.Matches(msg, km.Right):
		m.sel = m.collapseOrMove(cursor.Forward)

	case key.Matches(msg, km.ShiftLeft):
		m.sel = m.sel.Extend(cursor.Backward, 1)
	case key.Matches(msg, km.ShiftRight):
		m.sel = m.sel.Extend(cursor.Forward, 1)

	case key.Matches(msg, km.WordLeft):
		m.sel = cursor.Caret(m.sel.Focus.MoveWord(cursor.Backward))
	case key.Matches(msg, km.WordRight):
		m.sel = cursor.Caret(m.sel.Focus.MoveWord(cursor.Forward))

	case key.Matches(msg, km.ShiftWordLeft):
		m.sel = m.sel.ExtendWord(cursor.Backward)
	case key.Matches(msg, km.ShiftWordRight):
		m.sel = m.sel.ExtendWord(cursor.Forward)

	case key.Matches(msg, km.Home):
		if pos, ok := cursor.PostHead(m.post); ok {
			m.sel = cursor.Caret(pos)
		}
	case key.Matches(msg, km.End):
		if pos, ok := cursor.PostTail(m.post); ok {
			m.sel = cursor.Caret(pos)
		}
	}

	if !m.sel.Equal(prev) {
		m.log.Debug("cursor moved", "from", prev.Focus.String(), "to", m.sel.Focus.String())
		m.rebuildContent()
		m.followCursor()
	}
	return m, nil
}

// collapseOrMove collapses a selection toward dir, or moves a caret one unit.
func (m Model) collapseOrMove(dir cursor.Direction) cursor.Range {
	if !m.sel.IsCollapsed() {
		return m.sel.Collapse(dir)
	}
	return cursor.Caret(m.sel.Focus.Move(dir))
}
