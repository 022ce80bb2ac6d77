package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/postcursor/cursor"
	"github.com/iw2rmb/postcursor/post"
)

func (m *Model) renderContent() string {
	if len(m.lines) == 0 {
		return ""
	}
	out := make([]string, 0, len(m.lines))
	for i, ln := range m.lines {
		out = append(out, m.renderLine(i, ln))
	}
	return strings.Join(out, "\n")
}

func (m *Model) gutterWidth() int {
	if !m.cfg.ShowLeafNums {
		return 0
	}
	return gutterDigits(len(m.lines)) + 1
}

func gutterDigits(n int) int {
	return len(strconv.Itoa(max(n, 1)))
}

func (m *Model) renderLine(row int, ln line) string {
	st := m.cfg.Style
	focus := m.sel.Focus
	onCursorLine := focus.Section() == ln.section

	var sb strings.Builder
	if m.cfg.ShowLeafNums {
		numStyle := st.LineNum
		if onCursorLine {
			numStyle = st.LineNumActive
		}
		num := fmt.Sprintf("%*d", gutterDigits(len(m.lines)), row+1)
		sb.WriteString(numStyle.Render(num))
		sb.WriteString(st.Gutter.Render(" "))
	}
	if ln.prefix != "" {
		sb.WriteString(st.Bullet.Render(ln.prefix))
	}

	head, tail := m.sel.Head(), m.sel.Tail()
	for _, c := range ln.cells {
		cs := m.cellStyle(c)
		if !m.sel.IsCollapsed() && covered(ln.section, c.from, c.to, head, tail) {
			cs = cs.Inherit(st.Selection)
		}
		if m.focused && onCursorLine && c.caret == focus.Offset() {
			cs = st.Cursor.Inherit(cs)
		}
		sb.WriteString(cs.Render(c.text))
	}

	if m.focused && onCursorLine && !ln.hasCaret(focus.Offset()) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (m *Model) cellStyle(c cell) lipgloss.Style {
	st := m.cfg.Style
	switch c.kind {
	case cellAtom:
		return st.Atom
	case cellEdge, cellLabel:
		return st.Card
	default:
		return st.markupStyle(c.markups)
	}
}

// covered reports whether the unit [from, to) of s lies inside [head, tail).
func covered(s *post.Section, from, to int, head, tail cursor.Position) bool {
	start, err := cursor.New(s, from)
	if err != nil {
		return false
	}
	end, err := cursor.New(s, to)
	if err != nil {
		return false
	}
	return start.Compare(head) >= 0 && end.Compare(tail) <= 0
}

func (m *Model) renderStatus() string {
	st := m.cfg.Style
	pos := "no cursor"
	if !m.sel.Focus.IsBlank() {
		pos = m.sel.Focus.String()
	}
	if !m.sel.IsCollapsed() {
		pos = m.sel.String()
	}
	parts := []string{pos}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp()))
	return st.Status.Render(strings.Join(parts, "  "))
}
