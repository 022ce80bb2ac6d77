package view

import "github.com/charmbracelet/lipgloss"

// Style controls the viewer's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Bold      lipgloss.Style
	Italic    lipgloss.Style
	Atom      lipgloss.Style
	Card      lipgloss.Style
	Bullet    lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
	Status    lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Bold:          lipgloss.NewStyle().Bold(true),
		Italic:        lipgloss.NewStyle().Italic(true),
		Atom:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Card:          lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Bullet:        gutter,
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        gutter,
	}
}

// markupStyle returns the text style for a marker's markups.
func (s Style) markupStyle(markups []string) lipgloss.Style {
	st := s.Text
	for _, m := range markups {
		switch m {
		case "b", "strong":
			st = st.Inherit(s.Bold)
		case "i", "em":
			st = st.Inherit(s.Italic)
		}
	}
	return st
}
