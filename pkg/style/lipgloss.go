package style

import "github.com/charmbracelet/lipgloss"

// Lipgloss converts the defined attributes into a lipgloss style, for
// output that is rendered outside of a clio session.
func (s *Style) Lipgloss() lipgloss.Style {
	ls := lipgloss.NewStyle()
	if s.bold != Unset {
		ls = ls.Bold(s.bold == On)
	}
	if s.underline != Unset {
		ls = ls.Underline(s.underline == On)
	}
	if s.text.IsValid() {
		ls = ls.Foreground(lipgloss.Color(s.text.Hex()))
	}
	if s.fill.IsValid() {
		ls = ls.Background(lipgloss.Color(s.fill.Hex()))
	}
	return ls
}
