// Package markup maps inline symbols such as "**" to styles, lays out text
// in which those symbols are invisible, and keeps the stack of symbols
// currently open while text is being displayed.
package markup

import "github.com/arthur-debert/clio/pkg/style"

// Markup pairs a symbol with the style it toggles. It owns a copy of the
// style, so later changes to the caller's style do not leak in.
type Markup struct {
	symbol string
	style  *style.Style
}

// New returns a markup for symbol. A nil style defines nothing.
func New(symbol string, s *style.Style) Markup {
	if s == nil {
		s = style.New()
	}
	return Markup{symbol: symbol, style: s.Clone()}
}

func (m Markup) Symbol() string {
	return m.symbol
}

// Style returns a copy of the markup's style.
func (m Markup) Style() *style.Style {
	if m.style == nil {
		return style.New()
	}
	return m.style.Clone()
}
