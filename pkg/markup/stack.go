package markup

import "github.com/arthur-debert/clio/pkg/style"

// Token identifies a style scope opened with AddAnonymous. Tokens never
// collide with symbols.
type Token uint64

type entry struct {
	markup Markup
	token  Token
}

// Stack holds the markups currently open, oldest first. A symbol is on the
// stack at most once: toggling it again closes it.
type Stack struct {
	entries   []entry
	lastToken Token
}

// NewStack returns a stack with nothing open.
func NewStack() *Stack {
	return &Stack{}
}

// Toggle opens m, or closes it when a markup with the same symbol is
// already open. It reports whether m was opened.
func (s *Stack) Toggle(m Markup) bool {
	for i, e := range s.entries {
		if e.token == 0 && e.markup.symbol == m.symbol {
			s.remove(i)
			return false
		}
	}
	s.entries = append(s.entries, entry{markup: m})
	return true
}

// AddAnonymous opens a scope for a copy of st that only Remove can close.
func (s *Stack) AddAnonymous(st *style.Style) Token {
	s.lastToken++
	s.entries = append(s.entries, entry{markup: New("", st), token: s.lastToken})
	return s.lastToken
}

// Remove closes the scope opened with token. It reports whether the scope
// was still open.
func (s *Stack) Remove(token Token) bool {
	if token == 0 {
		return false
	}
	for i, e := range s.entries {
		if e.token == token {
			s.remove(i)
			return true
		}
	}
	return false
}

func (s *Stack) remove(i int) {
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

// Clear closes everything.
func (s *Stack) Clear() {
	s.entries = nil
}

// Len counts the open scopes, symbols and anonymous ones alike.
func (s *Stack) Len() int {
	return len(s.entries)
}

// IsOpen reports whether the markup for symbol is open.
func (s *Stack) IsOpen(symbol string) bool {
	for _, e := range s.entries {
		if e.token == 0 && e.markup.symbol == symbol {
			return true
		}
	}
	return false
}

// Resolve folds every open style onto a copy of base, oldest first, so the
// most recent scope wins for the attributes it defines. It returns false
// when nothing is open; the caller then uses base as is.
func (s *Stack) Resolve(base *style.Style) (*style.Style, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	resolved := style.New()
	if base != nil {
		resolved = base.Clone()
	}
	for _, e := range s.entries {
		resolved.Override(e.markup.style)
	}
	return resolved, true
}
