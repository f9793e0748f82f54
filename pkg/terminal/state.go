package terminal

import "github.com/arthur-debert/clio/pkg/color"

// State is a fully concrete rendering state: booleans are definite and an
// invalid color means "not set".
type State struct {
	Bold      bool
	Underline bool
	Text      color.Color
	Fill      color.Color
}

// Equal compares states by value.
func (s State) Equal(o State) bool {
	return s.Bold == o.Bold &&
		s.Underline == o.Underline &&
		s.Text.Equal(o.Text) &&
		s.Fill.Equal(o.Fill)
}

// IsZero reports whether nothing is on or set.
func (s State) IsZero() bool {
	return s.Equal(State{})
}
