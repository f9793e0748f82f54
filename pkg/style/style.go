// Package style holds partial text styles. Every attribute may be left
// unset, and overriding one style with another only copies the attributes
// the second one defines. Stacking styles this way ("pancaking") is how
// markup scopes combine.
package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/terminal"
)

// Flag is a tri-state boolean: unset (inherit), off or on.
type Flag int8

const (
	Unset Flag = iota
	Off
	On
)

// FlagOf converts an optional boolean.
func FlagOf(v *bool) Flag {
	if v == nil {
		return Unset
	}
	if *v {
		return On
	}
	return Off
}

func flag(on bool) Flag {
	if on {
		return On
	}
	return Off
}

func (f Flag) String() string {
	switch f {
	case Off:
		return "off"
	case On:
		return "on"
	default:
		return "unset"
	}
}

// Style is a set of optional attributes. The zero value defines nothing.
// Colors are values, so a style never shares state with its source.
type Style struct {
	bold      Flag
	underline Flag
	text      color.Color
	fill      color.Color
}

// New returns a style with every attribute unset.
func New() *Style {
	return &Style{}
}

// FromState returns a style defining every attribute of a concrete state.
// Colors that are not set stay unset.
func FromState(st terminal.State) *Style {
	return &Style{
		bold:      flag(st.Bold),
		underline: flag(st.Underline),
		text:      st.Text,
		fill:      st.Fill,
	}
}

func (s *Style) SetBold(on bool) *Style {
	s.bold = flag(on)
	return s
}

func (s *Style) ClearBold() *Style {
	s.bold = Unset
	return s
}

func (s *Style) Bold() Flag {
	return s.bold
}

func (s *Style) IsBoldOn() bool {
	return s.bold == On
}

func (s *Style) SetUnderline(on bool) *Style {
	s.underline = flag(on)
	return s
}

func (s *Style) ClearUnderline() *Style {
	s.underline = Unset
	return s
}

func (s *Style) Underline() Flag {
	return s.underline
}

func (s *Style) IsUnderlineOn() bool {
	return s.underline == On
}

// Normal defines bold and underline as off.
func (s *Style) Normal() *Style {
	s.bold = Off
	s.underline = Off
	return s
}

// SetTextColor resolves spec. Nil, Inherit and unknown colors leave the
// attribute unset.
func (s *Style) SetTextColor(spec color.Spec) *Style {
	s.text = color.Resolve(spec)
	return s
}

func (s *Style) ClearTextColor() *Style {
	s.text = color.Color{}
	return s
}

func (s *Style) TextColor() color.Color {
	return s.text
}

func (s *Style) HasTextColor() bool {
	return s.text.IsValid()
}

// SetFillColor resolves spec. Nil, Inherit and unknown colors leave the
// attribute unset.
func (s *Style) SetFillColor(spec color.Spec) *Style {
	s.fill = color.Resolve(spec)
	return s
}

func (s *Style) ClearFillColor() *Style {
	s.fill = color.Color{}
	return s
}

func (s *Style) FillColor() color.Color {
	return s.fill
}

func (s *Style) HasFillColor() bool {
	return s.fill.IsValid()
}

func (s *Style) SetColors(text, fill color.Spec) *Style {
	return s.SetTextColor(text).SetFillColor(fill)
}

// ReverseColors swaps text and fill colors.
func (s *Style) ReverseColors() *Style {
	s.text, s.fill = s.fill, s.text
	return s
}

// ClearStyling unsets every attribute.
func (s *Style) ClearStyling() *Style {
	*s = Style{}
	return s
}

// Override copies onto s every attribute src defines. Attributes src
// leaves unset keep their current value in s. A nil src changes nothing.
func (s *Style) Override(src *Style) *Style {
	if src == nil {
		return s
	}
	if src.bold != Unset {
		s.bold = src.bold
	}
	if src.underline != Unset {
		s.underline = src.underline
	}
	if src.text.IsValid() {
		s.text = src.text
	}
	if src.fill.IsValid() {
		s.fill = src.fill
	}
	return s
}

// State projects the style onto a concrete terminal state: unset booleans
// are off and unset colors stay not set.
func (s *Style) State() terminal.State {
	return terminal.State{
		Bold:      s.bold == On,
		Underline: s.underline == On,
		Text:      s.text,
		Fill:      s.fill,
	}
}

// Clone returns an independent copy.
func (s *Style) Clone() *Style {
	c := *s
	return &c
}

// IsEmpty reports whether no attribute is defined.
func (s *Style) IsEmpty() bool {
	return s.Equal(New())
}

// Equal compares every attribute, including whether it is defined.
func (s *Style) Equal(o *Style) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.bold == o.bold &&
		s.underline == o.underline &&
		s.text.Equal(o.text) &&
		s.fill.Equal(o.fill)
}

func (s *Style) String() string {
	var parts []string
	if s.bold != Unset {
		parts = append(parts, "bold="+s.bold.String())
	}
	if s.underline != Unset {
		parts = append(parts, "underline="+s.underline.String())
	}
	if s.text.IsValid() {
		parts = append(parts, "text="+s.text.Name())
	}
	if s.fill.IsValid() {
		parts = append(parts, "fill="+s.fill.Name())
	}
	return fmt.Sprintf("Style{%s}", strings.Join(parts, " "))
}
