package clio

import (
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/style"
)

// The direct styling calls change the base style, under any open markup.
// The change reaches the terminal with the next output or Flush.

func (c *Clio) SetBold(on bool) *Clio {
	c.base.SetBold(on)
	c.request()
	return c
}

func (c *Clio) SetUnderline(on bool) *Clio {
	c.base.SetUnderline(on)
	c.request()
	return c
}

// SetTextColor sets the base text color. Nil and unknown colors fall back
// to the default text color.
func (c *Clio) SetTextColor(spec color.Spec) *Clio {
	c.base.SetTextColor(c.orDefault(spec, c.defaultText))
	c.request()
	return c
}

// SetFillColor sets the base fill color. Nil and unknown colors fall back
// to the default fill color.
func (c *Clio) SetFillColor(spec color.Spec) *Clio {
	c.base.SetFillColor(c.orDefault(spec, c.defaultFill))
	c.request()
	return c
}

func (c *Clio) ClearTextColor() *Clio {
	return c.SetTextColor(nil)
}

func (c *Clio) ClearFillColor() *Clio {
	return c.SetFillColor(nil)
}

func (c *Clio) SetColors(text, fill color.Spec) *Clio {
	c.SetTextColor(text)
	return c.SetFillColor(fill)
}

// SetStyle makes s the base style. Unset booleans count as off and unset
// colors as the defaults.
func (c *Clio) SetStyle(s *style.Style) *Clio {
	if s == nil {
		s = style.New()
	}
	c.base.SetBold(s.IsBoldOn()).SetUnderline(s.IsUnderlineOn())
	c.base.SetTextColor(c.orDefault(s.TextColor(), c.defaultText))
	c.base.SetFillColor(c.orDefault(s.FillColor(), c.defaultFill))
	c.request()
	return c
}

func (c *Clio) orDefault(spec color.Spec, def color.Color) color.Color {
	if col := color.Resolve(spec); col.IsValid() {
		return col
	}
	return def
}

// Style displays text with overlay on top of the current style. Only the
// attributes overlay defines change, and the previous style is restored
// as soon as the text is out.
func (c *Clio) Style(text string, overlay *style.Style) *Clio {
	if overlay == nil {
		return c.Display(text)
	}
	token := c.stack.AddAnonymous(overlay)
	c.request()
	c.Display(text)
	c.stack.Remove(token)
	c.emit()
	return c
}

// StyleLine is Style followed by a new line.
func (c *Clio) StyleLine(text string, overlay *style.Style) *Clio {
	c.Style(text, overlay)
	return c.NewLine(1)
}

// Span is text displayed in its own overlay.
type Span struct {
	Text  string
	Style *style.Style
}

// StyleSpans displays spans one after the other, each in its overlay. The
// terminal moves straight from one span's style to the next and the
// previous style is restored once, after the last span.
func (c *Clio) StyleSpans(spans ...Span) *Clio {
	for _, span := range spans {
		overlay := span.Style
		if overlay == nil {
			overlay = style.New()
		}
		token := c.stack.AddAnonymous(overlay)
		c.request()
		c.Display(span.Text)
		c.stack.Remove(token)
	}
	c.emit()
	return c
}
