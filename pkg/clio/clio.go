// Package clio is the styling engine: it reads text carrying markup
// symbols, keeps track of which markups are open and writes only the
// escape sequences needed for the terminal to show the resulting style.
//
// A Clio owns one terminal. It is not safe for concurrent use.
package clio

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/logging"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
	"github.com/arthur-debert/clio/pkg/terminal"
)

// DefaultWidth is the column width used when none is configured.
const DefaultWidth = 80

// Symbols registered by New.
const (
	BoldSymbol      = "**"
	UnderlineSymbol = "__"
)

// Options configure a Clio.
type Options struct {
	// Output defaults to os.Stdout.
	Output io.Writer
	// Input is read by the prompts. It defaults to os.Stdin.
	Input io.Reader
	// Mode selects the color encoding. The zero value writes plain text;
	// terminal.DetectMode picks one for a real terminal.
	Mode terminal.Mode
	// TextColor and FillColor are the colors text falls back to when no
	// color is set. Nil means the terminal's own colors.
	TextColor color.Spec
	FillColor color.Spec
	// Width is the column width for Justify and Wordwrap. Zero means
	// DefaultWidth.
	Width int
	// Logger defaults to the "clio" component logger.
	Logger *zerolog.Logger
}

// Clio is a styling session over one terminal.
type Clio struct {
	term        *terminal.Terminal
	definition  *markup.Definition
	stack       *markup.Stack
	base        *style.Style
	defaultText color.Color
	defaultFill color.Color
	width       int
	logger      zerolog.Logger
}

// New returns a session with "**" registered for bold and "__" for
// underline. The base style is bold and underline off in the default
// colors; it is sent to the terminal with the first output or Flush.
func New(opts Options) *Clio {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	logger := logging.GetLogger("clio")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	c := &Clio{
		term:        terminal.New(out, in, opts.Mode),
		definition:  markup.NewDefinition(),
		stack:       markup.NewStack(),
		defaultText: color.Resolve(opts.TextColor),
		defaultFill: color.Resolve(opts.FillColor),
		width:       width,
		logger:      logger,
	}
	c.base = style.New().Normal().SetColors(c.defaultText, c.defaultFill)

	c.definition.Register(BoldSymbol, style.New().SetBold(true))
	c.definition.Register(UnderlineSymbol, style.New().SetUnderline(true))

	c.term.SetState(c.base.State())

	c.logger.Debug().
		Str("mode", opts.Mode.String()).
		Int("width", width).
		Stringer("textColor", c.defaultText).
		Stringer("fillColor", c.defaultFill).
		Msg("clio session created")
	return c
}

// Mode returns the terminal color mode.
func (c *Clio) Mode() terminal.Mode {
	return c.term.Mode()
}

// DefaultTextColor is the configured default text color, possibly unset.
func (c *Clio) DefaultTextColor() color.Color {
	return c.defaultText
}

// DefaultFillColor is the configured default fill color, possibly unset.
func (c *Clio) DefaultFillColor() color.Color {
	return c.defaultFill
}

// BaseStyle returns a copy of the style set by the direct styling calls.
func (c *Clio) BaseStyle() *style.Style {
	return c.base.Clone()
}

// State is the concrete state text would be displayed in right now.
func (c *Clio) State() terminal.State {
	return c.resolved().State()
}

func (c *Clio) Width() int {
	return c.width
}

// SetWidth changes the column width. Values below 1 are ignored.
func (c *Clio) SetWidth(width int) *Clio {
	if width > 0 {
		c.width = width
	}
	return c
}

// Err returns the first error met writing to the output.
func (c *Clio) Err() error {
	return c.term.Err()
}

// Flush sends any pending style change to the terminal.
func (c *Clio) Flush() *Clio {
	c.term.Flush()
	return c
}

// Clear resets the base style to bold and underline off in the default
// colors and closes every open markup. With immediate set, a reset
// sequence followed by the default colors is written right away; otherwise
// the change waits for the next output.
func (c *Clio) Clear(immediate bool) *Clio {
	c.term.Clear(immediate)
	c.base.Normal().SetColors(c.defaultText, c.defaultFill)
	c.stack.Clear()
	c.term.SetState(c.base.State())
	if immediate {
		c.term.Flush()
	}
	c.logger.Trace().Bool("immediate", immediate).Msg("styling cleared")
	return c
}

// ClearScreen erases the terminal.
func (c *Clio) ClearScreen() *Clio {
	c.term.ClearScreen()
	return c
}

// resolved is the open markups folded onto the base style.
func (c *Clio) resolved() *style.Style {
	if s, ok := c.stack.Resolve(c.base); ok {
		return s
	}
	return c.base
}

// request makes the resolved style the terminal's desired state.
func (c *Clio) request() {
	c.term.SetState(c.resolved().State())
}

// emit moves the terminal to the resolved style now.
func (c *Clio) emit() {
	c.term.TransitionTo(c.resolved().State())
}
