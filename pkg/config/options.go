package config

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/style"
	"github.com/arthur-debert/clio/pkg/terminal"
)

// Options turns the configuration into session options writing to out and
// reading from in. Automatic mode and width look at out when it is a
// terminal; otherwise the mode is plain and the width clio.DefaultWidth.
func (c *Config) Options(out io.Writer, in io.Reader) (clio.Options, error) {
	opts := clio.Options{Output: out, Input: in}

	f, _ := out.(*os.File)
	if strings.EqualFold(strings.TrimSpace(c.Mode), ModeAuto) {
		if f != nil {
			opts.Mode = terminal.DetectMode(f)
		}
	} else {
		mode, err := terminal.ParseMode(c.Mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}

	opts.Width = c.Width
	if opts.Width == 0 {
		opts.Width = TerminalWidth(f)
	}

	text, err := color.Parse(c.TextColor)
	if err != nil {
		return opts, errors.Wrap(err, errors.ErrConfigValid, "invalid text_color")
	}
	fill, err := color.Parse(c.FillColor)
	if err != nil {
		return opts, errors.Wrap(err, errors.ErrConfigValid, "invalid fill_color")
	}
	opts.TextColor, opts.FillColor = text, fill
	return opts, nil
}

// TerminalWidth is the column count of f, or clio.DefaultWidth when f is
// not a terminal.
func TerminalWidth(f *os.File) int {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return clio.DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < 1 {
		return clio.DefaultWidth
	}
	return width
}

// Apply registers the configured markup on c, in order.
func (c *Config) Apply(session *clio.Clio) error {
	for _, m := range c.Markup {
		s, err := m.Style()
		if err != nil {
			return err
		}
		if !session.RegisterMarkup(m.Symbol, s) {
			return errors.Newf(errors.ErrAlreadyExists, "markup %q is already registered", m.Symbol).
				WithDetail("symbol", m.Symbol)
		}
	}
	return nil
}

// Style builds the style the symbol toggles.
func (m MarkupConfig) Style() (*style.Style, error) {
	s := style.New()
	if m.Bold != nil {
		s.SetBold(*m.Bold)
	}
	if m.Underline != nil {
		s.SetUnderline(*m.Underline)
	}
	text, err := color.Parse(m.TextColor)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "markup %q", m.Symbol)
	}
	fill, err := color.Parse(m.FillColor)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid, "markup %q", m.Symbol)
	}
	return s.SetColors(text, fill), nil
}

// New loads the configuration and returns a session on out and in with the
// configured markup registered.
func New(opts LoadOptions, out io.Writer, in io.Reader) (*clio.Clio, *Config, error) {
	cfg, err := Load(opts)
	if err != nil {
		return nil, nil, err
	}
	clioOpts, err := cfg.Options(out, in)
	if err != nil {
		return nil, nil, err
	}
	session := clio.New(clioOpts)
	if err := cfg.Apply(session); err != nil {
		return nil, nil, err
	}
	return session, cfg, nil
}
