package config

import (
	"strings"

	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/terminal"
)

// ModeAuto detects the mode from the output terminal.
const ModeAuto = "auto"

// Config is the merged configuration.
type Config struct {
	Mode      string         `koanf:"mode" toml:"mode"`
	Width     int            `koanf:"width" toml:"width"`
	TextColor string         `koanf:"text_color" toml:"text_color"`
	FillColor string         `koanf:"fill_color" toml:"fill_color"`
	Markup    []MarkupConfig `koanf:"markup" toml:"markup,omitempty"`
}

// MarkupConfig registers one symbol. Nil attributes are left unset so the
// symbol does not change them.
type MarkupConfig struct {
	Symbol    string `koanf:"symbol" toml:"symbol"`
	Bold      *bool  `koanf:"bold" toml:"bold,omitempty"`
	Underline *bool  `koanf:"underline" toml:"underline,omitempty"`
	TextColor string `koanf:"text_color" toml:"text_color,omitempty"`
	FillColor string `koanf:"fill_color" toml:"fill_color,omitempty"`
}

// Validate checks the values that decoding cannot.
func (c *Config) Validate() error {
	if !strings.EqualFold(strings.TrimSpace(c.Mode), ModeAuto) {
		if _, err := terminal.ParseMode(c.Mode); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "invalid mode %q", c.Mode)
		}
	}
	if c.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "width must not be negative, got %d", c.Width)
	}
	for i, m := range c.Markup {
		if m.Symbol == "" {
			return errors.Newf(errors.ErrConfigValid, "markup entry %d has no symbol", i+1)
		}
	}
	return nil
}
