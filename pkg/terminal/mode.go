package terminal

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/clio/pkg/errors"
)

// Mode selects how colors are encoded in escape sequences.
type Mode int

const (
	// Plain writes text without any escape sequence
	Plain Mode = iota
	// VT100 uses the sixteen system colors (30-37/90-97, 40-47/100-107)
	VT100
	// XTerm uses the 256 color palette (38;5;n and 48;5;n)
	XTerm
	// RGB uses 24 bit colors (38;2;r;g;b and 48;2;r;g;b)
	RGB
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case VT100:
		return "vt100"
	case XTerm:
		return "xterm"
	case RGB:
		return "rgb"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "xterm", "xterm256", "256":
		return XTerm, nil
	case "vt100", "ansi", "16":
		return VT100, nil
	case "rgb", "truecolor", "24bit":
		return RGB, nil
	case "plain", "none", "text":
		return Plain, nil
	default:
		return Plain, errors.Newf(errors.ErrInvalidMode, "unknown mode: %s", s).
			WithDetail("mode", s)
	}
}

// DetectMode picks a mode from the environment and the capabilities of the
// terminal behind output.
func DetectMode(output *os.File) Mode {
	if os.Getenv("NO_COLOR") != "" {
		return Plain
	}

	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return Plain
	}

	switch termenv.NewOutput(output).EnvColorProfile() {
	case termenv.TrueColor:
		return RGB
	case termenv.ANSI256:
		return XTerm
	case termenv.ANSI:
		return VT100
	default:
		return Plain
	}
}
