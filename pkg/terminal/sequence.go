package terminal

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/arthur-debert/clio/pkg/color"
)

// Generator turns state transitions into SGR escape sequences.
type Generator struct {
	mode Mode
}

// NewGenerator returns a generator encoding colors for mode.
func NewGenerator(mode Mode) *Generator {
	return &Generator{mode: mode}
}

// Mode returns the color encoding mode.
func (g *Generator) Mode() Mode {
	return g.mode
}

// Reset returns the sequence that turns every attribute off.
func (g *Generator) Reset() string {
	if g.mode == Plain {
		return ""
	}
	return termenv.CSI + termenv.ResetSeq + "m"
}

// Transition returns the shortest sequence moving the terminal from one
// state to another. When any attribute turns off, the sequence starts with
// a reset and re-sends everything still on. Otherwise only attributes that
// turned on or changed are sent. Colors are compared by their encoding, so
// two colors mapping to the same palette entry need no sequence.
func (g *Generator) Transition(from, to State) string {
	if g.mode == Plain {
		return ""
	}

	before := g.params(from)
	after := g.params(to)
	if before == after {
		return ""
	}

	var codes []string
	if turnedOff(before, after) {
		codes = append(codes, termenv.ResetSeq)
		for _, p := range after {
			if p != "" {
				codes = append(codes, p)
			}
		}
	} else {
		for i, p := range after {
			if p != "" && p != before[i] {
				codes = append(codes, p)
			}
		}
	}
	return termenv.CSI + strings.Join(codes, ";") + "m"
}

func turnedOff(before, after [4]string) bool {
	for i := range before {
		if before[i] != "" && after[i] == "" {
			return true
		}
	}
	return false
}

// params encodes a state as bold, underline, text and fill parameters, with
// "" for attributes that are off.
func (g *Generator) params(s State) [4]string {
	var p [4]string
	if s.Bold {
		p[0] = termenv.BoldSeq
	}
	if s.Underline {
		p[1] = termenv.UnderlineSeq
	}
	p[2] = g.colorParam(s.Text, false)
	p[3] = g.colorParam(s.Fill, true)
	return p
}

func (g *Generator) colorParam(c color.Color, fill bool) string {
	if !c.IsValid() {
		return ""
	}

	switch g.mode {
	case VT100:
		code := c.ANSICode()
		base := 30
		if code >= 8 {
			base, code = 90, code-8
		}
		if fill {
			base += 10
		}
		return strconv.Itoa(base + code)
	case XTerm:
		prefix := termenv.Foreground
		if fill {
			prefix = termenv.Background
		}
		return prefix + ";5;" + strconv.Itoa(c.XTermCode())
	case RGB:
		prefix := termenv.Foreground
		if fill {
			prefix = termenv.Background
		}
		r, gr, b := c.RGB()
		return prefix + ";2;" + strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(gr)) + ";" + strconv.Itoa(int(b))
	default:
		return ""
	}
}
