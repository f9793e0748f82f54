package markup

import (
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/clio/pkg/logging"
	"github.com/arthur-debert/clio/pkg/style"
)

// Definition is the ordered registry of symbols known to a session. Symbols
// are unique and are never removed. Text operations on a definition treat
// every registered symbol as zero width. Lengths are counted in runes.
type Definition struct {
	list   []Markup
	logger zerolog.Logger
}

// NewDefinition returns an empty definition.
func NewDefinition() *Definition {
	return &Definition{logger: logging.GetLogger("markup")}
}

// Register adds symbol with a copy of s. Empty symbols, nil styles and
// symbols already registered are rejected.
func (d *Definition) Register(symbol string, s *style.Style) bool {
	if symbol == "" || s == nil {
		d.logger.Debug().Str("symbol", symbol).Msg("rejected malformed markup")
		return false
	}
	if _, ok := d.Lookup(symbol); ok {
		d.logger.Debug().Str("symbol", symbol).Msg("rejected duplicate markup")
		return false
	}
	d.list = append(d.list, New(symbol, s))
	d.logger.Trace().Str("symbol", symbol).Stringer("style", s).Msg("registered markup")
	return true
}

// Symbols returns the registered symbols in registration order.
func (d *Definition) Symbols() []string {
	symbols := make([]string, len(d.list))
	for i, m := range d.list {
		symbols[i] = m.symbol
	}
	return symbols
}

// Lookup returns the markup registered for symbol, if any.
func (d *Definition) Lookup(symbol string) (Markup, bool) {
	for _, m := range d.list {
		if m.symbol == symbol {
			return m, true
		}
	}
	return Markup{}, false
}

// Styling returns a copy of the style registered for symbol.
func (d *Definition) Styling(symbol string) (*style.Style, bool) {
	m, ok := d.Lookup(symbol)
	if !ok {
		return nil, false
	}
	return m.Style(), true
}

// FindNext returns the byte offset and symbol of the leftmost symbol in
// text. When two symbols start at the same offset the one registered first
// wins.
func (d *Definition) FindNext(text string) (int, string, bool) {
	best, found := -1, ""
	for _, m := range d.list {
		pos := strings.Index(text, m.symbol)
		if pos < 0 {
			continue
		}
		if best < 0 || pos < best {
			best, found = pos, m.symbol
		}
	}
	return best, found, best >= 0
}

// Strip removes every symbol from text. Symbols are removed in registration
// order until none is left, so the result never contains a symbol.
func (d *Definition) Strip(text string) string {
	for d.HasMarkup(text) {
		for _, m := range d.list {
			text = strings.ReplaceAll(text, m.symbol, "")
		}
	}
	return text
}

// HasMarkup reports whether text contains any registered symbol.
func (d *Definition) HasMarkup(text string) bool {
	for _, m := range d.list {
		if strings.Contains(text, m.symbol) {
			return true
		}
	}
	return false
}

// VisibleLength is the rune count of text once symbols are stripped.
func (d *Definition) VisibleLength(text string) int {
	return utf8.RuneCountInString(d.Strip(text))
}

// Justify fits text to exactly width visible runes: longer text is
// shortened, shorter text is padded according to j. None pads like Left.
// A width below 1 leaves text unchanged.
func (d *Definition) Justify(text string, j Justification, width int) string {
	if width <= 0 {
		return text
	}

	visible := d.VisibleLength(text)
	if visible > width {
		text = d.Shorten(text, width)
		visible = d.VisibleLength(text)
	}

	delta := width - visible
	if delta <= 0 {
		return text
	}
	switch j {
	case Center:
		return d.Pad(text, delta/2, delta-delta/2)
	case Right:
		return d.Pad(text, delta, 0)
	default:
		return d.Pad(text, 0, delta)
	}
}

// Pad adds left and right blanks. A symbol opening the text stays in front
// of the left padding and a symbol closing it stays after the right
// padding, so styles do not spread over the blanks.
func (d *Definition) Pad(text string, left, right int) string {
	if left > 0 {
		padding := strings.Repeat(" ", left)
		if sym := d.prefixSymbol(text); sym != "" {
			text = sym + padding + text[len(sym):]
		} else {
			text = padding + text
		}
	}
	if right > 0 {
		padding := strings.Repeat(" ", right)
		if sym := d.suffixSymbol(text); sym != "" {
			text = text[:len(text)-len(sym)] + padding + sym
		} else {
			text += padding
		}
	}
	return text
}

// Shorten cuts text down to length visible runes, removing from the end.
// Symbols met while cutting are kept and moved, in their original order,
// to the end of the result. The visible length is measured with Strip after
// every cut, so runes that only formed a symbol once another one was
// stripped are counted the same way VisibleLength counts them. On such
// text the result can end up shorter than length.
func (d *Definition) Shorten(text string, length int) string {
	if length < 0 {
		length = 0
	}

	trailing := ""
	for text != "" && d.VisibleLength(text+trailing) > length {
		if sym := d.suffixSymbol(text); sym != "" {
			trailing = sym + trailing
			text = text[:len(text)-len(sym)]
			continue
		}
		_, size := utf8.DecodeLastRuneInString(text)
		text = text[:len(text)-size]
	}
	return text + trailing
}

func (d *Definition) prefixSymbol(text string) string {
	for _, m := range d.list {
		if strings.HasPrefix(text, m.symbol) {
			return m.symbol
		}
	}
	return ""
}

func (d *Definition) suffixSymbol(text string) string {
	for _, m := range d.list {
		if strings.HasSuffix(text, m.symbol) {
			return m.symbol
		}
	}
	return ""
}
