package clio

import (
	"strings"

	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
)

type tokenKind int

const (
	textToken tokenKind = iota
	markupToken
	newlineToken
)

type token struct {
	kind   tokenKind
	text   string
	markup markup.Markup
}

// tokenize splits text into runs of text, markup symbols and line feeds,
// in order. Text runs are never empty.
func (c *Clio) tokenize(text string) []token {
	var tokens []token
	for {
		index, symbol, ok := c.definition.FindNext(text)
		if !ok {
			break
		}
		tokens = appendText(tokens, text[:index])
		m, _ := c.definition.Lookup(symbol)
		tokens = append(tokens, token{kind: markupToken, markup: m})
		text = text[index+len(symbol):]
	}
	return appendText(tokens, text)
}

func appendText(tokens []token, text string) []token {
	for text != "" {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			return append(tokens, token{kind: textToken, text: text})
		}
		if i > 0 {
			tokens = append(tokens, token{kind: textToken, text: text[:i]})
		}
		tokens = append(tokens, token{kind: newlineToken})
		text = text[i+1:]
	}
	return tokens
}

// Display writes text, toggling the markup of every symbol it contains.
// Markup left open stays open for later calls until it is closed or the
// session is cleared.
func (c *Clio) Display(text string) *Clio {
	c.term.Flush()
	for _, t := range c.tokenize(text) {
		switch t.kind {
		case textToken:
			c.emit()
			c.term.Output(t.text)
		case markupToken:
			opened := c.stack.Toggle(t.markup)
			c.logger.Trace().
				Str("symbol", t.markup.Symbol()).
				Bool("opened", opened).
				Int("depth", c.stack.Len()).
				Msg("markup toggled")
			c.emit()
		case newlineToken:
			c.term.NewLine(1)
		}
	}
	return c
}

// Line displays text followed by a new line.
func (c *Clio) Line(text string) *Clio {
	c.Display(text)
	return c.NewLine(1)
}

// NewLine writes count line feeds without touching the style.
func (c *Clio) NewLine(count int) *Clio {
	c.term.NewLine(count)
	return c
}

// Output writes raw text, bypassing markup and styling.
func (c *Clio) Output(raw string) *Clio {
	c.term.Output(raw)
	return c
}

// RegisterMarkup adds a symbol. It reports false, changing nothing, when
// the symbol is empty, already registered or s is nil.
func (c *Clio) RegisterMarkup(symbol string, s *style.Style) bool {
	return c.definition.Register(symbol, s)
}

// MarkupDefinition gives widgets access to the session's symbols.
func (c *Clio) MarkupDefinition() *markup.Definition {
	return c.definition
}

// StripMarkup removes every registered symbol from text.
func (c *Clio) StripMarkup(text string) string {
	return c.definition.Strip(text)
}

// Justify fits text to width visible characters, ignoring symbols. A zero
// width means the session width.
func (c *Clio) Justify(text string, j markup.Justification, width int) string {
	if width == 0 {
		width = c.width
	}
	return c.definition.Justify(text, j, width)
}

// Wordwrap wraps text at width visible characters, ignoring symbols. A zero
// width means the session width.
func (c *Clio) Wordwrap(text string, width int, appendNewLine bool) string {
	if width == 0 {
		width = c.width
	}
	wrapped := c.definition.Wordwrap(text, width)
	if appendNewLine {
		wrapped += "\n"
	}
	return wrapped
}
