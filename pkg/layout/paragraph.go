package layout

import (
	"strings"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
)

// Paragraph displays text word wrapped to the session width. Every line,
// including the blank lines after the paragraph, is padded to the full
// width so a fill color forms a block.
type Paragraph struct {
	clio *clio.Clio
	// Style may be nil.
	Style      *style.Style
	SpaceAfter int
	// Trim removes leading and trailing blanks before wrapping.
	Trim bool
}

// NewParagraph returns a trimming paragraph followed by one blank line.
func NewParagraph(c *clio.Clio, s *style.Style) *Paragraph {
	return &Paragraph{clio: c, Style: s, SpaceAfter: 1, Trim: true}
}

// Display shows one paragraph. Markup left open at the end carries on into
// whatever is displayed next.
func (p *Paragraph) Display(text string) *Paragraph {
	if p.Trim {
		text = strings.TrimSpace(text)
	}
	if text == "" {
		return p
	}

	width := p.clio.Width()
	var b strings.Builder
	for _, line := range strings.Split(p.clio.Wordwrap(text, width, false), "\n") {
		b.WriteString(p.clio.Justify(line, markup.Left, width))
		b.WriteByte('\n')
	}
	b.WriteString(p.blankLines(p.SpaceAfter))

	p.show(b.String())
	return p
}

// NewLine shows count blank lines in the paragraph style.
func (p *Paragraph) NewLine(count int) *Paragraph {
	if count > 0 {
		p.show(p.blankLines(count))
	}
	return p
}

func (p *Paragraph) blankLines(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(strings.Repeat(" ", p.clio.Width())+"\n", count)
}

func (p *Paragraph) show(text string) {
	if p.Style == nil {
		p.clio.Display(text)
		return
	}
	p.clio.Style(text, p.Style)
}
