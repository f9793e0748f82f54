// Package layout holds the text block widgets: titles and paragraphs.
package layout

import (
	"strings"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
)

// Title displays one line of text justified across the session width in
// its own style, with blank lines around it.
type Title struct {
	clio          *clio.Clio
	Justification markup.Justification
	// Style is applied on top of the session style for the title only.
	Style       *style.Style
	SpaceBefore int
	SpaceAfter  int
}

// NewTitle returns a title with two blank lines before and one after.
func NewTitle(c *clio.Clio, j markup.Justification, s *style.Style) *Title {
	return &Title{
		clio:          c,
		Justification: j,
		Style:         s,
		SpaceBefore:   2,
		SpaceAfter:    1,
	}
}

// Display trims text and shows it as a title. Blank text shows nothing.
// Text longer than the session width is shortened.
func (t *Title) Display(text string) *Title {
	text = strings.TrimSpace(text)
	if text == "" {
		return t
	}

	text = t.clio.Justify(text, t.Justification, 0)
	if t.SpaceBefore > 0 {
		t.clio.NewLine(t.SpaceBefore)
	}
	t.clio.StyleLine(text, t.Style)
	if t.SpaceAfter > 0 {
		t.clio.NewLine(t.SpaceAfter)
	}
	return t
}
