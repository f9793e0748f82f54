// Package lists draws bulleted and numbered lists that nest and word wrap
// with a hanging indent.
package lists

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/clio/pkg/clio"
)

// Indentation is the number of columns added per nesting level.
const Indentation = 3

// list holds what ordered and unordered lists share: the session and the
// current nesting level, zero when no list is open.
type list struct {
	clio    *clio.Clio
	nesting int
}

// start shows intro on its own line when it opens the outermost level, then
// opens one nesting level.
func (l *list) start(intro string) {
	if intro != "" && l.nesting == 0 {
		l.clio.Line(intro)
	}
	l.nesting++
}

func (l *list) end() {
	if l.nesting > 0 {
		l.nesting--
	}
}

// drawItem shows bullet then text wrapped to the columns left of the
// bullet. Continuation lines line up with the first character of text.
func (l *list) drawItem(bullet, text string) {
	indent := strings.Repeat(" ", Indentation*l.nesting)
	left := indent + bullet

	area := l.clio.Width() - utf8.RuneCountInString(left)
	if area < 1 {
		area = 1
	}
	text = l.clio.Wordwrap(text, area, false)
	hanging := "\n" + indent + strings.Repeat(" ", utf8.RuneCountInString(bullet))
	text = strings.ReplaceAll(text, "\n", hanging)

	l.clio.Line(left + text)
}

// Nesting is the current nesting level.
func (l *list) Nesting() int {
	return l.nesting
}
