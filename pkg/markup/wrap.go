package markup

import (
	"strings"
	"unicode/utf8"
)

// Wordwrap breaks text into lines of at most width visible runes. Lines
// break at spaces; words longer than width are cut. Symbols keep their
// place in the text and newlines already present are kept as breaks. A
// width below 1 leaves text unchanged.
func (d *Definition) Wordwrap(text string, width int) string {
	if width < 1 {
		return text
	}
	wrapped := wrapLines([]rune(d.Strip(text)), width)
	return d.merge(text, wrapped)
}

// wrapLines is a greedy wrap of symbol free text. The space a line breaks
// at is replaced by the newline.
func wrapLines(text []rune, width int) string {
	var b strings.Builder
	lineStart, lastSpace := 0, 0

	emit := func(from, to int) {
		b.WriteString(string(text[from:to]))
		b.WriteByte('\n')
	}

	for cur, r := range text {
		switch {
		case r == '\n':
			b.WriteString(string(text[lineStart : cur+1]))
			lineStart, lastSpace = cur+1, cur+1
		case r == ' ':
			if cur-lineStart >= width {
				emit(lineStart, cur)
				lineStart = cur + 1
			}
			lastSpace = cur
		case cur-lineStart >= width && lineStart >= lastSpace:
			// no space to break at: cut the word
			emit(lineStart, cur)
			lineStart, lastSpace = cur, cur
		case cur-lineStart >= width:
			emit(lineStart, lastSpace)
			lineStart = lastSpace + 1
			lastSpace = lineStart
		}
	}
	if lineStart < len(text) {
		b.WriteString(string(text[lineStart:]))
	}
	return b.String()
}

// merge carries the line breaks of wrapped, the stripped and wrapped form
// of original, back into original. Symbols in original are copied through
// untouched. A break that replaced a space consumes that space.
func (d *Definition) merge(original, wrapped string) string {
	orig := []rune(original)
	wrap := []rune(wrapped)

	var b strings.Builder
	i, j := 0, 0
	for i < len(orig) && j < len(wrap) {
		if orig[i] == wrap[j] {
			b.WriteRune(orig[i])
			i++
			j++
			continue
		}
		if sym := d.symbolAt(orig, i); sym != "" {
			b.WriteString(sym)
			i += utf8.RuneCountInString(sym)
			continue
		}
		if wrap[j] == '\n' {
			b.WriteByte('\n')
			if orig[i] == ' ' {
				i++
			}
			j++
			continue
		}
		// the texts disagree: keep the original and move on in both
		b.WriteRune(orig[i])
		i++
		j++
	}
	b.WriteString(string(orig[i:]))
	b.WriteString(string(wrap[j:]))
	return b.String()
}

func (d *Definition) symbolAt(text []rune, index int) string {
	for _, m := range d.list {
		sym := []rune(m.symbol)
		if index+len(sym) > len(text) {
			continue
		}
		if string(text[index:index+len(sym)]) == m.symbol {
			return m.symbol
		}
	}
	return ""
}
