// Package tables draws tables of text on a clio session: plain tables with
// an underlined header, tables with alternating row fills and bar tables
// with a colored header bar. Cells may carry markup; symbols never count
// toward column widths.
package tables

import (
	"unicode/utf8"

	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/markup"
)

// DefaultRightPadding is the blank space after the text of every column.
const DefaultRightPadding = 3

// Column describes one table column. The width includes the padding. A
// column without a fixed width takes the width of its widest cell, capped
// by the maximum width when one is set.
type Column struct {
	header        string
	fixed         bool
	width         int
	maxWidth      int
	leftPadding   int
	rightPadding  int
	justification markup.Justification
	text          color.Color
	fill          color.Color
}

// NewColumn returns a left justified column. A width of zero makes the
// width calculated from the data.
func NewColumn(header string, width int) *Column {
	col := &Column{
		header:        header,
		rightPadding:  DefaultRightPadding,
		justification: markup.Left,
	}
	return col.SetWidth(width)
}

func (col *Column) Header() string {
	return col.header
}

func (col *Column) HasHeader() bool {
	return col.header != ""
}

func (col *Column) SetHeader(header string) *Column {
	col.header = header
	return col
}

// SetWidth fixes the width. Zero or less switches to a calculated width.
func (col *Column) SetWidth(width int) *Column {
	if width > 0 {
		col.fixed, col.width = true, width
	} else {
		col.fixed, col.width = false, 0
	}
	return col
}

// Width is the fixed width, or the last calculated one. Zero means the
// width is not known yet.
func (col *Column) Width() int {
	return col.width
}

func (col *Column) IsCalculated() bool {
	return !col.fixed
}

// SetMaxWidth caps a calculated width. Zero removes the cap.
func (col *Column) SetMaxWidth(width int) *Column {
	col.maxWidth = max(width, 0)
	return col
}

func (col *Column) MaxWidth() int {
	return col.maxWidth
}

func (col *Column) SetPadding(left, right int) *Column {
	col.leftPadding, col.rightPadding = max(left, 0), max(right, 0)
	return col
}

func (col *Column) LeftPadding() int {
	return col.leftPadding
}

func (col *Column) RightPadding() int {
	return col.rightPadding
}

func (col *Column) SetJustification(j markup.Justification) *Column {
	col.justification = j
	return col
}

func (col *Column) Justification() markup.Justification {
	return col.justification
}

// SetColors sets the colors of the column cells. Nil leaves a color unset.
func (col *Column) SetColors(text, fill color.Spec) *Column {
	col.text, col.fill = color.Resolve(text), color.Resolve(fill)
	return col
}

func (col *Column) TextColor() color.Color {
	return col.text
}

func (col *Column) FillColor() color.Color {
	return col.fill
}

// TextArea is the width left for text once padding is taken out.
func (col *Column) TextArea() int {
	return max(col.width-col.leftPadding-col.rightPadding, 0)
}

// CalculateWidth sets a calculated width from the header and cells. Fixed
// columns and empty cell lists are left alone. d may be nil when the cells
// carry no markup.
func (col *Column) CalculateWidth(cells []string, d *markup.Definition) {
	if col.fixed || len(cells) == 0 {
		return
	}

	widest := utf8.RuneCountInString(col.header)
	for _, cell := range cells {
		length := utf8.RuneCountInString(cell)
		if d != nil {
			length = d.VisibleLength(cell)
		}
		widest = max(widest, length)
	}

	col.width = widest + col.leftPadding + col.rightPadding
	if col.maxWidth > 0 && col.width > col.maxWidth {
		col.width = col.maxWidth
	}
}

// Justify fits text to the column, padding included. A column with no
// room for text gives an empty string. d may be nil as for CalculateWidth.
func (col *Column) Justify(text string, d *markup.Definition) string {
	area := col.TextArea()
	if col.width == 0 || area == 0 {
		return ""
	}
	if d == nil {
		d = markup.NewDefinition()
	}
	return d.Pad(d.Justify(text, col.justification, area), col.leftPadding, col.rightPadding)
}

func (col *Column) clone() *Column {
	c := *col
	return &c
}
