package tables

import (
	"strings"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/style"
)

// Drawer is implemented by every table kind.
type Drawer interface {
	Draw(rows [][]string)
}

// Table draws rows under a bold and underlined header. The header row is
// shown when at least one column has header text.
type Table struct {
	clio    *clio.Clio
	columns []*Column
}

// New returns a table over columns. Rows longer than the column list add
// default columns when drawn.
func New(c *clio.Clio, columns ...*Column) *Table {
	return &Table{clio: c, columns: columns}
}

// SetColumn replaces the column at index with a copy of col. It reports
// false when index is out of range.
func (t *Table) SetColumn(index int, col *Column) bool {
	if index < 0 || index >= len(t.columns) || col == nil {
		return false
	}
	t.columns[index] = col.clone()
	return true
}

// Columns returns the table's own columns, not copies.
func (t *Table) Columns() []*Column {
	return t.columns
}

// TotalWidth is the sum of the current column widths.
func (t *Table) TotalWidth() int {
	total := 0
	for _, col := range t.columns {
		total += col.Width()
	}
	return total
}

// HasHeader reports whether any column has a header cell to draw.
func (t *Table) HasHeader() bool {
	for _, col := range t.columns {
		if col.HasHeader() {
			return true
		}
	}
	return false
}

func (t *Table) headers() []string {
	headers := make([]string, len(t.columns))
	for i, col := range t.columns {
		headers[i] = col.Header()
	}
	return headers
}

// Draw shows the header and rows. Nothing is shown without rows.
func (t *Table) Draw(rows [][]string) {
	rows, ok := t.prepare(rows)
	if !ok {
		return
	}
	if t.HasHeader() {
		t.drawRow(t.headers(), style.New().SetBold(true).SetUnderline(true))
	}
	for _, row := range rows {
		t.drawRow(row, nil)
	}
}

// prepare adds columns for rows longer than the column list, pads shorter
// rows with empty cells and calculates the widths that are not fixed.
func (t *Table) prepare(rows [][]string) ([][]string, bool) {
	if len(rows) == 0 {
		return nil, false
	}

	for _, row := range rows {
		for len(t.columns) < len(row) {
			t.columns = append(t.columns, NewColumn("", 0))
		}
	}

	padded := make([][]string, len(rows))
	for i, row := range rows {
		padded[i] = make([]string, len(t.columns))
		copy(padded[i], row)
	}

	definition := t.clio.MarkupDefinition()
	cells := make([]string, len(padded))
	for c, col := range t.columns {
		for r, row := range padded {
			cells[r] = row[c]
		}
		col.CalculateWidth(cells, definition)
	}
	return padded, true
}

// drawRow shows one line of cells in rowStyle, nil meaning no change,
// with each column's colors on top.
func (t *Table) drawRow(row []string, rowStyle *style.Style) {
	definition := t.clio.MarkupDefinition()
	spans := make([]clio.Span, len(t.columns))
	for c, col := range t.columns {
		cellStyle := style.New()
		if rowStyle != nil {
			cellStyle = rowStyle.Clone()
		}
		if col.TextColor().IsValid() {
			cellStyle.SetTextColor(col.TextColor())
		}
		if col.FillColor().IsValid() {
			cellStyle.SetFillColor(col.FillColor())
		}
		spans[c] = clio.Span{Text: col.Justify(row[c], definition), Style: cellStyle}
	}
	t.clio.StyleSpans(spans...).NewLine(1)
}

// DefaultAlternatingFill fills every other row of an AlternatingTable.
const DefaultAlternatingFill = "oldlace"

// AlternatingTable fills the first row and every second one after it. The
// header is bold.
type AlternatingTable struct {
	*Table
	fill color.Color
}

func NewAlternating(c *clio.Clio, columns ...*Column) *AlternatingTable {
	return &AlternatingTable{
		Table: New(c, columns...),
		fill:  color.Resolve(color.Named(DefaultAlternatingFill)),
	}
}

// SetFill changes the alternating fill. Nil leaves the rows unfilled.
func (t *AlternatingTable) SetFill(fill color.Spec) *AlternatingTable {
	t.fill = color.Resolve(fill)
	return t
}

func (t *AlternatingTable) Fill() color.Color {
	return t.fill
}

func (t *AlternatingTable) Draw(rows [][]string) {
	rows, ok := t.prepare(rows)
	if !ok {
		return
	}
	if t.HasHeader() {
		t.drawRow(t.headers(), style.New().SetBold(true))
	}
	for i, row := range rows {
		rowStyle := style.New()
		if i%2 == 0 {
			rowStyle.SetFillColor(t.fill)
		}
		t.drawRow(row, rowStyle)
	}
}

// BarTable shows its header as a colored bar, optionally under a centered
// bold title, and closes the body with an underlined blank line.
type BarTable struct {
	*Table
	title      string
	bottomLine bool
	barText    color.Color
	barFill    color.Color
	bodyText   color.Color
	bodyFill   color.Color
}

// NewBar returns a bar table without title and with a bottom line.
func NewBar(c *clio.Clio, columns ...*Column) *BarTable {
	return &BarTable{Table: New(c, columns...), bottomLine: true}
}

// SetTitle sets the text centered above the header. The title is only
// shown with a header.
func (t *BarTable) SetTitle(title string) *BarTable {
	t.title = title
	return t
}

func (t *BarTable) SetBottomLine(show bool) *BarTable {
	t.bottomLine = show
	return t
}

func (t *BarTable) SetColors(barText, barFill, bodyText, bodyFill color.Spec) *BarTable {
	t.barText, t.barFill = color.Resolve(barText), color.Resolve(barFill)
	t.bodyText, t.bodyFill = color.Resolve(bodyText), color.Resolve(bodyFill)
	return t
}

func (t *BarTable) Draw(rows [][]string) {
	rows, ok := t.prepare(rows)
	if !ok {
		return
	}
	total := t.TotalWidth()

	if t.HasHeader() {
		if t.title != "" {
			titleStyle := style.New().SetBold(true).SetTextColor(t.bodyText)
			t.clio.StyleLine(t.clio.Justify(t.title, markup.Center, total), titleStyle)
		}
		t.drawRow(t.headers(), style.New().SetColors(t.barText, t.barFill))
	}

	body := style.New().SetColors(t.bodyText, t.bodyFill)
	for _, row := range rows {
		t.drawRow(row, body)
	}

	if t.bottomLine {
		line := style.New().SetUnderline(true).SetColors(t.barFill, t.bodyFill)
		t.clio.StyleLine(strings.Repeat(" ", total), line)
	}
}
