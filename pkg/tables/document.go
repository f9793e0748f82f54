package tables

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/markup"
)

// Format is the encoding of a table document.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf picks the format from a file extension: .toml is TOML and
// everything else is YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return TOML
	}
	return YAML
}

// Table kinds accepted by Document.Kind.
const (
	KindTable       = "table"
	KindAlternating = "alternating"
	KindBar         = "bar"
)

// Document describes a table and its rows in YAML or TOML:
//
//	kind: bar
//	title: Addition
//	bar_text: white
//	bar_fill: black
//	columns:
//	  - header: x
//	  - header: sum
//	    justification: right
//	rows:
//	  - [1, 2]
type Document struct {
	Kind       string `yaml:"kind" toml:"kind"`
	Title      string `yaml:"title" toml:"title"`
	BottomLine *bool  `yaml:"bottom_line" toml:"bottom_line"`
	// Fill is the alternating row fill.
	Fill     string           `yaml:"fill" toml:"fill"`
	BarText  string           `yaml:"bar_text" toml:"bar_text"`
	BarFill  string           `yaml:"bar_fill" toml:"bar_fill"`
	BodyText string           `yaml:"body_text" toml:"body_text"`
	BodyFill string           `yaml:"body_fill" toml:"body_fill"`
	Columns  []ColumnDocument `yaml:"columns" toml:"columns"`
	Rows     [][]any          `yaml:"rows" toml:"rows"`
}

// ColumnDocument describes one column. Padding left out keeps the column
// defaults.
type ColumnDocument struct {
	Header        string `yaml:"header" toml:"header"`
	Width         int    `yaml:"width" toml:"width"`
	MaxWidth      int    `yaml:"max_width" toml:"max_width"`
	LeftPadding   *int   `yaml:"left_padding" toml:"left_padding"`
	RightPadding  *int   `yaml:"right_padding" toml:"right_padding"`
	Justification string `yaml:"justification" toml:"justification"`
	TextColor     string `yaml:"text_color" toml:"text_color"`
	FillColor     string `yaml:"fill_color" toml:"fill_color"`
}

// ParseDocument decodes a table document.
func ParseDocument(data []byte, format Format) (*Document, error) {
	doc := &Document{}
	var err error
	switch format {
	case TOML:
		err = toml.Unmarshal(data, doc)
	case YAML:
		err = yaml.Unmarshal(data, doc)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown document format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrTableData, "cannot decode %s table document", format)
	}
	return doc, nil
}

// LoadDocument reads and decodes the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrNotFound, "cannot read table document").
			WithDetail("path", path)
	}
	return ParseDocument(data, FormatOf(path))
}

// Cells converts the rows to text. Missing values become empty cells.
func (doc *Document) Cells() [][]string {
	rows := make([][]string, len(doc.Rows))
	for i, row := range doc.Rows {
		rows[i] = make([]string, len(row))
		for j, v := range row {
			if v != nil {
				rows[i][j] = fmt.Sprint(v)
			}
		}
	}
	return rows
}

// Build returns the table the document describes, drawing on c.
func (doc *Document) Build(c *clio.Clio) (Drawer, error) {
	columns := make([]*Column, len(doc.Columns))
	for i, cd := range doc.Columns {
		col, err := cd.column()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTableData, "column %d", i+1)
		}
		columns[i] = col
	}

	switch strings.ToLower(doc.Kind) {
	case "", KindTable:
		return New(c, columns...), nil
	case KindAlternating:
		t := NewAlternating(c, columns...)
		if doc.Fill != "" {
			fill, err := color.Parse(doc.Fill)
			if err != nil {
				return nil, err
			}
			t.SetFill(fill)
		}
		return t, nil
	case KindBar:
		colors := make([]color.Color, 4)
		for i, name := range []string{doc.BarText, doc.BarFill, doc.BodyText, doc.BodyFill} {
			col, err := color.Parse(name)
			if err != nil {
				return nil, err
			}
			colors[i] = col
		}
		t := NewBar(c, columns...).
			SetTitle(doc.Title).
			SetColors(colors[0], colors[1], colors[2], colors[3])
		if doc.BottomLine != nil {
			t.SetBottomLine(*doc.BottomLine)
		}
		return t, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown table kind %q", doc.Kind).
			WithDetail("kinds", []string{KindTable, KindAlternating, KindBar})
	}
}

// Draw builds the table and draws the rows.
func (doc *Document) Draw(c *clio.Clio) error {
	t, err := doc.Build(c)
	if err != nil {
		return err
	}
	t.Draw(doc.Cells())
	return nil
}

func (cd ColumnDocument) column() (*Column, error) {
	text, err := color.Parse(cd.TextColor)
	if err != nil {
		return nil, err
	}
	fill, err := color.Parse(cd.FillColor)
	if err != nil {
		return nil, err
	}

	col := NewColumn(cd.Header, cd.Width).
		SetMaxWidth(cd.MaxWidth).
		SetJustification(markup.ParseJustification(cd.Justification)).
		SetColors(text, fill)
	left, right := col.LeftPadding(), col.RightPadding()
	if cd.LeftPadding != nil {
		left = *cd.LeftPadding
	}
	if cd.RightPadding != nil {
		right = *cd.RightPadding
	}
	return col.SetPadding(left, right), nil
}
