package tables_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/tables"
)

const yamlDocument = `
kind: bar
title: Addition
bar_text: white
bar_fill: black
body_text: white
body_fill: lightgray
columns:
  - header: x
  - header: "y"
  - header: answer
rows:
  - [3, 2, 5]
  - [4, 5, 9]
`

const tomlDocument = `
kind = "alternating"
fill = "ansibrightyellow"
rows = [["Orange", "tangy"], ["Apple"]]

[[columns]]
header = "Fruit"
width = 10
left_padding = 2
right_padding = 0

[[columns]]
header = "Taste"
justification = "right"
`

func TestParseYAMLDocument(t *testing.T) {
	doc, err := tables.ParseDocument([]byte(yamlDocument), tables.YAML)
	require.NoError(t, err)

	assert.Equal(t, tables.KindBar, doc.Kind)
	assert.Len(t, doc.Columns, 3)
	assert.Equal(t, [][]string{{"3", "2", "5"}, {"4", "5", "9"}}, doc.Cells())

	c, output := vt100()
	require.NoError(t, doc.Draw(c))
	assert.Equal(t, lines(
		`\e[1;97m    Addition     \e[0m`,
		`\e[97;40mx   y   answer   \e[0m`,
		`\e[97;47m3   2   5        \e[0m`,
		`\e[97;47m4   5   9        \e[0m`,
		`\e[4;30;47m                 \e[0m`,
	), output())
}

func TestParseTOMLDocument(t *testing.T) {
	doc, err := tables.ParseDocument([]byte(tomlDocument), tables.TOML)
	require.NoError(t, err)

	assert.Equal(t, tables.KindAlternating, doc.Kind)
	require.Len(t, doc.Columns, 2)
	assert.Equal(t, 2, *doc.Columns[0].LeftPadding)
	assert.Nil(t, doc.Columns[1].RightPadding)
	assert.Equal(t, [][]string{{"Orange", "tangy"}, {"Apple"}}, doc.Cells())

	table, err := doc.Build(nil)
	require.NoError(t, err)
	alternating, ok := table.(*tables.AlternatingTable)
	require.True(t, ok)
	assert.Equal(t, "ansibrightyellow", alternating.Fill().Name())

	columns := alternating.Columns()
	assert.Equal(t, 10, columns[0].Width())
	assert.Equal(t, 0, columns[0].RightPadding())
	assert.Equal(t, tables.DefaultRightPadding, columns[1].RightPadding())
	assert.Equal(t, markup.Right, columns[1].Justification())
}

func TestDocumentErrors(t *testing.T) {
	_, err := tables.ParseDocument([]byte("kind: [unclosed"), tables.YAML)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTableData))

	_, err = tables.ParseDocument([]byte("{}"), tables.Format("json"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	doc, err := tables.ParseDocument([]byte("kind: pie\n"), tables.YAML)
	require.NoError(t, err)
	_, err = doc.Build(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	doc, err = tables.ParseDocument([]byte("columns:\n  - text_color: notacolor\n"), tables.YAML)
	require.NoError(t, err)
	_, err = doc.Build(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTableData))

	doc, err = tables.ParseDocument([]byte("kind: bar\nbar_fill: \"#zz\"\n"), tables.YAML)
	require.NoError(t, err)
	_, err = doc.Build(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColor))
}

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "table.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDocument), 0o644))

	doc, err := tables.LoadDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Addition", doc.Title)

	_, err = tables.LoadDocument(filepath.Join(dir, "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	assert.Equal(t, tables.TOML, tables.FormatOf("x.TOML"))
	assert.Equal(t, tables.YAML, tables.FormatOf("x.yml"))
}
