package tables_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/markup"
	"github.com/arthur-debert/clio/pkg/tables"
	"github.com/arthur-debert/clio/pkg/terminal"
)

func vt100() (*clio.Clio, func() string) {
	out := &bytes.Buffer{}
	c := clio.New(clio.Options{Output: out, Mode: terminal.VT100})
	return c, func() string {
		text := strings.ReplaceAll(out.String(), "\x1b", `\e`)
		out.Reset()
		return text
	}
}

func lines(l ...string) string {
	return strings.Join(l, "\n") + "\n"
}

func TestSetColumn(t *testing.T) {
	c, _ := vt100()
	table := tables.New(c, tables.NewColumn("", 0), tables.NewColumn("", 0))
	wide := tables.NewColumn("", 35)

	assert.True(t, table.SetColumn(1, wide))
	assert.Len(t, table.Columns(), 2)
	assert.Equal(t, 35, table.Columns()[1].Width())
	assert.Equal(t, 0, table.Columns()[0].Width())

	wide.SetWidth(40)
	assert.Equal(t, 35, table.Columns()[1].Width(), "the column is copied")

	assert.False(t, table.SetColumn(2, wide))
	assert.False(t, table.SetColumn(-1, wide))
	assert.False(t, table.SetColumn(0, nil))
	assert.Len(t, table.Columns(), 2)
}

func TestTotalWidth(t *testing.T) {
	c, _ := vt100()
	table := tables.New(c,
		tables.NewColumn("", 0),
		tables.NewColumn("", 11),
		tables.NewColumn("", 12).SetMaxWidth(10),
	)
	assert.Equal(t, 23, table.TotalWidth())
}

func TestDrawShapes(t *testing.T) {
	c, output := vt100()

	tables.New(c).Draw([][]string{{"one"}})
	assert.Equal(t, "one   \n", output())

	tables.New(c,
		tables.NewColumn("First", 0),
		tables.NewColumn("Second", 5),
		tables.NewColumn("Third", 15),
	).Draw([][]string{{"one"}})
	assert.Equal(t, lines(
		`\e[1;4mFirst   Se   Third          \e[0m`,
		"one                         ",
	), output())

	table := tables.New(c, tables.NewColumn("Title", 10), tables.NewColumn("", 7))
	table.Draw(nil)
	assert.Equal(t, "", output())

	table.Draw([][]string{
		{"one", "two"},
		{"three"},
		{},
		{""},
		{"one", "two", "three"},
	})
	assert.Equal(t, lines(
		`\e[1;4mTitle                    \e[0m`,
		"one       two            ",
		"three                    ",
		"                         ",
		"                         ",
		"one       two    three   ",
	), output())
	assert.Len(t, table.Columns(), 3)

	tables.New(c, tables.NewColumn("", 8)).Draw([][]string{
		{"one"},
		{"one", "two"},
		{"one", "two", "three"},
		{"one", "two"},
	})
	assert.Equal(t, lines(
		"one                   ",
		"one     two           ",
		"one     two   three   ",
		"one     two           ",
	), output())
}

func TestDrawFixedWidths(t *testing.T) {
	c, output := vt100()
	data := [][]string{
		{"one", "two", "three"},
		{"another", "too big", "lots of space"},
		{"empty", "", "a"},
	}

	tables.New(c,
		tables.NewColumn("", 10).SetPadding(0, 0),
		tables.NewColumn("", 5).SetPadding(0, 0),
		tables.NewColumn("Big", 15).SetPadding(0, 0),
	).Draw(data)
	assert.Equal(t, lines(
		`\e[1;4m               Big            \e[0m`,
		"one       two  three          ",
		"another   too blots of space  ",
		"empty          a              ",
	), output())

	tables.New(c,
		tables.NewColumn("", 1).SetPadding(0, 0),
		tables.NewColumn("", 1).SetPadding(0, 0),
		tables.NewColumn("", 1).SetPadding(0, 0),
	).Draw([][]string{
		{"", "two", "three"},
		{"a", "too big", "lots of space"},
		{"bb", "", "a"},
	})
	assert.Equal(t, lines(" tt", "atl", "b a"), output())

	tables.New(c,
		tables.NewColumn("", 10).SetPadding(0, 2),
		tables.NewColumn("", 5).SetPadding(0, 1),
		tables.NewColumn("", 15).SetPadding(0, 10),
	).Draw(data)
	assert.Equal(t, lines(
		"one       two  three          ",
		"another   too  lots           ",
		"empty          a              ",
	), output())

	tables.New(c,
		tables.NewColumn("Start", 10).SetPadding(2, 2),
		tables.NewColumn("Middle", 5).SetPadding(0, 1),
		tables.NewColumn("", 15).SetPadding(0, 10),
	).Draw(data)
	assert.Equal(t, lines(
		`\e[1;4m  Start   Midd                \e[0m`,
		"  one     two  three          ",
		"  anothe  too  lots           ",
		"  empty        a              ",
	), output())
}

func TestDrawJustification(t *testing.T) {
	c, output := vt100()
	tables.New(c,
		tables.NewColumn("Fruit", 10).SetPadding(2, 0),
		tables.NewColumn("Color", 10).SetPadding(0, 0).SetJustification(markup.Center),
		tables.NewColumn("Taste", 10).SetJustification(markup.Right),
	).Draw([][]string{
		{"Orange", "orange", "tangy"},
		{"Apple", "red", "sweet"},
	})
	assert.Equal(t, lines(
		`\e[1;4m  Fruit     Color     Taste   \e[0m`,
		"  Orange    orange    tangy   ",
		"  Apple      red      sweet   ",
	), output())
}

func TestDrawCalculatedWidths(t *testing.T) {
	c, output := vt100()
	table := tables.New(c,
		tables.NewColumn("Name", 0),
		tables.NewColumn("Address", 0),
		tables.NewColumn("Phone", 0),
	)

	table.Draw([][]string{
		{"Daffy Duck", "123 Anywhere", "555-1212"},
		{"Bugs", "Rabbit Hole near the stream", "555-2342"},
		{"", "", ""},
	})
	header := `\e[1;4mName         Address                       Phone      \e[0m`
	assert.Equal(t, lines(
		header,
		"Daffy Duck   123 Anywhere                  555-1212   ",
		"Bugs         Rabbit Hole near the stream   555-2342   ",
		strings.Repeat(" ", 54),
	), output())

	table.Draw([][]string{
		{"Daffy **Duck**", "123 Anywhere", "555-1212"},
		{"Bugs", "**Rabbit** Hole near the stream", "555-2342"},
		{"", "", ""},
	})
	assert.Equal(t, lines(
		header,
		`Daffy \e[1mDuck   \e[0m123 Anywhere                  555-1212   `,
		`Bugs         \e[1mRabbit\e[0m Hole near the stream   555-2342   `,
		strings.Repeat(" ", 54),
	), output())
}

func TestDrawMaxWidth(t *testing.T) {
	c, output := vt100()

	tables.New(c, tables.NewColumn("12", 0).SetMaxWidth(10)).Draw([][]string{{"123456789012"}})
	assert.Equal(t, lines(`\e[1;4m12        \e[0m`, "1234567   "), output())

	tables.New(c, tables.NewColumn("", 0).SetMaxWidth(10).SetPadding(0, 0)).
		Draw([][]string{{"12"}, {"123456789012"}})
	assert.Equal(t, lines("12        ", "1234567890"), output())
}

func TestDrawColumnColors(t *testing.T) {
	c, output := vt100()
	table := tables.New(c,
		tables.NewColumn("Item", 0).SetPadding(2, tables.DefaultRightPadding),
		tables.NewColumn("Cost", 10).
			SetPadding(0, 0).
			SetJustification(markup.Right).
			SetColors(color.Named("white"), color.Named("black")),
	)

	table.Draw([][]string{{"Apples", "$12.45"}, {"Oranges", "$1.54"}})
	assert.Equal(t, lines(
		`\e[1;4m  Item      \e[97;40m      Cost\e[0m`,
		`  Apples    \e[97;40m    $12.45\e[0m`,
		`  Oranges   \e[97;40m     $1.54\e[0m`,
	), output())

	table.Draw([][]string{{"**Apples**", "**$12.45**"}, {"**Oranges**", "**$1.54**"}})
	assert.Equal(t, lines(
		`\e[1;4m  Item      \e[97;40m      Cost\e[0m`,
		`\e[1m  Apples    \e[0m\e[97;40m\e[1m    $12.45\e[0;97;40m\e[0m`,
		`\e[1m  Oranges   \e[0m\e[97;40m\e[1m     $1.54\e[0;97;40m\e[0m`,
	), output())
}

func TestAlternatingTable(t *testing.T) {
	c, output := vt100()
	columns := []*tables.Column{
		tables.NewColumn("x", 0),
		tables.NewColumn("y", 0),
		tables.NewColumn("answer", 0),
	}
	data := [][]string{{"3", "2", "5"}, {"4", "5", "9"}, {"5", "-1", "4"}}

	table := tables.NewAlternating(c, columns...)
	assert.Equal(t, "oldlace", table.Fill().Name())
	table.Draw(data)
	assert.Equal(t, lines(
		`\e[1mx   y    answer   \e[0m`,
		`\e[107m3   2    5        \e[0m`,
		"4   5    9        ",
		`\e[107m5   -1   4        \e[0m`,
	), output())

	table.SetFill(color.Named("ansibrightyellow")).Draw(data)
	assert.Equal(t, lines(
		`\e[1mx   y    answer   \e[0m`,
		`\e[103m3   2    5        \e[0m`,
		"4   5    9        ",
		`\e[103m5   -1   4        \e[0m`,
	), output())
}

func TestBarTable(t *testing.T) {
	c, output := vt100()
	newBar := func() *tables.BarTable {
		return tables.NewBar(c,
			tables.NewColumn("x", 0),
			tables.NewColumn("y", 0),
			tables.NewColumn("answer", 0),
		).SetColors(color.Named("white"), color.Named("black"), color.Named("white"), color.Named("lightgray"))
	}
	data := [][]string{{"3", "2", "5"}, {"4", "5", "9"}}
	body := []string{
		`\e[97;40mx   y   answer   \e[0m`,
		`\e[97;47m3   2   5        \e[0m`,
		`\e[97;47m4   5   9        \e[0m`,
	}
	bottom := `\e[4;30;47m                 \e[0m`

	newBar().Draw(data)
	assert.Equal(t, lines(append(body, bottom)...), output())

	newBar().SetTitle("Addition").Draw(data)
	assert.Equal(t, lines(append(append([]string{`\e[1;97m    Addition     \e[0m`}, body...), bottom)...), output())

	newBar().SetTitle("From Constructor").SetBottomLine(false).Draw(data)
	assert.Equal(t, lines(append([]string{`\e[1;97mFrom Constructor \e[0m`}, body...)...), output())

	newBar().SetTitle("Really Big Title that Goes Too Far").SetBottomLine(false).Draw(data)
	assert.Equal(t, lines(append([]string{`\e[1;97mReally Big Title \e[0m`}, body...)...), output())
}
