package menu_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/menu"
	"github.com/arthur-debert/clio/pkg/style"
	"github.com/arthur-debert/clio/pkg/terminal"
)

// newMenu returns a VT100 menu answering with answers, one per line.
func newMenu(answers ...string) (*menu.Menu, func() string) {
	out := &bytes.Buffer{}
	input := strings.NewReader(strings.Join(answers, "\n") + "\n")
	c := clio.New(clio.Options{Output: out, Input: input, Mode: terminal.VT100})
	return menu.New(c), func() string {
		text := strings.ReplaceAll(out.String(), "\x1b", `\e`)
		out.Reset()
		return text
	}
}

const (
	oneTwo      = `\e[97;40mMenu  \e[30;47m  o\e[107mne\e[0m \e[30;47m  t\e[107mwo\e[0m `
	oneTwoThree = `\e[97;40mMenu  \e[30;47m  on\e[107me\e[0m \e[30;47m  tw\e[107mo\e[0m \e[30;47m  th\e[107mree\e[0m `
	oneOnly     = `\e[97;40mMenu  \e[30;47m  o\e[107mne\e[0m `
)

func TestCustomStyles(t *testing.T) {
	m, output := newMenu("one")
	m.TitleStyle = style.New().SetColors(color.Named("cyan"), color.Named("yellow"))
	m.HighlightStyle = style.New().SetColors(color.Named("red"), color.Named("green"))
	m.ChoiceStyle = style.New().SetColors(color.Named("blue"), color.Named("yellow"))

	answer, err := m.Select([]string{"one", "two"}, "three")
	require.NoError(t, err)
	assert.Equal(t, "one", answer)
	assert.Equal(t, `\e[96;103mMenu  \e[91;42m  on\e[94;103me\e[0m \e[91;42m  tw\e[94;103mo\e[0m [three]`, output())
}

func TestUniquePrefixLength(t *testing.T) {
	tests := []struct {
		name    string
		choices []string
		def     string
		want    int
		ok      bool
	}{
		{"nothing", nil, "", 0, false},
		{"one choice", []string{"one"}, "", 1, true},
		{"no collision", []string{"one", "two"}, "", 1, true},
		{"collision ignores case", []string{"one", "Out"}, "", 2, true},
		{"same choices", []string{"one", "one"}, "", 0, false},
		{"prefix of another", []string{"one", "o"}, "", 0, false},
		{"three characters", []string{"apple", "banana", "apricot"}, "", 3, true},
		{"default only", nil, "default", 1, true},
		{"default no collision", []string{"one", "two"}, "default", 1, true},
		{"default collides", []string{"One"}, "out", 2, true},
		{"default repeats", []string{"one"}, "one", 0, false},
		{"default too short", []string{"one", "ones"}, "o", 0, false},
		{"default needs three", []string{"apple", "banana"}, "apricot", 3, true},
		{"runes", []string{"été", "éte"}, "", 3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := menu.UniquePrefixLength(tt.choices, tt.def)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectAnswers(t *testing.T) {
	m, _ := newMenu()
	_, err := m.Select(nil, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoChoice))
	_, err = m.Select([]string{"one", "one"}, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoChoice))

	tests := []struct {
		name    string
		answers []string
		choices []string
		def     string
		want    string
		output  string
	}{
		{"full answer", []string{"one"}, []string{"one", "two"}, "", "one", oneTwo},
		{"empty takes default", []string{""}, []string{"one", "two"}, "four", "four", oneTwo + "[four]"},
		{"one character", []string{"t"}, []string{"one", "two"}, "", "two", oneTwo},
		{"any case", []string{"TW"}, []string{"one", "two"}, "", "two", oneTwo},
		{"junk then prefix", []string{"x", "on"}, []string{"one", "two"}, "", "one", oneTwo + "Try again.\n"},
		{"empty without default", []string{"", "o"}, []string{"one", "two"}, "", "one", oneTwo + "Try again.\n"},
		{"two characters", []string{"th"}, []string{"one", "two", "three"}, "", "three", oneTwoThree},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, output := newMenu(tt.answers...)
			answer, err := m.Select(tt.choices, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, answer)
			assert.Equal(t, tt.output, output())
		})
	}
}

func TestSelectGivesUp(t *testing.T) {
	junk := make([]string, menu.MaxTries)
	for i := range junk {
		junk[i] = "junk"
	}
	m, output := newMenu(junk...)

	_, err := m.Select([]string{"one", "two", "three"}, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoChoice))
	assert.Equal(t, oneTwoThree+strings.Repeat("Try again.\n", menu.MaxTries), output())
}

func TestSelectRunsOutOfInput(t *testing.T) {
	out := &bytes.Buffer{}
	c := clio.New(clio.Options{Output: out, Input: strings.NewReader(""), Mode: terminal.VT100})
	_, err := menu.New(c).Select([]string{"one"}, "")
	assert.True(t, errors.IsErrorCode(err, errors.ErrPrompt))
}

func TestSelectDefaults(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
		choices []string
		def     string
		want    string
		output  string
	}{
		{"choice", []string{"one"}, []string{"one"}, "two", "one", oneOnly + "[two]"},
		{"default prefix", []string{"t"}, []string{"one"}, "two", "two", oneOnly + "[two]"},
		{"blank", []string{""}, []string{"one"}, "two", "two", oneOnly + "[two]"},
		{"junk", []string{"x", "on"}, []string{"one"}, "two", "one", oneOnly + "[two]Try again.\n"},
		{
			"default needs two characters", []string{"th"}, []string{"one", "two"}, "three", "three",
			`\e[97;40mMenu  \e[30;47m  on\e[107me\e[0m \e[30;47m  tw\e[107mo\e[0m [three]`,
		},
		{
			"default among choices", []string{""}, []string{"one", "two"}, "one", "one",
			`\e[97;40mMenu  \e[30;47m  t\e[107mwo\e[0m [one]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, output := newMenu(tt.answers...)
			answer, err := m.Select(tt.choices, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, answer)
			assert.Equal(t, tt.output, output())
		})
	}
}

func TestTitles(t *testing.T) {
	m, output := newMenu("one", "one")

	m.Title = ""
	answer, err := m.Select([]string{"one"}, "two")
	require.NoError(t, err)
	assert.Equal(t, "one", answer)
	assert.Equal(t, `\e[30;47m  o\e[107mne\e[0m [two]`, output())

	m.Title = "Please select:"
	_, err = m.Select([]string{"one"}, "two")
	require.NoError(t, err)
	assert.Equal(t, `\e[97;40mPlease select:  \e[30;47m  o\e[107mne\e[0m [two]`, output())
}
