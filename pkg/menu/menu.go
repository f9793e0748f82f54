// Package menu shows a one line selection menu. Each choice is shown with
// the shortest prefix that tells it apart highlighted, and any prefix of a
// choice, in any case, selects it.
package menu

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/clio/pkg/clio"
	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/logging"
	"github.com/arthur-debert/clio/pkg/style"
)

const (
	DefaultTitle = "Menu"
	// MaxTries is how many unmatched answers Select takes before giving up.
	MaxTries = 10
)

// Menu holds the menu text and styles. An empty Title shows no title.
type Menu struct {
	clio           *clio.Clio
	Title          string
	TitleStyle     *style.Style
	HighlightStyle *style.Style
	ChoiceStyle    *style.Style
	logger         zerolog.Logger
}

// New returns a menu titled "Menu": the title in white on black, the
// prefixes in black on light gray and the rest of each choice in dark gray
// on white.
func New(c *clio.Clio) *Menu {
	return &Menu{
		clio:           c,
		Title:          DefaultTitle,
		TitleStyle:     style.New().SetColors(color.Named("white"), color.Named("black")),
		HighlightStyle: style.New().SetColors(color.Named("black"), color.Named("lightgray")),
		ChoiceStyle:    style.New().SetColors(color.Named("gray18"), color.Named("white")),
		logger:         logging.GetLogger("menu"),
	}
}

// Select shows choices and reads answers until one is the prefix of a
// choice, which is returned. A non empty def is listed last in brackets and
// is also what an empty answer selects; it is removed from choices if it
// appears there.
//
// Errors carry ErrNoChoice when there is nothing to show, when no prefix
// length tells the choices apart or after MaxTries unmatched answers, and
// ErrPrompt when input runs out.
func (m *Menu) Select(choices []string, def string) (string, error) {
	if len(choices) == 0 {
		return "", errors.New(errors.ErrNoChoice, "menu has no choices")
	}

	shown := make([]string, 0, len(choices))
	for _, choice := range choices {
		if def == "" || choice != def {
			shown = append(shown, choice)
		}
	}

	prefix, ok := UniquePrefixLength(shown, def)
	if !ok {
		return "", errors.New(errors.ErrNoChoice, "menu choices cannot be told apart").
			WithDetail("choices", choices)
	}

	m.draw(shown, def, prefix)

	valid := shown
	if def != "" {
		valid = append(valid, def)
	}

	for try := 1; try <= MaxTries; try++ {
		answer, err := m.clio.Prompt("", "")
		if err != nil {
			return "", err
		}
		if answer == "" && def != "" {
			return def, nil
		}
		if answer != "" {
			if match, found := startsWith(answer, valid); found {
				m.logger.Debug().Str("answer", answer).Str("choice", match).Msg("menu choice selected")
				return match, nil
			}
		}
		m.clio.Line("Try again.")
	}
	return "", errors.Newf(errors.ErrNoChoice, "no choice made after %d tries", MaxTries)
}

// draw shows the whole menu line as spans so the style changes straight
// from one segment to the next.
func (m *Menu) draw(choices []string, def string, prefix int) {
	var spans []clio.Span
	if m.Title != "" {
		spans = append(spans, clio.Span{Text: m.Title + "  ", Style: m.TitleStyle})
	}
	for _, choice := range choices {
		runes := []rune(choice)
		spans = append(spans,
			clio.Span{Text: "  " + string(runes[:prefix]), Style: m.HighlightStyle},
			clio.Span{Text: string(runes[prefix:]), Style: m.ChoiceStyle},
			clio.Span{Text: " "},
		)
	}
	m.clio.StyleSpans(spans...)
	if def != "" {
		m.clio.Display("[" + def + "]")
	}
}

// UniquePrefixLength is the smallest prefix length that tells apart all
// choices and def, ignoring case. It reports false when there is nothing
// to tell apart or when the shortest entry runs out first.
func UniquePrefixLength(choices []string, def string) (int, bool) {
	entries := make([][]rune, 0, len(choices)+1)
	for _, choice := range choices {
		entries = append(entries, []rune(strings.ToLower(choice)))
	}
	if def != "" {
		entries = append(entries, []rune(strings.ToLower(def)))
	}
	if len(entries) == 0 {
		return 0, false
	}

	narrowest := len(entries[0])
	for _, e := range entries[1:] {
		narrowest = min(narrowest, len(e))
	}

	for n := 1; n <= narrowest; n++ {
		seen := make(map[string]bool, len(entries))
		for _, e := range entries {
			seen[string(e[:n])] = true
		}
		if len(seen) == len(entries) {
			return n, true
		}
	}
	return 0, false
}

// startsWith returns the first of valid that answer is a prefix of,
// ignoring case.
func startsWith(answer string, valid []string) (string, bool) {
	answer = strings.ToLower(answer)
	for _, v := range valid {
		if strings.HasPrefix(strings.ToLower(v), answer) {
			return v, true
		}
	}
	return "", false
}
