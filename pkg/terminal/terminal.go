// Package terminal tracks the rendering state of an output stream and emits
// the escape sequences needed to move it from one state to another.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/clio/pkg/color"
	"github.com/arthur-debert/clio/pkg/errors"
	"github.com/arthur-debert/clio/pkg/logging"
)

// Terminal buffers a desired state and only writes escape sequences when
// text is about to be shown or a flush is requested.
type Terminal struct {
	out     io.Writer
	in      *bufio.Reader
	gen     *Generator
	current State
	desired State
	err     error
	logger  zerolog.Logger
}

// New returns a terminal writing to out. in may be nil when no prompt is
// ever issued.
func New(out io.Writer, in io.Reader, mode Mode) *Terminal {
	t := &Terminal{
		out:    out,
		gen:    NewGenerator(mode),
		logger: logging.GetLogger("terminal"),
	}
	if in != nil {
		t.in = bufio.NewReader(in)
	}
	return t
}

// Mode returns the color encoding mode.
func (t *Terminal) Mode() Mode {
	return t.gen.Mode()
}

// SetState replaces the desired state. Nothing is written until Flush.
func (t *Terminal) SetState(s State) {
	t.desired = s
}

// State returns the desired state.
func (t *Terminal) State() State {
	return t.desired
}

// Current returns the last state written to the output.
func (t *Terminal) Current() State {
	return t.current
}

func (t *Terminal) SetBold(on bool) {
	t.desired.Bold = on
}

func (t *Terminal) SetUnderline(on bool) {
	t.desired.Underline = on
}

func (t *Terminal) SetTextColor(c color.Color) {
	t.desired.Text = c
}

func (t *Terminal) SetFillColor(c color.Color) {
	t.desired.Fill = c
}

// Flush writes the sequence moving the output to the desired state.
func (t *Terminal) Flush() {
	seq := t.gen.Transition(t.current, t.desired)
	if seq == "" {
		t.current = t.desired
		return
	}
	t.write(seq)
	t.current = t.desired
}

// TransitionTo sets the desired state and flushes it.
func (t *Terminal) TransitionTo(s State) {
	t.desired = s
	t.Flush()
}

// Display flushes pending state and writes text.
func (t *Terminal) Display(text string) {
	t.Flush()
	t.write(text)
}

// Output writes raw text without touching the state.
func (t *Terminal) Output(raw string) {
	t.write(raw)
}

// NewLine writes count line feeds. Styling is left as is.
func (t *Terminal) NewLine(count int) {
	if count <= 0 {
		return
	}
	t.write(strings.Repeat("\n", count))
}

// ClearScreen erases the display and homes the cursor.
func (t *Terminal) ClearScreen() {
	if t.gen.Mode() == Plain {
		return
	}
	t.write(termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2) +
		termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1))
}

// Clear resets the desired state. When immediate is set the reset sequence
// is written right away, whatever the terminal believes its state to be.
func (t *Terminal) Clear(immediate bool) {
	t.desired = State{}
	if immediate {
		t.write(t.gen.Reset())
		t.current = State{}
	}
}

// PromptForLine flushes the state, shows text and reads one line of input
// without its line terminator.
func (t *Terminal) PromptForLine(text string) (string, error) {
	if t.in == nil {
		return "", errors.New(errors.ErrPrompt, "terminal has no input")
	}
	t.Display(text)
	if t.err != nil {
		return "", errors.Wrap(t.err, errors.ErrOutput, "cannot show prompt")
	}

	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, errors.ErrPrompt, "cannot read answer")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Err returns the first write error. Writes after a failure are dropped.
func (t *Terminal) Err() error {
	return t.err
}

func (t *Terminal) write(s string) {
	if s == "" || t.err != nil {
		return
	}
	if _, err := io.WriteString(t.out, s); err != nil {
		t.err = err
		t.logger.Debug().Err(err).Msg("terminal write failed")
	}
}
