package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dtpick/internal/debounce"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// numericEntry is a text field for typing a year, hour or minute.
//
// Every edit restarts the debouncer; when it fires the typed text is posted to
// the sink as an entryCommittedMsg. Enter commits at once through a tea.Cmd
// because sending into the program from inside Update would block the loop.
type numericEntry struct {
	owner  int
	field  entryField
	digits int
	input  textinput.Model
	quiet  *debounce.Debouncer
	sink   *Sink
}

func newNumericEntry(owner int, field entryField, digits int, delay time.Duration, sink *Sink) numericEntry {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = digits
	in.Width = digits + 1
	in.Placeholder = strings.Repeat("#", digits)
	st := lipgloss.NewStyle().Foreground(colorSurfaceFg).Background(colorInputBg)
	in.TextStyle = st
	in.PromptStyle = st
	in.PlaceholderStyle = styleMuted().Background(colorInputBg)
	in.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return fmt.Errorf("%s: digits only", field)
			}
		}
		return nil
	}

	return numericEntry{
		owner:  owner,
		field:  field,
		digits: digits,
		input:  in,
		quiet:  debounce.New(delay),
		sink:   sink,
	}
}

func (e *numericEntry) active() bool { return e.input.Focused() }

// begin focuses the field, seeded with the current value.
func (e *numericEntry) begin(current int) tea.Cmd {
	e.quiet.Cancel()
	e.input.SetValue(fmt.Sprintf("%0*d", e.digits, current))
	e.input.CursorEnd()
	return e.input.Focus()
}

// update feeds a key to the input and restarts the quiet period on edits.
func (e *numericEntry) update(msg tea.Msg) tea.Cmd {
	before := e.input.Value()
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	if after := e.input.Value(); after != before {
		e.schedule(after)
	}
	return cmd
}

func (e *numericEntry) schedule(text string) {
	msg := entryCommittedMsg{owner: e.owner, field: e.field, text: text}
	sink := e.sink
	e.quiet.Trigger(func() { sink.Send(msg) })
}

// commit ends editing and applies the typed text without waiting.
func (e *numericEntry) commit() tea.Cmd {
	e.quiet.Cancel()
	e.input.Blur()
	msg := entryCommittedMsg{owner: e.owner, field: e.field, text: e.input.Value()}
	return func() tea.Msg { return msg }
}

// cancel ends editing and drops any pending commit.
func (e *numericEntry) cancel() {
	e.quiet.Cancel()
	e.input.Blur()
}

func (e *numericEntry) pending() bool { return e.quiet.Pending() }

func (e *numericEntry) close() {
	e.quiet.Stop()
	e.input.Blur()
}

func (e *numericEntry) closed() bool { return e.quiet.Stopped() }

func (e numericEntry) view() string { return e.input.View() }

// parseEntry turns committed text into a number. Empty or non-numeric text is
// reported as not ok and ignored by the widgets.
func parseEntry(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}
