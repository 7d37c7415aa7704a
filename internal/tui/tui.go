package tui

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Result is the outcome of an interactive pick.
type Result struct {
	Value     time.Time
	Confirmed bool
}

// Pick runs a full-screen MomentPicker until the user confirms or quits.
func Pick(ctx context.Context, initial time.Time, opts Options) (Result, error) {
	applyThemePreference()
	applyColorProfilePreference()
	applyGlyphPreference()

	if opts.Sink == nil {
		opts.Sink = NewSink()
	}
	if opts.Logger == nil {
		opts.Logger = ctxlog.Logger(ctx)
	}

	m := newPickModel(initial, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	opts.Sink.Bind(p.Send)
	defer opts.Sink.Bind(nil)

	final, err := p.Run()
	if fm, ok := final.(pickModel); ok {
		fm.picker.Close()
		m = fm
	}
	if err != nil {
		return Result{Value: m.value}, fmt.Errorf("run picker: %w", err)
	}
	return Result{Value: m.value, Confirmed: m.confirmed}, nil
}

type pickKeyMap struct {
	Abort key.Binding
	Quit  key.Binding
}

// pickModel hosts a MomentPicker as a standalone program.
type pickModel struct {
	picker    MomentPicker
	keys      pickKeyMap
	value     time.Time
	confirmed bool
	done      bool
}

func newPickModel(initial time.Time, opts Options) pickModel {
	mp := NewMomentPicker(initial, opts)
	mp.Toggle()
	return pickModel{
		picker: mp,
		keys: pickKeyMap{
			Abort: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
			Quit:  key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		},
		value: mp.Value(),
	}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfirmedMsg:
		m.value = msg.Value
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	case ValueChangedMsg:
		m.value = msg.Value
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Abort) || (!m.picker.Open() && key.Matches(msg, m.keys.Quit)) {
			m.picker.Close()
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	if m.done {
		return ""
	}
	if m.picker.Open() {
		return "\n" + m.picker.View() + "\n"
	}
	hint := styleMuted().Render(m.picker.help.ShortHelpView([]key.Binding{m.picker.keys.Confirm, m.keys.Quit}))
	return "\n" + lipgloss.JoinVertical(lipgloss.Left, m.picker.View(), "", hint) + "\n"
}
