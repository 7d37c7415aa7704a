package tui

import (
	"fmt"
	"time"

	"dtpick/internal/picker"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type timeField int

const (
	fieldHour timeField = iota
	fieldMinute
)

// TimePicker edits the hour and minute of a picker.TimeState.
type TimePicker struct {
	id      int
	state   picker.TimeState
	opts    Options
	keys    timeKeyMap
	entry   entryKeyMap
	help    help.Model
	field   timeField
	hour    numericEntry
	minute  numericEntry
	focused bool
}

func NewTimePicker(v time.Time, opts Options) TimePicker {
	id := nextWidgetID()
	delay := opts.debounceDelay()
	return TimePicker{
		id:     id,
		state:  picker.NewTimeState(v, opts.Bounds, opts.HourStep, opts.MinuteStep),
		opts:   opts,
		keys:   defaultTimeKeyMap(),
		entry:  defaultEntryKeyMap(),
		help:   help.New(),
		hour:   newNumericEntry(id, entryHour, 2, delay, opts.Sink),
		minute: newNumericEntry(id, entryMinute, 2, delay, opts.Sink),
	}
}

func (m TimePicker) ID() int                 { return m.id }
func (m TimePicker) Value() time.Time        { return m.state.Value() }
func (m TimePicker) State() picker.TimeState { return m.state }
func (m TimePicker) Focused() bool           { return m.focused }
func (m TimePicker) Editing() bool           { return m.hour.active() || m.minute.active() }
func (m TimePicker) Closed() bool            { return m.hour.closed() && m.minute.closed() }

func (m *TimePicker) Focus() { m.focused = true }

func (m *TimePicker) Blur() {
	m.focused = false
	m.hour.cancel()
	m.minute.cancel()
}

// SetValue moves the picker to v without emitting a change.
func (m *TimePicker) SetValue(v time.Time) { m.state.SetValue(v) }

// Close stops both entry debouncers.
func (m *TimePicker) Close() {
	m.hour.close()
	m.minute.close()
}

func (m TimePicker) Init() tea.Cmd { return nil }

func (m TimePicker) Update(msg tea.Msg) (TimePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case entryCommittedMsg:
		if msg.owner != m.id {
			return m, nil
		}
		n, ok := parseEntry(msg.text)
		if !ok {
			m.opts.logger().Debug("ignored time entry", "field", msg.field.String(), "text", msg.text)
			return m, nil
		}
		switch msg.field {
		case entryHour:
			return m, m.changed("change-hour", m.state.ChangeHour(n))
		case entryMinute:
			return m, m.changed("change-minute", m.state.ChangeMinute(n))
		}
		return m, nil

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if e := m.editing(); e != nil {
			switch {
			case key.Matches(msg, m.entry.Commit):
				return m, e.commit()
			case key.Matches(msg, m.entry.Cancel):
				e.cancel()
				return m, nil
			}
			return m, e.update(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *TimePicker) editing() *numericEntry {
	switch {
	case m.hour.active():
		return &m.hour
	case m.minute.active():
		return &m.minute
	}
	return nil
}

func (m TimePicker) handleKey(msg tea.KeyMsg) (TimePicker, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevField):
		m.field = fieldHour
	case key.Matches(msg, m.keys.NextField):
		m.field = fieldMinute
	case key.Matches(msg, m.keys.Increment):
		if m.field == fieldHour {
			return m, m.changed("inc-hour", m.state.IncrementHour())
		}
		return m, m.changed("inc-minute", m.state.IncrementMinute())
	case key.Matches(msg, m.keys.Decrement):
		if m.field == fieldHour {
			return m, m.changed("dec-hour", m.state.DecrementHour())
		}
		return m, m.changed("dec-minute", m.state.DecrementMinute())
	case key.Matches(msg, m.keys.EditHour):
		m.field = fieldHour
		return m, m.hour.begin(m.state.CurrentHour())
	case key.Matches(msg, m.keys.EditMinute):
		m.field = fieldMinute
		return m, m.minute.begin(m.state.CurrentMinute())
	}
	return m, nil
}

func (m TimePicker) changed(op string, accepted bool) tea.Cmd {
	logger := m.opts.logger()
	if !accepted {
		logger.Debug("time op rejected", "op", op, "value", m.state.Value())
		return nil
	}
	v := m.state.Value()
	logger.Debug("time op accepted", "op", op, "value", v)
	id := m.id
	return func() tea.Msg { return TimeChangedMsg{ID: id, Value: v} }
}

func (m TimePicker) View() string {
	hh := renderPill(m.focused && m.field == fieldHour, fmt.Sprintf("%02d", m.state.CurrentHour()))
	if m.hour.active() {
		hh = renderPill(true, m.hour.view())
	}
	mm := renderPill(m.focused && m.field == fieldMinute, fmt.Sprintf("%02d", m.state.CurrentMinute()))
	if m.minute.active() {
		mm = renderPill(true, m.minute.view())
	}

	lines := []string{
		styleHeading().Render("Time"),
		"",
		lipgloss.JoinHorizontal(lipgloss.Left, hh, ":", mm),
		"",
		styleMuted().Render(fmt.Sprintf("%s %dh / %dm", glyphStep(), m.state.HourStep(), m.state.MinuteStep())),
	}
	if m.opts.Debug {
		lines = append(lines, styleMuted().Render(m.state.Value().Format(time.RFC3339)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m TimePicker) HelpView() string {
	if m.Editing() {
		return m.help.View(m.entry)
	}
	return m.help.View(m.keys)
}

func (m *TimePicker) SetShowAllHelp(all bool) { m.help.ShowAll = all }
