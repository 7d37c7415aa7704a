package tui

import (
	"time"

	"dtpick/internal/picker"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type pickerFocus int

const (
	focusDate pickerFocus = iota
	focusTime
)

// MomentPicker combines a DatePicker and a TimePicker behind an open/closed
// toggle and keeps a single date-time value in sync between them.
//
// The children only exist while the picker is open; closing stops their
// debouncers and opening builds fresh ones from the current value.
type MomentPicker struct {
	value time.Time
	open  bool
	focus pickerFocus
	date  DatePicker
	clock TimePicker
	opts  Options
	keys  momentKeyMap
	help  help.Model
	width int
}

func NewMomentPicker(initial time.Time, opts Options) MomentPicker {
	return MomentPicker{
		value: opts.Bounds.Clamp(picker.Normalize(initial)),
		opts:  opts,
		keys:  defaultMomentKeyMap(),
		help:  help.New(),
	}
}

func (m MomentPicker) Value() time.Time { return m.value }
func (m MomentPicker) Open() bool       { return m.open }

// Date and Time expose the open children; both are zero while closed.
func (m MomentPicker) Date() DatePicker { return m.date }
func (m MomentPicker) Time() TimePicker { return m.clock }

func (m MomentPicker) FocusedOnTime() bool { return m.open && m.focus == focusTime }

// Toggle opens or closes the picker.
func (m *MomentPicker) Toggle() {
	if m.open {
		m.date.Close()
		m.clock.Close()
		m.date = DatePicker{}
		m.clock = TimePicker{}
		m.open = false
		m.opts.logger().Debug("picker closed", "value", m.value)
		return
	}
	m.date = NewDatePicker(m.value, m.opts)
	m.clock = NewTimePicker(m.value, m.opts)
	m.focus = focusDate
	m.applyFocus()
	m.open = true
	m.opts.logger().Debug("picker opened", "value", m.value)
}

// UpdateDateTime replaces the held value, pushing it into open children.
func (m *MomentPicker) UpdateDateTime(v time.Time) {
	m.value = m.opts.Bounds.Clamp(picker.Normalize(v))
	if m.open {
		m.date.SetValue(m.value)
		m.clock.SetValue(m.value)
	}
}

// Close tears down the children if open. The picker may be reopened.
func (m *MomentPicker) Close() {
	if m.open {
		m.Toggle()
	}
}

func (m *MomentPicker) applyFocus() {
	if m.focus == focusDate {
		m.date.Focus()
		m.clock.Blur()
		return
	}
	m.clock.Focus()
	m.date.Blur()
}

func (m MomentPicker) editing() bool {
	return m.open && (m.date.Editing() || m.clock.Editing())
}

func (m MomentPicker) Init() tea.Cmd { return nil }

func (m MomentPicker) Update(msg tea.Msg) (MomentPicker, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case DateChangedMsg:
		if !m.open || msg.ID != m.date.ID() {
			return m, nil
		}
		m.value = msg.Value
		m.clock.SetValue(msg.Value)
		return m, m.emit()

	case TimeChangedMsg:
		if !m.open || msg.ID != m.clock.ID() {
			return m, nil
		}
		m.value = msg.Value
		// A step past midnight moves the date as well.
		m.date.SetValue(msg.Value)
		return m, m.emit()

	case entryCommittedMsg:
		if !m.open {
			return m, nil
		}
		var dc, tc tea.Cmd
		m.date, dc = m.date.Update(msg)
		m.clock, tc = m.clock.Update(msg)
		return m, tea.Batch(dc, tc)

	case tea.KeyMsg:
		if !m.open {
			switch {
			case key.Matches(msg, m.keys.Open):
				m.Toggle()
			case key.Matches(msg, m.keys.Confirm):
				v := m.value
				return m, func() tea.Msg { return ConfirmedMsg{Value: v} }
			}
			return m, nil
		}
		if !m.editing() {
			switch {
			case key.Matches(msg, m.keys.Close):
				m.Toggle()
				return m, nil
			case key.Matches(msg, m.keys.Confirm):
				v := m.value
				m.Toggle()
				return m, func() tea.Msg { return ConfirmedMsg{Value: v} }
			case key.Matches(msg, m.keys.Focus):
				if m.focus == focusDate {
					m.focus = focusTime
				} else {
					m.focus = focusDate
				}
				m.applyFocus()
				return m, nil
			case key.Matches(msg, m.keys.Help):
				m.help.ShowAll = !m.help.ShowAll
				m.date.SetShowAllHelp(m.help.ShowAll)
				m.clock.SetShowAllHelp(m.help.ShowAll)
				return m, nil
			}
		}
		var cmd tea.Cmd
		if m.focus == focusDate {
			m.date, cmd = m.date.Update(msg)
		} else {
			m.clock, cmd = m.clock.Update(msg)
		}
		return m, cmd
	}
	return m, nil
}

func (m MomentPicker) emit() tea.Cmd {
	v := m.value
	return func() tea.Msg { return ValueChangedMsg{Value: v} }
}

func (m MomentPicker) View() string {
	label := m.opts.Label
	if label == "" {
		label = "Date & time"
	}
	summary := renderPill(m.open, formatMoment(m.value))

	if !m.open {
		hint := styleMuted().Render(m.help.ShortHelpView([]key.Binding{m.keys.Open}))
		return lipgloss.JoinVertical(lipgloss.Left,
			styleHeading().Render(label),
			summary,
			hint,
		)
	}

	datePane := panelStyle(m.focus == focusDate).Render(m.date.View())
	timePane := panelStyle(m.focus == focusTime).Render(m.clock.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, datePane, " ", timePane)

	childHelp := m.date.HelpView()
	if m.focus == focusTime {
		childHelp = m.clock.HelpView()
	}
	footer := m.help.View(m.keys)
	if m.editing() {
		footer = ""
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Left, styleHeading().Render(label), " ", summary),
		"",
		panes,
		"",
		childHelp,
		footer,
	)
	if m.width > 0 {
		return fitWidth(body, min(m.width, blockWidth(body)))
	}
	return body
}

// formatMoment renders a value like "Tue Feb 4 2020 14:30".
func formatMoment(t time.Time) string {
	return t.Format("Mon Jan 2 2006 15:04")
}
