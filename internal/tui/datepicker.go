package tui

import (
	"fmt"
	"strings"
	"time"

	"dtpick/internal/picker"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const gridWidth = 7*3 - 1

// DatePicker is a month calendar over a picker.DateState.
type DatePicker struct {
	id      int
	state   picker.DateState
	opts    Options
	keys    dateKeyMap
	entry   entryKeyMap
	help    help.Model
	year    numericEntry
	focused bool
}

func NewDatePicker(start time.Time, opts Options) DatePicker {
	id := nextWidgetID()
	return DatePicker{
		id:    id,
		state: picker.NewDateState(start, opts.Bounds),
		opts:  opts,
		keys:  defaultDateKeyMap(),
		entry: defaultEntryKeyMap(),
		help:  help.New(),
		year:  newNumericEntry(id, entryYear, 4, opts.debounceDelay(), opts.Sink),
	}
}

func (m DatePicker) ID() int                 { return m.id }
func (m DatePicker) Value() time.Time        { return m.state.Value() }
func (m DatePicker) State() picker.DateState { return m.state }
func (m DatePicker) Focused() bool           { return m.focused }
func (m DatePicker) Editing() bool           { return m.year.active() }
func (m DatePicker) Closed() bool            { return m.year.closed() }

func (m *DatePicker) Focus() { m.focused = true }

func (m *DatePicker) Blur() {
	m.focused = false
	m.year.cancel()
}

// SetValue moves the picker to v without emitting a change.
func (m *DatePicker) SetValue(v time.Time) { m.state.SetValue(v) }

// Close stops the year entry's debouncer. A closed picker still renders but
// no longer receives debounced entries.
func (m *DatePicker) Close() { m.year.close() }

func (m DatePicker) Init() tea.Cmd { return nil }

func (m DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case entryCommittedMsg:
		if msg.owner != m.id || msg.field != entryYear {
			return m, nil
		}
		n, ok := parseEntry(msg.text)
		if !ok {
			m.opts.logger().Debug("ignored year entry", "text", msg.text)
			return m, nil
		}
		return m, m.changed("set-year", m.state.SetSpecificYear(n))

	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		if m.year.active() {
			switch {
			case key.Matches(msg, m.entry.Commit):
				return m, m.year.commit()
			case key.Matches(msg, m.entry.Cancel):
				m.year.cancel()
				return m, nil
			}
			return m, m.year.update(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m DatePicker) handleKey(msg tea.KeyMsg) (DatePicker, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevDay):
		return m, m.changed("shift-days", m.state.ShiftDays(-1))
	case key.Matches(msg, m.keys.NextDay):
		return m, m.changed("shift-days", m.state.ShiftDays(1))
	case key.Matches(msg, m.keys.PrevWeek):
		return m, m.changed("shift-days", m.state.ShiftDays(-7))
	case key.Matches(msg, m.keys.NextWeek):
		return m, m.changed("shift-days", m.state.ShiftDays(7))
	case key.Matches(msg, m.keys.FirstDay):
		return m, m.changed("pick-date", m.state.PickDate(1))
	case key.Matches(msg, m.keys.LastDay):
		return m, m.changed("pick-date", m.state.PickDate(len(m.state.Grid())))
	case key.Matches(msg, m.keys.PrevMonth):
		return m, m.changed("change-month", m.state.ChangeMonth(-1))
	case key.Matches(msg, m.keys.NextMonth):
		return m, m.changed("change-month", m.state.ChangeMonth(1))
	case key.Matches(msg, m.keys.PrevYear):
		return m, m.changed("change-year", m.state.ChangeYear(-1))
	case key.Matches(msg, m.keys.NextYear):
		return m, m.changed("change-year", m.state.ChangeYear(1))
	case key.Matches(msg, m.keys.EditYear):
		return m, m.year.begin(m.state.Year())
	}
	return m, nil
}

// changed logs the outcome of op and, when accepted, emits DateChangedMsg.
func (m DatePicker) changed(op string, accepted bool) tea.Cmd {
	logger := m.opts.logger()
	if !accepted {
		logger.Debug("date op rejected", "op", op, "value", m.state.Value())
		return nil
	}
	v := m.state.Value()
	logger.Debug("date op accepted", "op", op, "value", v)
	id := m.id
	return func() tea.Msg { return DateChangedMsg{ID: id, Value: v} }
}

func (m DatePicker) View() string {
	weekdays := picker.WeekdayHeader(m.opts.FirstWeekday)
	lines := []string{m.headerView(), styleMuted().Render(strings.Join(weekdays[:], " "))}

	v := m.state.Value()
	now := time.Now().In(v.Location())
	for _, week := range picker.Weeks(m.state.Grid(), m.opts.FirstWeekday) {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			if d.IsZero() {
				cells = append(cells, "  ")
				continue
			}
			day := d.Day()
			today := d.Year() == now.Year() && d.Month() == now.Month() && day == now.Day()
			st := styleDay(m.state.IsCurrentDate(day), m.state.Selectable(day), today)
			cells = append(cells, st.Render(fmt.Sprintf("%2d", day)))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	if m.opts.Debug {
		lines = append(lines, styleMuted().Render(v.Format(time.RFC3339)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m DatePicker) headerView() string {
	month := m.state.Month().String()
	if m.year.active() {
		return fitWidth(centerIn(styleHeading().Render(month)+" "+m.year.view(), gridWidth), gridWidth)
	}
	title := fmt.Sprintf("%s %s %04d %s", glyphPrev(), month, m.state.Year(), glyphNext())
	return fitWidth(centerIn(styleHeading().Render(title), gridWidth), gridWidth)
}

// HelpView renders the key help for the picker's current mode.
func (m DatePicker) HelpView() string {
	if m.year.active() {
		return m.help.View(m.entry)
	}
	return m.help.View(m.keys)
}

func (m *DatePicker) SetShowAllHelp(all bool) { m.help.ShowAll = all }
