package tui

import (
	"strings"
	"testing"
	"time"

	"dtpick/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

// relay feeds the messages produced by cmd back into m, as the program loop
// would, and returns every message seen.
func relay(m MomentPicker, cmd tea.Cmd) (MomentPicker, []tea.Msg) {
	var seen []tea.Msg
	queue := collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		seen = append(seen, msg)
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, collect(next)...)
	}
	return m, seen
}

func lastValueChange(t *testing.T, msgs []tea.Msg) time.Time {
	t.Helper()
	for i := len(msgs) - 1; i >= 0; i-- {
		if v, ok := msgs[i].(ValueChangedMsg); ok {
			return v.Value
		}
	}
	t.Fatalf("no ValueChangedMsg in %#v", msgs)
	return time.Time{}
}

func TestMomentPicker_Toggle(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 4, 14, 30), Options{})
	if m.Open() {
		t.Fatalf("expected picker to start closed")
	}

	m.Toggle()
	if !m.Open() || !m.Date().Focused() || m.Time().Focused() {
		t.Fatalf("expected open picker with date focused")
	}
	if !m.Date().Value().Equal(m.Value()) || !m.Time().Value().Equal(m.Value()) {
		t.Fatalf("children not seeded with the value")
	}

	date, clock := m.Date(), m.Time()
	m.Toggle()
	if m.Open() {
		t.Fatalf("expected picker to be closed")
	}
	if !date.Closed() || !clock.Closed() {
		t.Fatalf("closing must stop the children's debouncers")
	}

	m.Toggle()
	if m.Date().Closed() || m.Date().ID() == date.ID() {
		t.Fatalf("reopening must build fresh children")
	}
	m.Close()
}

func TestMomentPicker_KeysOpenAndClose(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 4, 14, 30), Options{})

	m, _ = m.Update(keyOf(tea.KeyEnter))
	if !m.Open() {
		t.Fatalf("expected enter to open the picker")
	}
	m, _ = m.Update(keyOf(tea.KeyEsc))
	if m.Open() {
		t.Fatalf("expected esc to close the picker")
	}
}

func TestMomentPicker_UpdateDateTime(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 4, 14, 30), Options{})
	m.UpdateDateTime(at(1999, time.December, 12, 8, 0))
	if !m.Value().Equal(at(1999, time.December, 12, 8, 0)) {
		t.Fatalf("UpdateDateTime on a closed picker did not take: %s", m.Value())
	}

	m.Toggle()
	defer m.Close()
	m.UpdateDateTime(at(2021, time.July, 4, 9, 15))
	if m.Date().State().Month() != time.July || m.Time().State().CurrentMinute() != 15 {
		t.Fatalf("UpdateDateTime did not reach the children")
	}
}

func TestMomentPicker_UpdateDateTimeClampsIntoBounds(t *testing.T) {
	b := picker.Bounds{Max: at(2020, time.June, 1, 0, 0)}
	m := NewMomentPicker(at(2020, time.May, 1, 0, 0), Options{Bounds: b})
	m.UpdateDateTime(at(2030, time.January, 1, 0, 0))
	if !m.Value().Equal(b.Max) {
		t.Fatalf("expected clamp to max, got %s", m.Value())
	}
}

func TestMomentPicker_DateChangeRelaysValue(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 4, 14, 30), Options{})
	m.Toggle()
	defer m.Close()

	m, cmd := m.Update(keyOf(tea.KeyRight))
	m, seen := relay(m, cmd)

	want := at(2020, time.February, 5, 14, 30)
	if got := lastValueChange(t, seen); !got.Equal(want) {
		t.Fatalf("expected ValueChangedMsg %s, got %s", want, got)
	}
	if !m.Value().Equal(want) || !m.Time().Value().Equal(want) {
		t.Fatalf("value not synced: composite=%s time=%s", m.Value(), m.Time().Value())
	}
}

func TestMomentPicker_TimeRolloverMovesDate(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 29, 23, 59), Options{})
	m.Toggle()
	defer m.Close()

	m, _ = m.Update(keyOf(tea.KeyTab))
	if !m.FocusedOnTime() || !m.Time().Focused() || m.Date().Focused() {
		t.Fatalf("expected tab to focus the time picker")
	}
	m, _ = m.Update(keyOf(tea.KeyRight))
	m, cmd := m.Update(keyOf(tea.KeyUp))
	m, seen := relay(m, cmd)

	want := at(2020, time.March, 1, 0, 0)
	if got := lastValueChange(t, seen); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if s := m.Date().State(); s.Month() != time.March || s.Day() != 1 || len(s.Grid()) != 31 {
		t.Fatalf("date picker did not follow the rollover: %s", s.Value())
	}
}

func TestMomentPicker_IgnoresStaleChildren(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 4, 14, 30), Options{})
	m.Toggle()
	stale := m.Date().ID()
	m.Toggle()
	m.Toggle()
	defer m.Close()

	m, cmd := m.Update(DateChangedMsg{ID: stale, Value: at(2030, time.January, 1, 0, 0)})
	if cmd != nil || !m.Value().Equal(at(2020, time.February, 4, 14, 30)) {
		t.Fatalf("change from a torn-down child was applied: %s", m.Value())
	}

	m.Toggle()
	m, cmd = m.Update(DateChangedMsg{ID: m.Date().ID(), Value: at(2030, time.January, 1, 0, 0)})
	if cmd != nil {
		t.Fatalf("closed picker relayed a change")
	}
}

func TestMomentPicker_TypedEntryRoutesToChild(t *testing.T) {
	sink, ch := channelSink()
	m := NewMomentPicker(at(2020, time.June, 1, 12, 30), Options{Sink: sink, Debounce: 20 * time.Millisecond})
	m.Toggle()
	defer m.Close()

	m, _ = m.Update(runeKey('y'))
	for i := 0; i < 4; i++ {
		m, _ = m.Update(keyOf(tea.KeyBackspace))
	}
	for _, r := range "2024" {
		m, _ = m.Update(runeKey(r))
	}
	msg := waitMsg(t, ch, time.Second)
	m, cmd := m.Update(msg)
	m, seen := relay(m, cmd)
	if got := lastValueChange(t, seen); got.Year() != 2024 {
		t.Fatalf("expected year 2024, got %s", got)
	}

	// The field stays open after a debounced commit, so esc ends the entry first.
	m, _ = m.Update(keyOf(tea.KeyEsc))
	if !m.Open() {
		t.Fatalf("esc during entry closed the picker")
	}
	m, _ = m.Update(keyOf(tea.KeyEsc))
	if m.Open() {
		t.Fatalf("second esc should close the picker")
	}
}

func TestMomentPicker_Confirm(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 4, 14, 30), Options{})
	m.Toggle()
	date := m.Date()

	m, cmd := m.Update(keyOf(tea.KeyCtrlS))
	got := only[ConfirmedMsg](t, cmd)
	if !got.Value.Equal(at(2020, time.February, 4, 14, 30)) {
		t.Fatalf("unexpected confirmed value %s", got.Value)
	}
	if m.Open() || !date.Closed() {
		t.Fatalf("confirm should close the picker and stop its children")
	}
}

func TestMomentPicker_View(t *testing.T) {
	m := NewMomentPicker(at(2020, time.February, 4, 14, 30), Options{Label: "Due"})
	closed := m.View()
	if !strings.Contains(closed, "Due") || !strings.Contains(closed, "Tue Feb 4 2020 14:30") {
		t.Fatalf("unexpected closed view:\n%s", closed)
	}

	m.Toggle()
	defer m.Close()
	open := m.View()
	for _, want := range []string{"February 2020", "Time", "14", "30"} {
		if !strings.Contains(open, want) {
			t.Fatalf("expected open view to contain %q; got:\n%s", want, open)
		}
	}
}
