package tui

import (
	"strings"
	"testing"
	"time"

	"dtpick/internal/picker"

	tea "github.com/charmbracelet/bubbletea"
)

func focusedTimePicker(v time.Time, opts Options) TimePicker {
	m := NewTimePicker(v, opts)
	m.Focus()
	return m
}

func TestTimePicker_StepKeys(t *testing.T) {
	m := focusedTimePicker(at(2020, time.June, 1, 12, 30), Options{HourStep: 2, MinuteStep: 15})
	defer m.Close()

	m, cmd := m.Update(keyOf(tea.KeyUp))
	got := only[TimeChangedMsg](t, cmd)
	if got.ID != m.ID() || got.Value.Hour() != 14 {
		t.Fatalf("expected hour 14 from picker %d, got %#v", m.ID(), got)
	}

	m, _ = m.Update(keyOf(tea.KeyRight))
	m, _ = m.Update(runeKey('+'))
	if m.State().CurrentMinute() != 45 {
		t.Fatalf("expected minute 45, got %d", m.State().CurrentMinute())
	}
	m, _ = m.Update(runeKey('-'))
	m, _ = m.Update(keyOf(tea.KeyDown))
	if m.State().CurrentMinute() != 15 || m.State().CurrentHour() != 14 {
		t.Fatalf("expected 14:15, got %s", m.Value().Format("15:04"))
	}

	m, _ = m.Update(keyOf(tea.KeyLeft))
	m, _ = m.Update(keyOf(tea.KeyDown))
	if m.State().CurrentHour() != 12 {
		t.Fatalf("expected hour 12 after stepping down, got %d", m.State().CurrentHour())
	}
}

func TestTimePicker_StepsStopAtBounds(t *testing.T) {
	b := picker.Bounds{Min: at(2020, time.June, 1, 9, 0), Max: at(2020, time.June, 1, 17, 0)}
	m := focusedTimePicker(at(2020, time.June, 1, 16, 30), Options{Bounds: b, MinuteStep: 30})
	defer m.Close()

	m, cmd := m.Update(keyOf(tea.KeyUp))
	if cmd != nil {
		t.Fatalf("expected 17:30 to be rejected")
	}
	m, _ = m.Update(keyOf(tea.KeyRight))
	m, cmd = m.Update(keyOf(tea.KeyUp))
	if !only[TimeChangedMsg](t, cmd).Value.Equal(b.Max) {
		t.Fatalf("expected step to land on max")
	}
	m, cmd = m.Update(keyOf(tea.KeyUp))
	if cmd != nil || !m.Value().Equal(b.Max) {
		t.Fatalf("expected steps past max to be rejected, got %s", m.Value())
	}
}

func TestTimePicker_TypedHourAndMinute(t *testing.T) {
	m := focusedTimePicker(at(2020, time.June, 1, 12, 30), Options{})
	defer m.Close()

	m, _ = m.Update(runeKey('h'))
	if !m.Editing() {
		t.Fatalf("expected hour entry to be active")
	}
	m = clearInput(m, 2)
	m = typeText(m, "7")
	m, cmd := m.Update(keyOf(tea.KeyEnter))
	m, cmd = m.Update(only[entryCommittedMsg](t, cmd))
	if only[TimeChangedMsg](t, cmd).Value.Hour() != 7 {
		t.Fatalf("expected hour 7, got %s", m.Value())
	}

	m, _ = m.Update(runeKey('m'))
	m = clearInput(m, 2)
	m = typeText(m, "05")
	m, cmd = m.Update(keyOf(tea.KeyEnter))
	m, _ = m.Update(only[entryCommittedMsg](t, cmd))
	if want := at(2020, time.June, 1, 7, 5); !m.Value().Equal(want) {
		t.Fatalf("expected %s, got %s", want, m.Value())
	}
}

func TestTimePicker_RejectsInvalidEntries(t *testing.T) {
	m := focusedTimePicker(at(2020, time.June, 1, 12, 30), Options{})
	defer m.Close()

	for _, e := range []entryCommittedMsg{
		{owner: m.ID(), field: entryHour, text: "24"},
		{owner: m.ID(), field: entryHour, text: "-1"},
		{owner: m.ID(), field: entryMinute, text: "60"},
		{owner: m.ID(), field: entryMinute, text: "xx"},
		{owner: m.ID() + 1000, field: entryMinute, text: "10"},
	} {
		var cmd tea.Cmd
		m, cmd = m.Update(e)
		if cmd != nil {
			t.Fatalf("expected entry %#v to be rejected", e)
		}
	}
	if !m.Value().Equal(at(2020, time.June, 1, 12, 30)) {
		t.Fatalf("rejected entries mutated state: %s", m.Value())
	}
}

func TestTimePicker_TypedMinuteDebounces(t *testing.T) {
	sink, ch := channelSink()
	m := focusedTimePicker(at(2020, time.June, 1, 12, 30), Options{Sink: sink, Debounce: 20 * time.Millisecond})
	defer m.Close()

	m, _ = m.Update(runeKey('m'))
	m = clearInput(m, 2)
	m = typeText(m, "45")

	entry, ok := waitMsg(t, ch, time.Second).(entryCommittedMsg)
	if !ok || entry.field != entryMinute || entry.text != "45" {
		t.Fatalf("unexpected commit %#v", entry)
	}
	m, _ = m.Update(entry)
	if m.State().CurrentMinute() != 45 {
		t.Fatalf("expected minute 45, got %d", m.State().CurrentMinute())
	}
}

func TestTimePicker_CloseStopsBothEntries(t *testing.T) {
	m := NewTimePicker(at(2020, time.June, 1, 12, 30), Options{})
	if m.Closed() {
		t.Fatalf("new picker should not be closed")
	}
	m.Close()
	if !m.Closed() {
		t.Fatalf("expected both entries to be stopped")
	}
}

func TestTimePicker_View(t *testing.T) {
	m := NewTimePicker(at(2020, time.June, 1, 7, 5), Options{HourStep: 1, MinuteStep: 15, Debug: true})
	defer m.Close()

	out := m.View()
	for _, want := range []string{"07", "05", "± 1h / 15m", "2020-06-01T07:05:00Z"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected view to contain %q; got:\n%s", want, out)
		}
	}
}
