package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func at(y int, m time.Month, d, h, mi int) time.Time {
	return time.Date(y, m, d, h, mi, 0, 0, time.UTC)
}

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func keyOf(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

// collect runs cmd and flattens batches. Only call it on commands known not
// to block (change notifications, entry commits).
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func only[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	msgs := collect(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected exactly one message, got %d: %#v", len(msgs), msgs)
	}
	got, ok := msgs[0].(T)
	if !ok {
		t.Fatalf("expected %T, got %T", *new(T), msgs[0])
	}
	return got
}

// channelSink returns a Sink that forwards into a buffered channel.
func channelSink() (*Sink, <-chan tea.Msg) {
	ch := make(chan tea.Msg, 16)
	s := NewSink()
	s.Bind(func(m tea.Msg) { ch <- m })
	return s, ch
}

func waitMsg(t *testing.T, ch <-chan tea.Msg, within time.Duration) tea.Msg {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(within):
		t.Fatalf("timed out after %s waiting for a message", within)
		return nil
	}
}

func clearInput[M interface {
	Update(tea.Msg) (M, tea.Cmd)
}](m M, n int) M {
	for i := 0; i < n; i++ {
		m, _ = m.Update(keyOf(tea.KeyBackspace))
	}
	return m
}

func typeText[M interface {
	Update(tea.Msg) (M, tea.Cmd)
}](m M, s string) M {
	for _, r := range s {
		m, _ = m.Update(runeKey(r))
	}
	return m
}
