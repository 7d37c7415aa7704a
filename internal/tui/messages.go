package tui

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DateChangedMsg is emitted by a DatePicker after an accepted change.
type DateChangedMsg struct {
	ID    int
	Value time.Time
}

// TimeChangedMsg is emitted by a TimePicker after an accepted change.
type TimeChangedMsg struct {
	ID    int
	Value time.Time
}

// ValueChangedMsg is emitted by a MomentPicker whenever its combined value changes.
type ValueChangedMsg struct {
	Value time.Time
}

// ConfirmedMsg is emitted by a MomentPicker when the user accepts the value.
type ConfirmedMsg struct {
	Value time.Time
}

type entryField int

const (
	entryYear entryField = iota
	entryHour
	entryMinute
)

func (f entryField) String() string {
	switch f {
	case entryYear:
		return "year"
	case entryHour:
		return "hour"
	case entryMinute:
		return "minute"
	default:
		return "unknown"
	}
}

// entryCommittedMsg carries the text of a manual entry once it has gone quiet
// (or was committed with enter).
type entryCommittedMsg struct {
	owner int
	field entryField
	text  string
}

var widgetSeq atomic.Int64

func nextWidgetID() int { return int(widgetSeq.Add(1)) }

// Sink delivers messages produced off the event loop (debounce timers) back
// into a running program. It is a no-op until bound.
type Sink struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewSink() *Sink { return &Sink{} }

// Bind routes future messages to send, typically (*tea.Program).Send.
func (s *Sink) Bind(send func(tea.Msg)) {
	if s == nil {
		return
	}
	s.mu.Lock()
	s.send = send
	s.mu.Unlock()
}

func (s *Sink) Send(msg tea.Msg) {
	if s == nil {
		return
	}
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}
