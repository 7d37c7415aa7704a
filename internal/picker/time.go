package picker

import (
	"time"

	"cloudeng.io/datetime"
)

// TimeState holds a picked hour and minute. Like DateState it is a value type
// whose mutating methods report acceptance and leave the state untouched on
// rejection.
type TimeState struct {
	value      time.Time
	bounds     Bounds
	hourStep   int
	minuteStep int
}

// NewTimeState returns a state for v (now when zero), clamped into bounds.
// Non-positive steps default to 1.
func NewTimeState(v time.Time, bounds Bounds, hourStep, minuteStep int) TimeState {
	if hourStep <= 0 {
		hourStep = 1
	}
	if minuteStep <= 0 {
		minuteStep = 1
	}
	return TimeState{
		value:      bounds.Clamp(Normalize(v)),
		bounds:     bounds,
		hourStep:   hourStep,
		minuteStep: minuteStep,
	}
}

func (s TimeState) Value() time.Time          { return s.value }
func (s TimeState) Bounds() Bounds            { return s.bounds }
func (s TimeState) CurrentHour() int          { return s.value.Hour() }
func (s TimeState) CurrentMinute() int        { return s.value.Minute() }
func (s TimeState) HourStep() int             { return s.hourStep }
func (s TimeState) MinuteStep() int           { return s.minuteStep }
func (s TimeState) Clock() datetime.TimeOfDay { return Clock(s.value) }

// ChangeHour sets the hour (0-23) of the picked value.
func (s *TimeState) ChangeHour(hour int) bool {
	if hour < 0 || hour > 23 {
		return false
	}
	return s.accept(withClock(s.value, hour, s.value.Minute()))
}

// ChangeMinute sets the minute (0-59) of the picked value.
func (s *TimeState) ChangeMinute(minute int) bool {
	if minute < 0 || minute > 59 {
		return false
	}
	return s.accept(withClock(s.value, s.value.Hour(), minute))
}

// The step operations move the instant, so the date rolls across midnight.

func (s *TimeState) IncrementHour() bool {
	return s.accept(s.value.Add(time.Duration(s.hourStep) * time.Hour))
}

func (s *TimeState) DecrementHour() bool {
	return s.accept(s.value.Add(-time.Duration(s.hourStep) * time.Hour))
}

func (s *TimeState) IncrementMinute() bool {
	return s.accept(s.value.Add(time.Duration(s.minuteStep) * time.Minute))
}

func (s *TimeState) DecrementMinute() bool {
	return s.accept(s.value.Add(-time.Duration(s.minuteStep) * time.Minute))
}

// SetValue replaces the picked value, clamped into bounds.
func (s *TimeState) SetValue(v time.Time) {
	s.value = s.bounds.Clamp(Normalize(v))
}

func (s *TimeState) accept(next time.Time) bool {
	if !s.bounds.Contains(next) || !validYear(next.Year()) {
		return false
	}
	s.value = next
	return true
}
