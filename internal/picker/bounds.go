package picker

import "time"

// Bounds is an inclusive [Min, Max] range of instants. A zero Min or Max
// leaves that side open.
type Bounds struct {
	Min time.Time
	Max time.Time
}

func (b Bounds) HasMin() bool { return !b.Min.IsZero() }
func (b Bounds) HasMax() bool { return !b.Max.IsZero() }

// Valid reports whether Min is not after Max.
func (b Bounds) Valid() bool {
	if b.HasMin() && b.HasMax() {
		return !b.Min.After(b.Max)
	}
	return true
}

// Contains reports whether t lies within the bounds.
func (b Bounds) Contains(t time.Time) bool {
	if b.HasMin() && t.Before(b.Min) {
		return false
	}
	if b.HasMax() && t.After(b.Max) {
		return false
	}
	return true
}

// ContainsDay reports whether t's calendar day (in t's location) overlaps the bounds.
func (b Bounds) ContainsDay(t time.Time) bool {
	d := dayKey(t)
	if b.HasMin() && d < dayKey(b.Min.In(t.Location())) {
		return false
	}
	if b.HasMax() && d > dayKey(b.Max.In(t.Location())) {
		return false
	}
	return true
}

// Clamp moves t into the bounds, keeping t's location.
func (b Bounds) Clamp(t time.Time) time.Time {
	if b.HasMin() && t.Before(b.Min) {
		return ceilMinute(b.Min.In(t.Location()))
	}
	if b.HasMax() && t.After(b.Max) {
		return truncateMinute(b.Max.In(t.Location()))
	}
	return t
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
