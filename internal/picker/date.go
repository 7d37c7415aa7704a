package picker

import (
	"slices"
	"time"
)

// DateState holds a picked date and the grid of the month it falls in.
//
// DateState is a value type. Mutating methods report whether the input was
// accepted; rejected input leaves the state untouched. The grid slice is
// replaced, never modified, so copies of a DateState never alias each other's
// picked value.
type DateState struct {
	value  time.Time
	bounds Bounds

	gridYear  int
	gridMonth time.Month
	grid      []time.Time
}

// NewDateState returns a state picking start (now when zero), clamped into bounds.
func NewDateState(start time.Time, bounds Bounds) DateState {
	s := DateState{bounds: bounds}
	s.value = bounds.Clamp(Normalize(start))
	s.rebuild()
	return s
}

func (s DateState) Value() time.Time  { return s.value }
func (s DateState) Bounds() Bounds    { return s.bounds }
func (s DateState) Year() int         { return s.value.Year() }
func (s DateState) Month() time.Month { return s.value.Month() }
func (s DateState) Day() int          { return s.value.Day() }

// Grid returns the displayed month, one value per day.
func (s DateState) Grid() []time.Time { return slices.Clone(s.grid) }

// IsCurrentDate reports whether day is the picked day of the displayed month.
func (s DateState) IsCurrentDate(day int) bool { return s.value.Day() == day }

// Selectable reports whether day of the displayed month may be picked.
func (s DateState) Selectable(day int) bool {
	if day < 1 || day > len(s.grid) {
		return false
	}
	return s.bounds.ContainsDay(s.grid[day-1])
}

// PickDate picks day (1-31) of the displayed month.
func (s *DateState) PickDate(day int) bool {
	if day < 1 || day > 31 {
		return false
	}
	y, m, _ := s.value.Date()
	if day > DaysInMonth(y, m) {
		return false
	}
	return s.accept(withDate(s.value, y, m, day))
}

// ChangeMonth shifts the picked date by delta months, rolling the year over.
// The day is clamped to the target month's length.
func (s *DateState) ChangeMonth(delta int) bool {
	if delta == 0 {
		return false
	}
	y, m, d := s.value.Date()
	ny, nm := addMonths(y, m, delta)
	if !validYear(ny) {
		return false
	}
	return s.accept(withDate(s.value, ny, nm, d))
}

// ChangeYear shifts the picked date by delta years.
func (s *DateState) ChangeYear(delta int) bool {
	if delta == 0 {
		return false
	}
	y, m, d := s.value.Date()
	if !validYear(y + delta) {
		return false
	}
	return s.accept(withDate(s.value, y+delta, m, d))
}

// SetSpecificMonth moves the picked date to month (1-12) of the same year.
func (s *DateState) SetSpecificMonth(month int) bool {
	if month < 1 || month > 12 {
		return false
	}
	y, _, d := s.value.Date()
	return s.accept(withDate(s.value, y, time.Month(month), d))
}

// SetSpecificYear moves the picked date to year.
func (s *DateState) SetSpecificYear(year int) bool {
	if !validYear(year) {
		return false
	}
	_, m, d := s.value.Date()
	return s.accept(withDate(s.value, year, m, d))
}

// ShiftDays moves the picked date by delta days, crossing month boundaries.
func (s *DateState) ShiftDays(delta int) bool {
	if delta == 0 {
		return false
	}
	y, m, d := s.value.Date()
	next := time.Date(y, m, d+delta, s.value.Hour(), s.value.Minute(), 0, 0, s.value.Location())
	if !validYear(next.Year()) {
		return false
	}
	return s.accept(next)
}

// SetValue replaces the picked value, clamped into bounds.
func (s *DateState) SetValue(v time.Time) {
	s.value = s.bounds.Clamp(Normalize(v))
	s.rebuild()
}

// accept applies next when its calendar day lies within the bounds. On a
// boundary day the clock is clamped so the instant stays within the bounds.
func (s *DateState) accept(next time.Time) bool {
	if !s.bounds.ContainsDay(next) {
		return false
	}
	s.value = s.bounds.Clamp(next)
	if s.value.Year() != s.gridYear || s.value.Month() != s.gridMonth {
		s.rebuild()
	}
	return true
}

func (s *DateState) rebuild() {
	s.gridYear, s.gridMonth = s.value.Year(), s.value.Month()
	s.grid = MonthGrid(s.gridYear, s.gridMonth, s.value.Location())
}
