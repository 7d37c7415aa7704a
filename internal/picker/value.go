package picker

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

const (
	MinYear = 1
	MaxYear = 9999
)

var (
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[ T]\d{2}:\d{2}(:\d{2})?$`)
)

// ParseValue parses:
// - YYYY-MM-DD (midnight)
// - YYYY-MM-DD HH:MM (wall clock in loc)
// - RFC3339 (converted to loc)
//
// The result is truncated to the minute.
func ParseValue(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}
	if reDateOnly.MatchString(s) {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return t, nil
	}
	if reDateTime.MatchString(s) {
		s = strings.Replace(s, "T", " ", 1)
		layout := "2006-01-02 15:04"
		if len(s) > len(layout) {
			layout = "2006-01-02 15:04:05"
		}
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid datetime %q: %w", s, err)
		}
		return truncateMinute(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return truncateMinute(t.In(loc)), nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q (expected YYYY-MM-DD, YYYY-MM-DD HH:MM, or RFC3339)", s)
}

// Normalize returns t truncated to the minute, or the current minute when t is zero.
func Normalize(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}
	return truncateMinute(t)
}

// Clock returns the time of day of t.
func Clock(t time.Time) datetime.TimeOfDay {
	return datetime.NewTimeOfDay(t.Hour(), t.Minute(), 0)
}

func truncateMinute(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, t.Location())
}

func ceilMinute(t time.Time) time.Time {
	tr := truncateMinute(t)
	if tr.Equal(t) {
		return tr
	}
	return tr.Add(time.Minute)
}

// withDate keeps t's clock and location, moving it to year/month/day. The day
// is clamped to the month's length.
func withDate(t time.Time, year int, month time.Month, day int) time.Time {
	day = clampDay(year, month, day)
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, t.Location())
}

func withClock(t time.Time, hour, minute int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, minute, 0, 0, t.Location())
}

func clampDay(year int, month time.Month, day int) int {
	if day < 1 {
		return 1
	}
	if n := DaysInMonth(year, month); day > n {
		return n
	}
	return day
}

// addMonths shifts year/month by delta months.
func addMonths(year int, month time.Month, delta int) (int, time.Month) {
	mo := int(month) - 1 + delta
	year += mo / 12
	mo %= 12
	if mo < 0 {
		mo += 12
		year--
	}
	return year, time.Month(mo + 1)
}

func validYear(y int) bool { return y >= MinYear && y <= MaxYear }
