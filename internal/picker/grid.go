package picker

import (
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// DaysInMonth returns the number of days in month of year, or 0 for a month
// outside 1-12.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// MonthGrid returns one value per day of month/year, each at midnight in loc.
func MonthGrid(year int, month time.Month, loc *time.Location) []time.Time {
	if loc == nil {
		loc = time.Local
	}
	n := DaysInMonth(year, month)
	grid := make([]time.Time, n)
	for i := range grid {
		grid[i] = time.Date(year, month, i+1, 0, 0, 0, 0, loc)
	}
	return grid
}

// Weeks lays a month grid out as calendar rows starting on first. Cells
// before the first day and after the last day are zero values.
func Weeks(grid []time.Time, first time.Weekday) [][7]time.Time {
	if len(grid) == 0 {
		return nil
	}
	col := (int(grid[0].Weekday()) - int(first) + 7) % 7
	var (
		weeks [][7]time.Time
		row   [7]time.Time
	)
	for _, d := range grid {
		row[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, row)
			row = [7]time.Time{}
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, row)
	}
	return weeks
}

// WeekdayHeader returns two-letter weekday labels starting on first.
func WeekdayHeader(first time.Weekday) [7]string {
	var out [7]string
	for i := range out {
		out[i] = time.Weekday((int(first) + i) % 7).String()[:2]
	}
	return out
}

// ParseWeekday accepts full or three-letter English weekday names.
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.TrimSpace(s)
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return d, true
		}
	}
	return time.Sunday, false
}
