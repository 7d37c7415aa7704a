package picker

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestMonthGrid_LengthMatchesDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2020, time.February, 29},
		{2021, time.February, 28},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2024, time.April, 30},
		{2024, time.December, 31},
		{2024, time.January, 31},
	}
	for _, tt := range tests {
		grid := MonthGrid(tt.year, tt.month, time.UTC)
		if len(grid) != tt.want {
			t.Fatalf("MonthGrid(%d, %s): got %d days, want %d", tt.year, tt.month, len(grid), tt.want)
		}
		for i, d := range grid {
			if d.Day() != i+1 || d.Month() != tt.month || d.Year() != tt.year {
				t.Fatalf("grid[%d] = %s, want day %d of %s %d", i, d, i+1, tt.month, tt.year)
			}
			if d.Hour() != 0 || d.Minute() != 0 {
				t.Fatalf("grid[%d] = %s, want midnight", i, d)
			}
		}
	}
}

func TestMonthGrid_InvalidMonthIsEmpty(t *testing.T) {
	t.Parallel()

	if got := MonthGrid(2020, 0, time.UTC); len(got) != 0 {
		t.Fatalf("expected empty grid for month 0, got %d", len(got))
	}
	if got := MonthGrid(2020, 13, time.UTC); len(got) != 0 {
		t.Fatalf("expected empty grid for month 13, got %d", len(got))
	}
}

func TestWeeks_LaysOutFromFirstWeekday(t *testing.T) {
	t.Parallel()

	// 1 Feb 2020 was a Saturday.
	grid := MonthGrid(2020, time.February, time.UTC)

	days := func(weeks [][7]time.Time) [][7]int {
		out := make([][7]int, len(weeks))
		for i, w := range weeks {
			for j, d := range w {
				if !d.IsZero() {
					out[i][j] = d.Day()
				}
			}
		}
		return out
	}

	sunday := days(Weeks(grid, time.Sunday))
	wantSunday := [][7]int{
		{0, 0, 0, 0, 0, 0, 1},
		{2, 3, 4, 5, 6, 7, 8},
		{9, 10, 11, 12, 13, 14, 15},
		{16, 17, 18, 19, 20, 21, 22},
		{23, 24, 25, 26, 27, 28, 29},
	}
	if diff := cmp.Diff(wantSunday, sunday); diff != "" {
		t.Fatalf("sunday-first weeks mismatch (-want +got):\n%s", diff)
	}

	monday := days(Weeks(grid, time.Monday))
	wantMonday := [][7]int{
		{0, 0, 0, 0, 0, 1, 2},
		{3, 4, 5, 6, 7, 8, 9},
		{10, 11, 12, 13, 14, 15, 16},
		{17, 18, 19, 20, 21, 22, 23},
		{24, 25, 26, 27, 28, 29, 0},
	}
	if diff := cmp.Diff(wantMonday, monday); diff != "" {
		t.Fatalf("monday-first weeks mismatch (-want +got):\n%s", diff)
	}

	if Weeks(nil, time.Sunday) != nil {
		t.Fatalf("expected nil weeks for empty grid")
	}
}

func TestWeekdayHeader(t *testing.T) {
	t.Parallel()

	got := WeekdayHeader(time.Monday)
	want := [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	if got != want {
		t.Fatalf("WeekdayHeader(Monday) = %v, want %v", got, want)
	}
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]time.Weekday{
		"sunday":  time.Sunday,
		"Mon":     time.Monday,
		" SAT ":   time.Saturday,
		"Tuesday": time.Tuesday,
	} {
		got, ok := ParseWeekday(in)
		if !ok || got != want {
			t.Fatalf("ParseWeekday(%q) = %v, %v; want %v", in, got, ok, want)
		}
	}
	if _, ok := ParseWeekday("someday"); ok {
		t.Fatalf("expected ParseWeekday to reject unknown names")
	}
}
