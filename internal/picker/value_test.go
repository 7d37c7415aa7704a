package picker

import (
	"testing"
	"time"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2020-02-04", date(2020, time.February, 4, 0, 0)},
		{"2020-02-04 13:45", date(2020, time.February, 4, 13, 45)},
		{"2020-02-04T13:45", date(2020, time.February, 4, 13, 45)},
		{"2020-02-04 13:45:59", date(2020, time.February, 4, 13, 45)},
		{"2020-02-04T13:45:10+02:00", date(2020, time.February, 4, 11, 45)},
		{"  2099-09-09  ", date(2099, time.September, 9, 0, 0)},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.in, time.UTC)
		if err != nil {
			t.Fatalf("ParseValue(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Fatalf("ParseValue(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "tomorrow", "2020-02-30", "2020-13-01", "04/02/2020"} {
		if _, err := ParseValue(bad, time.UTC); err == nil {
			t.Fatalf("expected ParseValue(%q) to fail", bad)
		}
	}
}

func TestBounds(t *testing.T) {
	t.Parallel()

	b := Bounds{
		Min: date(2020, time.April, 2, 10, 0),
		Max: date(2020, time.April, 4, 10, 0),
	}
	if !b.Valid() || (Bounds{Min: b.Max, Max: b.Min}).Valid() {
		t.Fatalf("Valid mismatch")
	}
	if !(Bounds{}).Valid() || !(Bounds{}).Contains(date(1, time.January, 1, 0, 0)) {
		t.Fatalf("empty bounds should accept everything")
	}

	if b.Contains(date(2020, time.April, 2, 9, 59)) || !b.Contains(b.Min) || !b.Contains(b.Max) {
		t.Fatalf("Contains must be inclusive")
	}
	if !b.ContainsDay(date(2020, time.April, 2, 0, 0)) || !b.ContainsDay(date(2020, time.April, 4, 23, 0)) {
		t.Fatalf("ContainsDay must accept boundary days")
	}
	if b.ContainsDay(date(2020, time.April, 5, 0, 0)) || b.ContainsDay(date(2020, time.April, 1, 23, 59)) {
		t.Fatalf("ContainsDay must reject days outside the bounds")
	}

	if got := b.Clamp(date(2020, time.April, 1, 0, 0)); !got.Equal(b.Min) {
		t.Fatalf("Clamp below min = %s", got)
	}
	if got := b.Clamp(date(2020, time.May, 1, 0, 0)); !got.Equal(b.Max) {
		t.Fatalf("Clamp above max = %s", got)
	}

	withSeconds := Bounds{Min: time.Date(2020, time.April, 2, 10, 0, 30, 0, time.UTC)}
	if got := withSeconds.Clamp(date(2020, time.April, 1, 0, 0)); !withSeconds.Contains(got) || got.Second() != 0 {
		t.Fatalf("Clamp must land on a whole minute inside the bounds, got %s", got)
	}
}
