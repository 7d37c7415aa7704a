package format

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type sample struct {
	Value    time.Time `json:"value"`
	HourStep int       `json:"hour_step"`
	Accepted []bool    `json:"accepted"`
	Label    string    `json:"label,omitempty"`
	Ratio    float64   `json:"ratio"`
}

func TestWriteEDN(t *testing.T) {
	v := sample{
		Value:    time.Date(2020, time.February, 4, 14, 30, 0, 0, time.UTC),
		HourStep: 2,
		Accepted: []bool{true, false},
		Ratio:    0.5,
	}

	var buf bytes.Buffer
	if err := WriteEDN(&buf, v, false); err != nil {
		t.Fatal(err)
	}
	want := `{:accepted [true false] :hour-step 2 :ratio 0.5 :value #inst "2020-02-04T14:30:00Z"}` + "\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("edn mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := WriteEDN(&buf, map[string]any{"days": []int{1, 2}, "empty": []int{}}, true); err != nil {
		t.Fatal(err)
	}
	want = "{\n  :days [\n    1\n    2\n  ]\n  :empty []\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("pretty edn mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteEDN_PlainStringsStayStrings(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEDN(&buf, []string{"2020-02-04", "hello", ""}, false); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), `["2020-02-04" "hello" ""]`+"\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]int{"a": 1}, "", false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\"a\":1}\n" {
		t.Fatalf("default format should be json, got %q", got)
	}

	buf.Reset()
	if err := Write(&buf, map[string]int{"a": 1}, "EDN", false); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{:a 1}\n" {
		t.Fatalf("got %q", got)
	}

	if err := Write(&buf, 1, "yaml", false); err == nil {
		t.Fatalf("expected unknown format to fail")
	}
	if Check("json") != nil || Check("edn") != nil || Check("xml") == nil {
		t.Fatalf("Check mismatch")
	}
}
