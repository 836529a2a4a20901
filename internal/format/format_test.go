package format

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	d := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	if got := Date(d); got != "Mar 1, 2025" {
		t.Fatalf("Date = %q", got)
	}
	if got := ISODate(d); got != "2025-03-01" {
		t.Fatalf("ISODate = %q", got)
	}
	if Date(time.Time{}) != "" || ISODate(time.Time{}) != "" {
		t.Fatalf("zero time should render empty")
	}
}

func TestInitials(t *testing.T) {
	cases := map[string]string{
		"Ava, USA":    "A",
		"Mary jane":   "MJ",
		"a b c":       "AB",
		"":            "",
		"Mariam, UAE": "M",
	}
	for in, want := range cases {
		if got := Initials(in); got != want {
			t.Fatalf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}
