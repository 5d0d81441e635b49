package dates

import (
	"testing"
	"time"
)

func TestParseLocal(t *testing.T) {
	got, err := ParseLocal("2025-06-15")
	if err != nil {
		t.Fatal(err)
	}
	y, m, d := got.Date()
	if y != 2025 || m != time.June || d != 15 {
		t.Errorf("got %v", got)
	}
	if got.Hour() != 0 || got.Location() != time.Local {
		t.Errorf("want local midnight, got %v", got)
	}
}

func TestParseLocalDropsTimePart(t *testing.T) {
	got, err := ParseLocal("2025-06-15T23:30")
	if err != nil {
		t.Fatal(err)
	}
	if Format(got) != "2025-06-15" || got.Hour() != 0 {
		t.Errorf("got %v", got)
	}
}

func TestParseLocalInvalid(t *testing.T) {
	for _, s := range []string{"", "2025", "2025-06", "not-a-date", "aaaa-bb-cc"} {
		if _, err := ParseLocal(s); err == nil {
			t.Errorf("ParseLocal(%q) accepted invalid input", s)
		}
	}
}

// The calendar day must not shift for timezones behind UTC, which is the
// failure mode of parsing a bare date as a UTC timestamp.
func TestParseLocalKeepsCalendarDay(t *testing.T) {
	orig := time.Local
	defer func() { time.Local = orig }()
	time.Local = time.FixedZone("UTC-5", -5*60*60)

	got, err := ParseLocal("2025-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if got.Day() != 1 || got.Month() != time.January {
		t.Errorf("day shifted: %v", got)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2025, time.March, 9, 17, 45, 12, 999, time.Local)
	got := Midnight(in)
	if got.Hour() != 0 || got.Minute() != 0 || got.Day() != 9 {
		t.Errorf("got %v", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, time.March, 9, 0, 0, 1, 0, time.Local)
	b := time.Date(2025, time.March, 9, 23, 59, 59, 0, time.Local)
	c := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.Local)
	if !SameDay(a, b) {
		t.Error("same day reported different")
	}
	if SameDay(b, c) {
		t.Error("different days reported same")
	}
}

func TestDurationDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-06-01", "2025-06-01", 1},
		{"2025-06-01", "2025-06-07", 7},
		{"2025-06-07", "2025-06-01", 7}, // order-insensitive
		{"2025-02-27", "2025-03-02", 4}, // month boundary
		{"bogus", "2025-06-01", 0},
		{"2025-06-01", "", 0},
	}
	for _, c := range cases {
		if got := DurationDays(c.start, c.end); got != c.want {
			t.Errorf("DurationDays(%q, %q) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	day, err := ParseLocal("2024-12-31")
	if err != nil {
		t.Fatal(err)
	}
	if Format(day) != "2024-12-31" {
		t.Errorf("got %q", Format(day))
	}
}
