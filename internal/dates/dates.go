// Package dates handles local calendar dates. Date-only strings are taken
// apart by components and rebuilt at local midnight, so a stored day never
// shifts with the runtime's timezone offset relative to UTC.
package dates

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ISO is the wire format for calendar dates.
const ISO = "2006-01-02"

// ParseLocal parses "YYYY-MM-DD" (a trailing "THH:MM" part is tolerated and
// dropped) into local midnight of that calendar day.
func ParseLocal(s string) (time.Time, error) {
	dateOnly, _, _ := strings.Cut(s, "T")
	parts := strings.Split(dateOnly, "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("dates: invalid date %q", s)
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: invalid year in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: invalid month in %q", s)
	}
	d, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: invalid day in %q", s)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
}

// Midnight truncates t to local midnight of its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DurationDays returns the inclusive day count of [start, end]: a trip that
// starts and ends on the same day lasts 1 day. Invalid inputs count as 0.
func DurationDays(start, end string) int {
	s, err := ParseLocal(start)
	if err != nil {
		return 0
	}
	e, err := ParseLocal(end)
	if err != nil {
		return 0
	}
	diff := e.Sub(s)
	if diff < 0 {
		diff = -diff
	}
	// Round rather than truncate so a DST transition inside the range does
	// not shift the day count.
	return int(math.Round(diff.Hours()/24)) + 1
}

// Format renders t in the ISO wire format.
func Format(t time.Time) string {
	return t.Format(ISO)
}
