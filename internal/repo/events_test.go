package repo

import (
	"errors"
	"testing"
	"time"

	"github.com/starford/wunjo/internal/apperr"
	"github.com/starford/wunjo/internal/models"
)

func TestEventsCreateValidatesDate(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 15)
	r := NewEvents(p, clock, ids)

	if _, err := r.Create(models.Event{Title: "bad", Date: "not-a-date"}); !errors.Is(err, apperr.ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
	if r.Count() != 0 {
		t.Errorf("invalid event was stored")
	}
}

func TestEventsUpcomingIncludesToday(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 15)
	r := NewEvents(p, clock, ids)

	mustCreateEvent(t, r, "later", "2025-07-01")
	mustCreateEvent(t, r, "today", "2025-06-15")
	mustCreateEvent(t, r, "yesterday", "2025-06-14")

	up := r.Upcoming()
	if len(up) != 2 {
		t.Fatalf("upcoming = %+v", up)
	}
	if up[0].Title != "today" || up[1].Title != "later" {
		t.Errorf("order = %s, %s", up[0].Title, up[1].Title)
	}
}

func TestEventsUpcomingFallsBackToRecentPast(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 15)
	r := NewEvents(p, clock, ids)

	// Seven past events, none upcoming.
	for day := 1; day <= 7; day++ {
		mustCreateEvent(t, r, "past", time.Date(2025, time.June, day, 0, 0, 0, 0, time.Local).Format("2006-01-02"))
	}

	up := r.Upcoming()
	if len(up) != 5 {
		t.Fatalf("fallback length = %d, want 5", len(up))
	}
	if up[0].Date != "2025-06-07" || up[4].Date != "2025-06-03" {
		t.Errorf("fallback order = %s .. %s", up[0].Date, up[4].Date)
	}
}

func TestEventsPastIsStrictlyBeforeToday(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 15)
	r := NewEvents(p, clock, ids)

	mustCreateEvent(t, r, "today", "2025-06-15")
	mustCreateEvent(t, r, "yesterday", "2025-06-14")

	past := r.Past()
	if len(past) != 1 || past[0].Title != "yesterday" {
		t.Errorf("past = %+v", past)
	}
}

func TestEventsUpdateBadDateIsNoop(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 15)
	r := NewEvents(p, clock, ids)

	e := mustCreateEvent(t, r, "fixed", "2025-06-20")

	if err := r.Update(e.ID, EventPatch{Date: strPtr("garbage"), Title: strPtr("changed")}); err != nil {
		t.Fatal(err)
	}
	got, err := r.Get(e.ID)
	if err != nil {
		t.Fatal(err)
	}
	// The whole patch is dropped, not just the date.
	if got.Date != "2025-06-20" || got.Title != "fixed" {
		t.Errorf("event changed: %+v", got)
	}
}

func TestEventsCalendar(t *testing.T) {
	p, clock, ids := deps(t, 2025, time.June, 15)
	r := NewEvents(p, clock, ids)

	mustCreateEvent(t, r, "a", "2025-06-20")
	mustCreateEvent(t, r, "b", "2025-06-03")
	mustCreateEvent(t, r, "c", "2025-06-20") // same day as a
	mustCreateEvent(t, r, "d", "2025-07-01") // other month

	days := r.Calendar(2025, time.June)
	if len(days) != 2 || days[0] != 3 || days[1] != 20 {
		t.Errorf("calendar = %v", days)
	}
	if days = r.Calendar(2025, time.August); len(days) != 0 {
		t.Errorf("empty month = %v", days)
	}
}

func mustCreateEvent(t *testing.T, r *Events, title, date string) models.Event {
	t.Helper()
	e, err := r.Create(models.Event{Title: title, Date: date, Category: models.EventDate})
	if err != nil {
		t.Fatal(err)
	}
	return e
}
