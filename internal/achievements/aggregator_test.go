package achievements

import (
	"testing"
	"time"

	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/repo"
	"github.com/starford/wunjo/internal/testutil"
)

type fixture struct {
	wishes *repo.Wishes
	events *repo.Events
	trips  *repo.Trips
	agg    *Aggregator
}

func newFixture(t *testing.T, clock models.Clock) *fixture {
	t.Helper()
	_, p := testutil.TestStore(t)
	ids := models.NewMonotonicID(clock)
	wishes := repo.NewWishes(p, clock, ids)
	events := repo.NewEvents(p, clock, ids)
	trips := repo.NewTrips(p, clock, ids)
	return &fixture{
		wishes: wishes,
		events: events,
		trips:  trips,
		agg:    New(wishes, events, trips, clock),
	}
}

func TestScoreWish(t *testing.T) {
	cases := []struct {
		prio models.Priority
		want int
	}{
		{models.PriorityHigh, 30},
		{models.PriorityMedium, 20},
		{models.PriorityLow, 10},
		{models.Priority("unknown"), 10},
		{"", 10},
	}
	for _, c := range cases {
		if got := ScoreWish(c.prio); got != c.want {
			t.Errorf("ScoreWish(%q) = %d, want %d", c.prio, got, c.want)
		}
	}
}

func TestTimelineMergesAllSources(t *testing.T) {
	clock := testutil.At(2025, time.March, 1)
	f := newFixture(t, clock)

	w, err := f.wishes.Create(models.Wish{Title: "learn to dance", Category: models.WishGoals, Priority: models.PriorityHigh})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.wishes.Complete(w.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.events.Create(models.Event{Title: "first date", Date: "2025-01-15", Category: models.EventDate}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.trips.Create(models.Trip{
		Destination: "Paris",
		StartDate:   "2025-01-20",
		EndDate:     "2025-02-01",
		Type:        models.TripRomantic,
	}); err != nil {
		t.Fatal(err)
	}

	timeline := f.agg.Timeline()
	if len(timeline) != 3 {
		t.Fatalf("timeline = %+v", timeline)
	}

	// Wish completed today (2025-03-01) is newest, then the trip end
	// (2025-02-01), then the event (2025-01-15).
	if timeline[0].Type != models.AchievementWish || timeline[0].Score != 30 {
		t.Errorf("first = %+v", timeline[0])
	}
	if timeline[1].Type != models.AchievementTrip || timeline[1].Title != "Viagem para Paris" || timeline[1].Score != 50 {
		t.Errorf("second = %+v", timeline[1])
	}
	if timeline[2].Type != models.AchievementEvent || timeline[2].Score != 20 {
		t.Errorf("third = %+v", timeline[2])
	}
}

func TestTimelineTieKeepsSourceOrder(t *testing.T) {
	clock := testutil.At(2025, time.June, 15)
	f := newFixture(t, clock)

	// An event and a trip sharing the same completion day.
	if _, err := f.events.Create(models.Event{Title: "picnic", Date: "2025-05-01", Category: models.EventDate}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.trips.Create(models.Trip{
		Destination: "Oslo",
		StartDate:   "2025-04-28",
		EndDate:     "2025-05-01",
		Type:        models.TripAdventure,
	}); err != nil {
		t.Fatal(err)
	}

	timeline := f.agg.Timeline()
	if len(timeline) != 2 {
		t.Fatalf("timeline = %+v", timeline)
	}
	if timeline[0].Type != models.AchievementEvent || timeline[1].Type != models.AchievementTrip {
		t.Errorf("tie order = %s, %s; want event before trip", timeline[0].Type, timeline[1].Type)
	}
}

func TestStats(t *testing.T) {
	clock := testutil.At(2025, time.June, 15)
	f := newFixture(t, clock)

	// One achievement this month, one earlier this year, one last year.
	for _, date := range []string{"2025-06-02", "2025-01-10", "2024-12-31"} {
		if _, err := f.events.Create(models.Event{Title: "e", Date: date, Category: models.EventDate}); err != nil {
			t.Fatal(err)
		}
	}

	s := f.agg.Stats()
	if s.Total != 3 || s.ThisMonth != 1 || s.ThisYear != 2 {
		t.Errorf("stats = %+v", s)
	}
	if s.TotalScore != 3*ScoreEvent {
		t.Errorf("total score = %d", s.TotalScore)
	}
}

func TestCategoryStats(t *testing.T) {
	clock := testutil.At(2025, time.June, 15)
	f := newFixture(t, clock)

	w, err := f.wishes.Create(models.Wish{Title: "ring", Category: models.WishGifts, Priority: models.PriorityLow})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.wishes.Complete(w.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.events.Create(models.Event{Title: "past", Date: "2025-01-01", Category: models.EventDate}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.trips.Create(models.Trip{
		Destination: "Rome",
		StartDate:   "2025-02-01",
		EndDate:     "2025-02-05",
		Type:        models.TripCultural,
	}); err != nil {
		t.Fatal(err)
	}

	s := f.agg.CategoryStats()
	if s.Places != 1 || s.Experiences != 1 || s.Gifts != 1 || s.Goals != 0 {
		t.Errorf("categories = %+v", s)
	}
}

func TestRecent(t *testing.T) {
	clock := testutil.At(2025, time.June, 15)
	f := newFixture(t, clock)

	for _, date := range []string{"2025-01-01", "2025-02-01", "2025-03-01"} {
		if _, err := f.events.Create(models.Event{Title: date, Date: date, Category: models.EventDate}); err != nil {
			t.Fatal(err)
		}
	}

	recent := f.agg.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("recent = %+v", recent)
	}
	if recent[0].Title != "2025-03-01" || recent[1].Title != "2025-02-01" {
		t.Errorf("recent order = %s, %s", recent[0].Title, recent[1].Title)
	}
}
