// Package achievements merges completed wishes, past events, and completed
// trips into one unified timeline. The merge is a pure recomputation on
// every load; only the wish-origin subset is ever persisted, by the wishes
// repository.
package achievements

import (
	"fmt"
	"sort"
	"time"

	"github.com/starford/wunjo/internal/dates"
	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/repo"
)

// Scores per achievement origin.
const (
	ScoreTrip    = 50
	ScoreEvent   = 20
	ScoreDefault = 10
)

// Priority scores for wish-origin achievements.
var priorityScores = map[models.Priority]int{
	models.PriorityHigh:   30,
	models.PriorityMedium: 20,
	models.PriorityLow:    10,
}

// Aggregator borrows reads from the wishes, events, and trips repositories.
// It never writes into their keys.
type Aggregator struct {
	wishes *repo.Wishes
	events *repo.Events
	trips  *repo.Trips
	clock  models.Clock
}

// New creates the aggregator.
func New(wishes *repo.Wishes, events *repo.Events, trips *repo.Trips, clock models.Clock) *Aggregator {
	return &Aggregator{wishes: wishes, events: events, trips: trips, clock: clock}
}

// ScoreWish returns the score of a completed wish by priority.
func ScoreWish(p models.Priority) int {
	if s, ok := priorityScores[p]; ok {
		return s
	}
	return ScoreDefault
}

// Timeline recomputes the unified achievement timeline: completed wishes
// verbatim, then past events, then completed trips, stable-sorted by
// completion date descending. Concatenation order breaks ties, so the
// result is reproducible for identical inputs.
func (a *Aggregator) Timeline() []models.Achievement {
	var out []models.Achievement

	for _, w := range a.wishes.Completed() {
		out = append(out, models.Achievement{
			ID:          w.ID,
			Title:       w.Title,
			Type:        models.AchievementWish,
			Category:    w.Category,
			Priority:    w.Priority,
			Description: w.Description,
			Estimate:    w.Estimate,
			CompletedAt: w.CompletedAt,
			Score:       ScoreWish(w.Priority),
		})
	}

	for _, e := range a.events.Past() {
		out = append(out, models.Achievement{
			ID:          e.ID,
			Title:       e.Title,
			Type:        models.AchievementEvent,
			Description: e.Description,
			CompletedAt: e.Date,
			Score:       ScoreEvent,
		})
	}

	for _, t := range a.trips.List(models.TripCompleted) {
		out = append(out, models.Achievement{
			ID:          t.ID,
			Title:       fmt.Sprintf("Viagem para %s", t.Destination),
			Type:        models.AchievementTrip,
			Description: t.Description,
			CompletedAt: t.EndDate,
			Score:       ScoreTrip,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return completedTime(out[i]).After(completedTime(out[j]))
	})
	return out
}

// completedTime parses an achievement's completion stamp. Wish stamps are
// full RFC 3339 instants; event and trip stamps are calendar days.
func completedTime(a models.Achievement) time.Time {
	if t, err := time.Parse(time.RFC3339, a.CompletedAt); err == nil {
		return t
	}
	t, err := dates.ParseLocal(a.CompletedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Stats summarizes the timeline.
type Stats struct {
	Total      int `json:"total"`
	ThisMonth  int `json:"thisMonth"`
	ThisYear   int `json:"thisYear"`
	TotalScore int `json:"totalScore"`
}

// Stats counts achievements overall, in the current month and year, and sums
// their scores.
func (a *Aggregator) Stats() Stats {
	now := a.clock.Now()
	var s Stats
	for _, item := range a.Timeline() {
		s.Total++
		s.TotalScore += item.Score
		done := completedTime(item)
		if done.Year() == now.Year() {
			s.ThisYear++
			if done.Month() == now.Month() {
				s.ThisMonth++
			}
		}
	}
	return s
}

// CategoryStats buckets the timeline for the category panel. Trips count as
// places and events as experiences, matching their wish-category cousins.
type CategoryStats struct {
	Places      int `json:"places"`
	Experiences int `json:"experiences"`
	Gifts       int `json:"gifts"`
	Goals       int `json:"goals"`
}

// CategoryStats computes the per-category counts.
func (a *Aggregator) CategoryStats() CategoryStats {
	var s CategoryStats
	for _, item := range a.Timeline() {
		switch {
		case item.Type == models.AchievementTrip || item.Category == models.WishPlaces:
			s.Places++
		case item.Type == models.AchievementEvent || item.Category == models.WishExperiences:
			s.Experiences++
		case item.Category == models.WishGifts:
			s.Gifts++
		case item.Category == models.WishGoals:
			s.Goals++
		}
	}
	return s
}

// Recent returns the n most recent achievements.
func (a *Aggregator) Recent(n int) []models.Achievement {
	timeline := a.Timeline()
	if len(timeline) > n {
		timeline = timeline[:n]
	}
	return timeline
}
