package repo

import (
	"testing"
	"time"

	"github.com/starford/wunjo/internal/models"
	"github.com/starford/wunjo/internal/store"
	"github.com/starford/wunjo/internal/testutil"
)

// deps builds a fresh file-backed store with a clock pinned to the given
// day. Every repo test goes through this so time-derived behavior stays
// deterministic.
func deps(t *testing.T, year int, month time.Month, day int) (store.Provider, models.Clock, models.IDGenerator) {
	t.Helper()
	_, p := testutil.TestStore(t)
	clock := testutil.At(year, month, day)
	return p, clock, models.NewMonotonicID(clock)
}

func strPtr(s string) *string { return &s }

func TestMatchCategory(t *testing.T) {
	cases := []struct {
		filter, category string
		want             bool
	}{
		{"", "places", true},
		{"all", "places", true},
		{"places", "places", true},
		{"places", "gifts", false},
	}
	for _, c := range cases {
		if got := matchCategory(c.filter, c.category); got != c.want {
			t.Errorf("matchCategory(%q, %q) = %v", c.filter, c.category, got)
		}
	}
}

func TestMatchQuery(t *testing.T) {
	if !matchQuery("", "anything") {
		t.Error("empty query should match")
	}
	if !matchQuery("LAKE", "Walk by the lake", "other") {
		t.Error("query should be case-insensitive")
	}
	if matchQuery("mountain", "Walk by the lake") {
		t.Error("non-substring should not match")
	}
}
