package models

import (
	"sync"
	"time"
)

// Clock abstracts time retrieval so derived statuses and date bucketing are
// deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	NextID() int64
}

// MonotonicID generates millisecond-timestamp identifiers that are bumped
// past the previous value when two records are created within the same
// clock tick, so ids stay unique and roughly creation-ordered.
type MonotonicID struct {
	clock Clock

	mu   sync.Mutex
	last int64
}

// NewMonotonicID creates a generator driven by the given clock.
func NewMonotonicID(clock Clock) *MonotonicID {
	if clock == nil {
		clock = RealClock{}
	}
	return &MonotonicID{clock: clock}
}

// NextID returns the next identifier.
func (g *MonotonicID) NextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.clock.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
