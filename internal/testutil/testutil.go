// Package testutil provides shared test helpers for setting up stores and clocks.
package testutil

import (
	"os"
	"testing"
	"time"

	"github.com/starford/wunjo/internal/store"
)

// TestStore creates a temporary file-backed store that is automatically
// cleaned up.
func TestStore(t *testing.T) (string, *store.File) {
	t.Helper()
	dir := t.TempDir()
	f, err := store.NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, f
}

// TestSQLite creates a temporary SQLite-backed store that is automatically
// cleaned up.
func TestSQLite(t *testing.T) *store.SQLite {
	t.Helper()
	dbFile, err := os.CreateTemp("", "wunjo-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := store.OpenSQLite(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// At builds a FixedClock pinned to noon of the given local calendar day.
func At(year int, month time.Month, day int) FixedClock {
	return FixedClock{Instant: time.Date(year, month, day, 12, 0, 0, 0, time.Local)}
}
