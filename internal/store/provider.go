// Package store implements the key-value persistence gateway. Each named
// key holds one JSON document; repositories own their keys exclusively.
package store

import "errors"

// ErrNoKey is returned by Get when a key has never been written.
var ErrNoKey = errors.New("store: key not found")

// Provider is the interface for raw keyed blob operations.
type Provider interface {
	// Get returns the stored bytes for key, or ErrNoKey when absent.
	Get(key string) ([]byte, error)
	// Put persists value under key unconditionally, replacing prior content.
	Put(key string, value []byte) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error
	// Keys returns all keys currently stored.
	Keys() ([]string, error)
	// Close releases backend resources.
	Close() error
}

// Well-known collection keys. Each is written by exactly one repository;
// the achievement aggregator only reads the borrowed ones.
const (
	KeyNotes     = "notes"
	KeyWishes    = "wishes"
	KeyCompleted = "completed"
	KeyEvents    = "events"
	KeyPhotos    = "photos"
	KeyTrips     = "trips"
	KeySettings  = "settings"
)
