package store

import (
	"encoding/json"
	"fmt"
)

// Load returns the value stored under key decoded into T, or def when the
// key is absent or the stored bytes fail to decode. A corrupt record set
// degrades to the default silently; it never raises to the caller.
func Load[T any](p Provider, key string, def T) T {
	data, err := p.Get(key)
	if err != nil {
		return def
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def
	}
	return v
}

// Save serializes v and persists it under key, overwriting prior content.
func Save[T any](p Provider, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.Put(key, data); err != nil {
		return fmt.Errorf("store: save %s: %w", key, err)
	}
	return nil
}
