package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var keyRe = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// File implements Provider with one JSON document per key in a flat data
// directory. Writes are atomic (tmp file, fsync, rename) so a crash mid-write
// leaves the prior blob untouched.
type File struct {
	root string // absolute path to the data directory
}

// NewFile creates a File provider rooted at dir, creating it if needed.
func NewFile(dir string) (*File, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("store: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("store: create root: %w", err)
	}
	return &File{root: abs}, nil
}

// Root returns the absolute data directory path.
func (f *File) Root() string { return f.root }

// keyPath validates key and resolves its file path. Keys are flat lowercase
// names, so traversal out of the data directory is impossible.
func (f *File) keyPath(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("store: invalid key %q", key)
	}
	return filepath.Join(f.root, key+".json"), nil
}

// Get returns the stored bytes for key.
func (f *File) Get(key string) ([]byte, error) {
	path, err := f.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoKey
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, nil
}

// Put atomically writes value: tmp file → fsync → rename.
func (f *File) Put(key string, value []byte) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".wunjo-tmp-*")
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("store: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("store: rename: %w", err)
	}
	success = true
	return nil
}

// Delete removes the blob for key. Absent keys are a no-op.
func (f *File) Delete(key string) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: delete %s: %w", key, err)
	}
	return nil
}

// Keys lists every stored key.
func (f *File) Keys() ([]string, error) {
	entries, err := os.ReadDir(f.root)
	if err != nil {
		return nil, fmt.Errorf("store: list keys: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(e.Name(), ".json")
		if keyRe.MatchString(key) {
			out = append(out, key)
		}
	}
	return out, nil
}

// Close is a no-op for the file backend.
func (f *File) Close() error { return nil }

var _ Provider = (*File)(nil)
