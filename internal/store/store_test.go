package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func testFile(t *testing.T) *File {
	t.Helper()
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func testSQLite(t *testing.T) *SQLite {
	t.Helper()
	dbFile, err := os.CreateTemp("", "wunjo-store-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := OpenSQLite(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// providers returns one of each backend so shared behavior is checked on both.
func providers(t *testing.T) map[string]Provider {
	t.Helper()
	return map[string]Provider{
		"file":   testFile(t),
		"sqlite": testSQLite(t),
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Put(KeyNotes, []byte(`[{"id":1}]`)); err != nil {
				t.Fatal(err)
			}
			got, err := p.Get(KeyNotes)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != `[{"id":1}]` {
				t.Errorf("got %q", got)
			}
		})
	}
}

func TestGetMissingKey(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			_, err := p.Get(KeyTrips)
			if !errors.Is(err, ErrNoKey) {
				t.Errorf("err = %v, want ErrNoKey", err)
			}
		})
	}
}

func TestPutOverwrites(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Put(KeySettings, []byte(`{"theme":"light"}`)); err != nil {
				t.Fatal(err)
			}
			if err := p.Put(KeySettings, []byte(`{"theme":"dark"}`)); err != nil {
				t.Fatal(err)
			}
			got, err := p.Get(KeySettings)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != `{"theme":"dark"}` {
				t.Errorf("got %q", got)
			}
		})
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Delete(KeyPhotos); err != nil {
				t.Fatalf("delete absent key: %v", err)
			}
			if err := p.Put(KeyPhotos, []byte(`[]`)); err != nil {
				t.Fatal(err)
			}
			if err := p.Delete(KeyPhotos); err != nil {
				t.Fatal(err)
			}
			if _, err := p.Get(KeyPhotos); !errors.Is(err, ErrNoKey) {
				t.Errorf("err after delete = %v, want ErrNoKey", err)
			}
		})
	}
}

func TestKeys(t *testing.T) {
	for name, p := range providers(t) {
		t.Run(name, func(t *testing.T) {
			for _, k := range []string{KeyNotes, KeyWishes, KeyTrips} {
				if err := p.Put(k, []byte(`[]`)); err != nil {
					t.Fatal(err)
				}
			}
			keys, err := p.Keys()
			if err != nil {
				t.Fatal(err)
			}
			sort.Strings(keys)
			want := []string{KeyNotes, KeyTrips, KeyWishes}
			if len(keys) != len(want) {
				t.Fatalf("keys = %v, want %v", keys, want)
			}
			for i := range want {
				if keys[i] != want[i] {
					t.Fatalf("keys = %v, want %v", keys, want)
				}
			}
		})
	}
}

func TestFileRejectsBadKey(t *testing.T) {
	f := testFile(t)
	for _, k := range []string{"", "UPPER", "../escape", "has space", "1leading"} {
		if err := f.Put(k, []byte(`[]`)); err == nil {
			t.Errorf("Put(%q) accepted invalid key", k)
		}
	}
}

func TestFilePutLeavesNoTempFiles(t *testing.T) {
	f := testFile(t)
	if err := f.Put(KeyEvents, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(f.Root())
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != KeyEvents+".json" {
			t.Errorf("unexpected file left in data dir: %s", e.Name())
		}
	}
}

func TestFileSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Put(KeyNotes, []byte(`[1,2]`)); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewFile(dir)
	if err != nil {
		t.Fatal(err)
	}
	got, err := reopened.Get(KeyNotes)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `[1,2]` {
		t.Errorf("got %q", got)
	}
}

type note struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func TestLoadSaveRoundTrip(t *testing.T) {
	f := testFile(t)
	in := []note{{ID: 1, Title: "first"}, {ID: 2, Title: "second"}}
	if err := Save(f, KeyNotes, in); err != nil {
		t.Fatal(err)
	}
	out := Load(f, KeyNotes, []note(nil))
	if len(out) != 2 || out[0].Title != "first" || out[1].ID != 2 {
		t.Errorf("round trip = %+v", out)
	}
}

func TestLoadMissingKeyReturnsDefault(t *testing.T) {
	f := testFile(t)
	out := Load(f, KeyWishes, []note{})
	if len(out) != 0 {
		t.Errorf("got %+v, want empty default", out)
	}
}

func TestLoadCorruptDataReturnsDefault(t *testing.T) {
	f := testFile(t)
	path := filepath.Join(f.Root(), KeyNotes+".json")
	if err := os.WriteFile(path, []byte(`{not json`), 0o644); err != nil {
		t.Fatal(err)
	}
	out := Load(f, KeyNotes, []note{{ID: 9, Title: "fallback"}})
	if len(out) != 1 || out[0].ID != 9 {
		t.Errorf("got %+v, want fallback default", out)
	}
}
