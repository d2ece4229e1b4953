package storage

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestJSONStoreInitAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := store.Set("habits", `[]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get("habits")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if value != `[]` {
		t.Errorf("Get() value = %q, want %q", value, `[]`)
	}
}

func TestJSONStoreGetAbsentKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	_, ok, err := store.Get("categories")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true for absent key, want false")
	}
}

func TestJSONStoreInitRefusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.json")
	store := NewJSONStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("first Init() error = %v", err)
	}
	if err := store.Init(); err == nil {
		t.Error("second Init() = nil, want error")
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.json")
	store := NewJSONStore(path)

	err := store.Load()
	if err == nil {
		t.Fatal("Load() = nil for missing file, want error")
	}
	if !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Load() error = %v, want mention of not initialized", err)
	}
}

func TestJSONStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.json")

	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Set("habits", `[{"id":"h1"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := NewJSONStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	value, ok, err := reopened.Get("habits")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != `[{"id":"h1"}]` {
		t.Errorf("Get() = %q, %v; want persisted record", value, ok)
	}
}

func TestJSONStoreGetBeforeLoad(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "habitkit.json"))

	if _, _, err := store.Get("habits"); err == nil {
		t.Error("Get() before Load = nil, want error")
	}
	if err := store.Set("habits", "[]"); err == nil {
		t.Error("Set() before Load = nil, want error")
	}
}

func TestSQLiteStoreInitAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.db")
	store := NewSQLiteStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer store.Close()

	if err := store.Set("categories", `[{"id":"1"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, ok, err := store.Get("categories")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != `[{"id":"1"}]` {
		t.Errorf("Get() = %q, %v; want stored record", value, ok)
	}
}

func TestSQLiteStoreGetAbsentKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.db")
	store := NewSQLiteStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer store.Close()

	_, ok, err := store.Get("habits")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true for absent key, want false")
	}
}

func TestSQLiteStoreSetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.db")
	store := NewSQLiteStore(path)

	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer store.Close()

	if err := store.Set("habits", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set("habits", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	value, _, err := store.Get("habits")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if value != "second" {
		t.Errorf("Get() = %q, want %q", value, "second")
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "habitkit.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := store.Set("habits", `[{"id":"h1"}]`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get("habits")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || value != `[{"id":"h1"}]` {
		t.Errorf("Get() = %q, %v; want persisted record", value, ok)
	}
}
