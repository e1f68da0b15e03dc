package storage

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreGetSet(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v", ok, err)
	}

	if err := store.Set("a", "1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set("a", "2"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	if err := store.Set("b", "x"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	v, ok, err := store.Get("a")
	if err != nil || !ok || v != "2" {
		t.Errorf("Get(a) = %q, %v, %v; want \"2\"", v, ok, err)
	}

	if v, ok, err := store.Get("b"); err != nil || !ok || v != "x" {
		t.Errorf("Get(b) = %q, %v, %v; want \"x\"", v, ok, err)
	}

	if err := store.Delete("a"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get("a"); ok {
		t.Error("deleted key still present")
	}
	if err := store.Delete("a"); err != nil {
		t.Errorf("Delete() of a missing key failed: %v", err)
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if err := store.Set(BestScoreKey, "77"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got := NewBestScoreSlot(store, BestScoreKey, nil).Load(); got != 77 {
		t.Errorf("Load() after reopen = %d, want 77", got)
	}
}

func TestBestScoreSlotSave(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		save   int
		want   string
	}{
		{"higher score replaces", "80", 120, "120"},
		{"lower score is ignored", "80", 50, "80"},
		{"equal score is ignored", "80", 80, "80"},
		{"corrupt value is replaced", "abc", 10, "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if err := store.Set(BestScoreKey, tt.stored); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}

			NewBestScoreSlot(store, BestScoreKey, nil).Save(tt.save)

			got, _, err := store.Get(BestScoreKey)
			if err != nil {
				t.Fatalf("Get() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("stored = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBestScoreSlotLoad(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   int
	}{
		{"missing", nil, 0},
		{"number", ptr("300"), 300},
		{"padded", ptr(" 42\n"), 42},
		{"not a number", ptr("lots"), 0},
		{"negative", ptr("-5"), 0},
		{"empty", ptr(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openTestStore(t)
			if tt.stored != nil {
				if err := store.Set(BestScoreKey, *tt.stored); err != nil {
					t.Fatalf("Set() failed: %v", err)
				}
			}
			if got := NewBestScoreSlot(store, BestScoreKey, nil).Load(); got != tt.want {
				t.Errorf("Load() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBestScoreSlotLogsCorruptValue(t *testing.T) {
	store := openTestStore(t)
	if err := store.Set(BestScoreKey, "garbage"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	var buf bytes.Buffer
	logger := log.New(&buf)
	if got := NewBestScoreSlot(store, BestScoreKey, logger).Load(); got != 0 {
		t.Errorf("Load() = %d, want 0", got)
	}
	if !strings.Contains(buf.String(), "unreadable best score") {
		t.Errorf("log = %q, want a warning", buf.String())
	}
}

func TestBestScoreSlotClosedStore(t *testing.T) {
	store := openTestStore(t)
	slot := NewBestScoreSlot(store, BestScoreKey, log.New(&bytes.Buffer{}))
	store.Close()

	// Failures stay inside the slot.
	slot.Save(10)
	if got := slot.Load(); got != 0 {
		t.Errorf("Load() on closed store = %d, want 0", got)
	}
}

func TestBestScoreSlotReset(t *testing.T) {
	store := openTestStore(t)
	slot := NewBestScoreSlot(store, BestScoreKey, nil)
	slot.Save(99)
	if err := slot.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if got := slot.Load(); got != 0 {
		t.Errorf("Load() after reset = %d, want 0", got)
	}
}

func ptr(s string) *string { return &s }
