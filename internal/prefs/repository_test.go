package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"dferna40/termfolio/internal/database"
)

func tempRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "termfolio.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestGet_NotFound(t *testing.T) {
	r := tempRepo(t)

	got, err := r.Get("mode")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing key, got %+v", got)
	}
}

func TestSet_InsertAndGet(t *testing.T) {
	r := tempRepo(t)

	if err := r.Set("mode", "light"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := r.Get("mode")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected preference, got nil")
	}
	if got.Value != "light" {
		t.Errorf("expected value 'light', got %q", got.Value)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
}

func TestSet_Upsert(t *testing.T) {
	r := tempRepo(t)

	if err := r.Set("mode", "light"); err != nil {
		t.Fatalf("first Set failed: %v", err)
	}
	if err := r.Set("mode", "dark"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}

	got, err := r.Get("mode")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Value != "dark" {
		t.Errorf("expected value 'dark' after upsert, got %q", got.Value)
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 row after upsert, got %d", count)
	}
}

func TestGet_KeysAreIndependent(t *testing.T) {
	r := tempRepo(t)

	r.Set("mode", "light")
	r.Set("other", "value")

	mode, err := r.Get("mode")
	if err != nil {
		t.Fatalf("Get mode failed: %v", err)
	}
	if mode.Value != "light" {
		t.Errorf("expected mode 'light', got %q", mode.Value)
	}
}

func TestSQLiteRepository_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termfolio.db")

	r1, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	if err := r1.Set("mode", "light"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	r1.Close()

	r2, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed: %v", err)
	}
	defer r2.Close()

	got, err := r2.Get("mode")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Value != "light" {
		t.Fatalf("expected persisted 'light', got %+v", got)
	}
}

func TestSQLiteRepository_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "termfolio.db")
	r, err := OpenAt(path)
	if err != nil {
		t.Fatalf("OpenAt failed to create nested directory: %v", err)
	}
	defer r.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist at %s, got error: %v", path, err)
	}
}

func TestOpen_UsesDefaultPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termfolio.db")
	database.SetPath(path)
	t.Cleanup(database.ResetPath)

	r, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer r.Close()

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected database at overridden path %s: %v", path, err)
	}
}
