package database

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPathOverride(t *testing.T) {
	t.Cleanup(ResetPath)

	path := filepath.Join(t.TempDir(), "termfolio.db")
	SetPath(path)

	got, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath error: %v", err)
	}
	if got != path {
		t.Fatalf("DefaultPath = %q, want %q", got, path)
	}
}

func TestDefaultPathUsesAppDir(t *testing.T) {
	t.Cleanup(ResetPath)
	ResetPath()

	got, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir available: %v", err)
	}
	if filepath.Base(got) != dbFile || filepath.Base(filepath.Dir(got)) != appDir {
		t.Fatalf("DefaultPath = %q, want .../%s/%s", got, appDir, dbFile)
	}
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "termfolio.db")

	db, err := Open(path)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected database file at %s: %v", path, err)
	}
}

func TestIsBusy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "busy.db")

	holder, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer holder.Close()
	if _, err := holder.Exec(`CREATE TABLE t (x INTEGER)`); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tx, err := holder.Begin()
	if err != nil {
		t.Fatalf("Begin failed: %v", err)
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`INSERT INTO t VALUES (1)`); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	other, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(0)")
	if err != nil {
		t.Fatalf("second open failed: %v", err)
	}
	defer other.Close()

	_, err = other.Exec(`INSERT INTO t VALUES (2)`)
	if err == nil {
		t.Fatal("expected the second writer to be blocked")
	}
	if !IsBusy(err) {
		t.Errorf("IsBusy(%v) = false, want true", err)
	}

	if IsBusy(nil) || IsBusy(errors.New("database is locked")) {
		t.Error("IsBusy should only match SQLite errors")
	}
}
