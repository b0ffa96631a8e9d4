// Package prefs provides persistent key-value storage for user preferences.
//
// Preferences such as the theme mode are stored as plain strings keyed by
// name, the local equivalent of browser storage. Storage is backed by the
// shared SQLite database at ~/.config/termfolio/termfolio.db.
package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dferna40/termfolio/internal/database"
	"dferna40/termfolio/internal/retry"
)

// Repository defines the persistence interface for preferences.
type Repository interface {
	// Get returns the preference stored under key, or nil if not found.
	Get(key string) (*Preference, error)

	// Set upserts the value stored under key.
	Set(key, value string) error

	// Close releases database resources.
	Close() error
}

// SQLiteRepository implements Repository backed by a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

// Open creates or opens the repository at the default database path.
func Open() (*SQLiteRepository, error) {
	path, err := database.DefaultPath()
	if err != nil {
		return nil, err
	}
	return OpenAt(path)
}

// OpenAt creates or opens a SQLite database at the given path.
// The parent directory is created if it does not exist.
func OpenAt(path string) (*SQLiteRepository, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return r, nil
}

// migrate creates the preferences table if it doesn't exist.
func (r *SQLiteRepository) migrate() error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS preferences (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL DEFAULT '',
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);
	`
	if _, err := r.db.Exec(ddl); err != nil {
		return fmt.Errorf("prefs: migration failed: %w", err)
	}
	return nil
}

// Get returns the preference stored under key, or nil if not found.
func (r *SQLiteRepository) Get(key string) (*Preference, error) {
	row := r.db.QueryRow(`
		SELECT key, value, updated_at
		FROM preferences WHERE key = ?`, key)

	var p Preference
	var updatedStr string
	err := row.Scan(&p.Key, &p.Value, &updatedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("prefs: query failed: %w", err)
	}
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
	return &p, nil
}

// Set upserts the value stored under key. Writes blocked by another
// process's lock are retried briefly.
func (r *SQLiteRepository) Set(key, value string) error {
	err := retry.Do(context.Background(), retry.DefaultPolicy(), database.IsBusy, func() error {
		return r.upsert(key, value)
	})
	if err != nil {
		return fmt.Errorf("prefs: upsert failed: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) upsert(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Close releases database resources.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
