// Package store provides a SQLite-backed snapshot store for computed cost tables.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Snapshots persists opaque payloads by key.
type Snapshots struct {
	db *sql.DB
}

// Open opens or creates the snapshot database at the given path.
func Open(dbPath string) (*Snapshots, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Snapshots{db: db}, nil
}

// Close closes the snapshot database.
func (s *Snapshots) Close() error {
	return s.db.Close()
}

// Load returns the payload stored under key. The bool is false when nothing is stored.
func (s *Snapshots) Load(key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM cost_snapshots WHERE snapshot_key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("loading snapshot %q: %w", key, err)
	}
	return payload, true, nil
}

// Save replaces the payload stored under key.
func (s *Snapshots) Save(key string, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`INSERT OR REPLACE INTO cost_snapshots (snapshot_key, payload, updated_at)
		VALUES (?, ?, ?)`, key, payload, now)
	if err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

// UpdatedAt reports when key was last saved.
func (s *Snapshots) UpdatedAt(key string) (time.Time, bool, error) {
	var raw string
	err := s.db.QueryRow("SELECT updated_at FROM cost_snapshots WHERE snapshot_key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parsing updated_at: %w", err)
	}
	return t, true, nil
}

// Clear removes every stored snapshot.
func (s *Snapshots) Clear() error {
	_, err := s.db.Exec("DELETE FROM cost_snapshots")
	return err
}
