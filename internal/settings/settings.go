// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package settings persists small named string values, such as the active
// data source path, in a SQLite database.
package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Unset is the value Get reports for a key that has no stored value. Callers
// treat it as "use the default".
const Unset = "0"

// PathKey names the active data source directory.
const PathKey = "Path"

// Store is a key/value table in a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens or creates the settings database at path, creating parent
// directories as needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating settings directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening settings database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating settings schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the value stored under key, or Unset when the key is absent
// or holds an empty string.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Unset, nil
		}
		return "", fmt.Errorf("reading setting %s: %w", key, err)
	}
	if value == "" {
		return Unset, nil
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("writing setting %s: %w", key, err)
	}
	return nil
}

// Reset stores Unset under key.
func (s *Store) Reset(ctx context.Context, key string) error {
	return s.Set(ctx, key, Unset)
}
