package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ytget/xkcd-viewer/internal/model"
	"github.com/ytget/xkcd-viewer/internal/platform"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS comic_slot (
  slot TEXT PRIMARY KEY,
  payload TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// SQLiteStore keeps the slot as a single row in a SQLite database
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database at path
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one connection serializes access to the slot
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save upserts the slot row
func (s *SQLiteStore) Save(comic model.Comic) error {
	data, err := comic.Encode()
	if err != nil {
		return fmt.Errorf("save comic: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO comic_slot (slot, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(slot) DO UPDATE SET
		  payload = excluded.payload,
		  updated_at = excluded.updated_at
	`, SlotKey, string(data))
	if err != nil {
		return fmt.Errorf("save comic: %w", err)
	}
	return nil
}

// Load reads the slot row
func (s *SQLiteStore) Load() (model.Comic, error) {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM comic_slot WHERE slot = ?`, SlotKey).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Comic{}, ErrNotFound
	}
	if err != nil {
		return model.Comic{}, fmt.Errorf("load comic: %w", err)
	}
	if payload == "" {
		return model.Comic{}, ErrNotFound
	}
	return decodeSlot([]byte(payload))
}

// Close releases the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
