package store

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/xkcd-viewer/internal/config"
	"github.com/ytget/xkcd-viewer/internal/model"
	"github.com/ytget/xkcd-viewer/internal/platform"
)

// SlotKey names the single persistence slot in every backing
const SlotKey = "last_comic_json"

// File names inside the app data directory
const (
	SlotFileName   = "last_comic.json"
	SQLiteFileName = "comics.db"
)

var (
	// ErrNotFound is returned by Load when the slot is empty
	ErrNotFound = errors.New("no saved comic")

	// ErrCorrupt is returned by Load when the slot content cannot be parsed
	ErrCorrupt = errors.New("saved comic is corrupt")
)

// Store holds at most one comic. Save overwrites the slot; Load reads it back.
// Implementations are not safe for overlapping calls.
type Store interface {
	Save(comic model.Comic) error
	Load() (model.Comic, error)
}

// Open returns the store for the configured backend. Unknown backends use
// the preferences store.
func Open(backend config.StorageBackend, app fyne.App) (Store, error) {
	switch backend {
	case config.StorageFile:
		dir, err := platform.GetAppDataDir(app)
		if err != nil {
			return nil, fmt.Errorf("open file store: %w", err)
		}
		return NewFileStore(filepath.Join(dir, SlotFileName)), nil
	case config.StorageSQLite:
		dir, err := platform.GetAppDataDir(app)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return OpenSQLiteStore(filepath.Join(dir, SQLiteFileName))
	case config.StoragePreferences:
	default:
		log.Printf("Unknown storage backend %q, using %s", backend, config.StoragePreferences)
	}
	return NewPreferencesStore(app.Preferences()), nil
}

// decodeSlot parses slot content, mapping parse failures to ErrCorrupt
func decodeSlot(data []byte) (model.Comic, error) {
	comic, err := model.DecodeComic(data)
	if err != nil {
		return model.Comic{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return comic, nil
}
