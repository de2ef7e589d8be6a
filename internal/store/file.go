package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ytget/xkcd-viewer/internal/model"
	"github.com/ytget/xkcd-viewer/internal/platform"
)

// FileStore keeps the slot as one flat file
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the slot file location
func (s *FileStore) Path() string {
	return s.path
}

// Save replaces the slot file with the comic's canonical form
func (s *FileStore) Save(comic model.Comic) error {
	data, err := comic.Encode()
	if err != nil {
		return fmt.Errorf("save comic: %w", err)
	}
	if err := platform.WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("save comic: %w", err)
	}
	return nil
}

// Load reads the slot file. A missing or empty file is ErrNotFound.
func (s *FileStore) Load() (model.Comic, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return model.Comic{}, ErrNotFound
	}
	if err != nil {
		return model.Comic{}, fmt.Errorf("load comic: %w", err)
	}
	if len(data) == 0 {
		return model.Comic{}, ErrNotFound
	}
	return decodeSlot(data)
}
