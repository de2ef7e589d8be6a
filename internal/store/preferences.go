package store

import (
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/ytget/xkcd-viewer/internal/model"
)

// PreferencesStore keeps the slot as a string entry in Fyne preferences
type PreferencesStore struct {
	prefs fyne.Preferences
}

// NewPreferencesStore creates a store over the given preferences
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Save writes the comic's canonical form under SlotKey
func (s *PreferencesStore) Save(comic model.Comic) error {
	data, err := comic.Encode()
	if err != nil {
		return fmt.Errorf("save comic: %w", err)
	}
	s.prefs.SetString(SlotKey, string(data))
	return nil
}

// Load reads the comic stored under SlotKey
func (s *PreferencesStore) Load() (model.Comic, error) {
	raw := s.prefs.String(SlotKey)
	if raw == "" {
		return model.Comic{}, ErrNotFound
	}
	return decodeSlot([]byte(raw))
}
