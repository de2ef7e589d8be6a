package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// StorageBackend selects where the last viewed comic is persisted
type StorageBackend string

const (
	StoragePreferences StorageBackend = "preferences"
	StorageFile        StorageBackend = "file"
	StorageSQLite      StorageBackend = "sqlite"
)

// RestorePolicy decides whether a failed startup restore is shown to the user
type RestorePolicy string

const (
	RestoreSilent RestorePolicy = "silent"
	RestoreNotify RestorePolicy = "notify"
)

// Settings keys for Fyne preferences
const (
	KeyStorageBackend = "storage_backend"
	KeyRestorePolicy  = "restore_policy"
	KeyEndpointURL    = "endpoint_url"
	KeyRequestTimeout = "request_timeout_sec"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultStorageBackend = StoragePreferences
	DefaultRestorePolicy  = RestoreSilent
	DefaultEndpointURL    = "https://xkcd.com"
	DefaultRequestTimeout = 15
	DefaultLanguage       = "system"
)

// Request timeout bounds, in seconds
const (
	MinRequestTimeout = 1
	MaxRequestTimeout = 120
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetStorageBackend returns the configured storage backend
func (s *Settings) GetStorageBackend() StorageBackend {
	backend := StorageBackend(s.app.Preferences().String(KeyStorageBackend))
	if !isKnownBackend(backend) {
		s.SetStorageBackend(DefaultStorageBackend)
		return DefaultStorageBackend
	}
	return backend
}

// SetStorageBackend sets the storage backend; unknown values reset to the default
func (s *Settings) SetStorageBackend(backend StorageBackend) {
	if !isKnownBackend(backend) {
		backend = DefaultStorageBackend
	}
	s.app.Preferences().SetString(KeyStorageBackend, string(backend))
}

// GetRestorePolicy returns how startup restore failures are reported
func (s *Settings) GetRestorePolicy() RestorePolicy {
	policy := RestorePolicy(s.app.Preferences().String(KeyRestorePolicy))
	if policy != RestoreSilent && policy != RestoreNotify {
		s.SetRestorePolicy(DefaultRestorePolicy)
		return DefaultRestorePolicy
	}
	return policy
}

// SetRestorePolicy sets the restore failure policy
func (s *Settings) SetRestorePolicy(policy RestorePolicy) {
	if policy != RestoreSilent && policy != RestoreNotify {
		policy = DefaultRestorePolicy
	}
	s.app.Preferences().SetString(KeyRestorePolicy, string(policy))
}

// GetEndpointURL returns the base URL comics are fetched from
func (s *Settings) GetEndpointURL() string {
	endpoint := s.app.Preferences().String(KeyEndpointURL)
	if endpoint == "" {
		s.SetEndpointURL(DefaultEndpointURL)
		return DefaultEndpointURL
	}
	return endpoint
}

// SetEndpointURL sets the base URL; trailing slashes are dropped
func (s *Settings) SetEndpointURL(endpoint string) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultEndpointURL
	}
	s.app.Preferences().SetString(KeyEndpointURL, endpoint)
}

// GetRequestTimeout returns the HTTP request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	switch {
	case value <= 0:
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		value = DefaultRequestTimeout
	case value > MaxRequestTimeout:
		s.SetRequestTimeoutSeconds(value)
		value = MaxRequestTimeout
	}
	return time.Duration(value) * time.Second
}

// SetRequestTimeoutSeconds sets the HTTP request timeout in seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetStorageBackendOptions returns available storage backends
func (s *Settings) GetStorageBackendOptions() []StorageBackend {
	return []StorageBackend{StoragePreferences, StorageFile, StorageSQLite}
}

// GetRestorePolicyOptions returns available restore policies
func (s *Settings) GetRestorePolicyOptions() []RestorePolicy {
	return []RestorePolicy{RestoreSilent, RestoreNotify}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func isKnownBackend(backend StorageBackend) bool {
	switch backend {
	case StoragePreferences, StorageFile, StorageSQLite:
		return true
	}
	return false
}
