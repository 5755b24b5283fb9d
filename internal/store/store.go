package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/ytget/tracker-launcher/internal/model"
)

// File constants
const (
	DefaultPath     = "last_settings.json"
	FilePermissions = 0644
	JSONIndent      = "  "
)

// ErrMalformed is returned when the settings file exists but cannot be decoded
var ErrMalformed = errors.New("malformed settings file")

// Store reads and writes the settings record at a fixed path.
// It holds no state besides the path; the form owns the record.
type Store struct {
	path string
	log  zerolog.Logger
}

// New creates a store for the given path, DefaultPath when empty
func New(path string, log zerolog.Logger) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path, log: log}
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Save overwrites the settings file with all six values
func (s *Store) Save(settings model.Settings) error {
	data, err := json.MarshalIndent(settings, "", JSONIndent)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.WriteFile(s.path, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write settings file %s: %w", s.path, err)
	}

	s.log.Debug().Str("path", s.path).Msg("settings saved")
	return nil
}

// Load returns the saved record, or an empty one when nothing was saved yet
func (s *Store) Load() (model.Settings, error) {
	var settings model.Settings

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Debug().Str("path", s.path).Msg("no saved settings")
		return settings, nil
	}
	if err != nil {
		return settings, fmt.Errorf("failed to read settings file %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return model.Settings{}, fmt.Errorf("%w %s: %v", ErrMalformed, s.path, err)
	}

	s.log.Debug().Str("path", s.path).Msg("settings loaded")
	return settings, nil
}
