// Package storage persists the application state as a single JSON blob on
// disk. Corrupt or missing files never surface as hard failures; the
// sanitizer downstream absorbs whatever comes back.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/saifk/ramadan-companion/internal/model"
)

const stateFileName = "state.json"

// DefaultDir returns the root data directory (~/.rdc).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".rdc"), nil
}

// Store reads and writes the state blob under one directory. Inject it
// where persistence is needed; there is no package-level state.
type Store struct {
	path string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, stateFileName)}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the raw persisted blob, or nil when no usable state exists.
// A file that is not valid JSON is backed up to .corrupt and treated as
// absent so a damaged disk write cannot brick the app.
func (s *Store) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", s.path, err)
	}
	if !json.Valid(data) {
		backupPath := s.path + ".corrupt"
		_ = os.Rename(s.path, backupPath)
		return nil, fmt.Errorf("corrupt JSON in %s (backed up to %s)", s.path, backupPath)
	}
	return data, nil
}

// Save atomically writes the state blob: temp file then rename.
func (s *Store) Save(state *model.AppState) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
