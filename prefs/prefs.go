// Package prefs persists the audio preference pair
// One JSON slot file holds {"enabled": bool, "volume": float}
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/lixenwraith/netrunner/constants"
)

// FileName is the slot file name inside the config directory
const FileName = "netrunner.audio.json"

// Audio is the persisted audio preference
type Audio struct {
	Enabled bool    `json:"enabled"`
	Volume  float64 `json:"volume"`
}

// Default returns the preference used when nothing valid is stored
func Default() Audio {
	return Audio{Enabled: true, Volume: constants.AudioDefaultVolume}
}

// Normalize clamps volume to [0, 1]
func (a Audio) Normalize() Audio {
	switch {
	case math.IsNaN(a.Volume) || a.Volume < 0:
		a.Volume = 0
	case a.Volume > 1:
		a.Volume = 1
	}
	return a
}

// DefaultPath returns the slot file location under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "netrunner", FileName), nil
}

// decode parses a slot file; missing fields keep their defaults
func decode(data []byte) (Audio, error) {
	a := Default()
	if err := json.Unmarshal(data, &a); err != nil {
		return Default(), fmt.Errorf("parse audio prefs: %w", err)
	}
	return a.Normalize(), nil
}

// Load reads the slot file at path
// A missing or corrupt file yields defaults; the error is returned for logging only
func Load(path string) (Audio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("read audio prefs: %w", err)
	}
	return decode(data)
}

// Save writes a to path atomically, creating parent directories
func Save(path string, a Audio) error {
	data, err := json.Marshal(a.Normalize())
	if err != nil {
		return fmt.Errorf("encode audio prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write audio prefs: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace audio prefs: %w", err)
	}
	return nil
}

// Store is the in-memory preference backed by its slot file
// Reads happen once at open; every change is written through
type Store struct {
	path string

	mu      sync.RWMutex
	current Audio
}

// Open loads the store from path; the returned error is informational
func Open(path string) (*Store, error) {
	a, err := Load(path)
	return &Store{path: path, current: a}, err
}

// Path returns the slot file location
func (s *Store) Path() string {
	return s.path
}

// Get returns the current preference
func (s *Store) Get() Audio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the preference and persists it
func (s *Store) Set(a Audio) error {
	a = a.Normalize()
	s.mu.Lock()
	s.current = a
	s.mu.Unlock()
	return Save(s.path, a)
}

// SetEnabled updates the enabled flag and persists
func (s *Store) SetEnabled(enabled bool) error {
	a := s.Get()
	a.Enabled = enabled
	return s.Set(a)
}

// SetVolume updates the volume and persists
func (s *Store) SetVolume(v float64) error {
	a := s.Get()
	a.Volume = v
	return s.Set(a)
}

// reload replaces the in-memory value from disk without writing back
func (s *Store) reload() (Audio, error) {
	a, err := Load(s.path)
	if err != nil {
		return s.Get(), err
	}
	s.mu.Lock()
	changed := s.current != a
	s.current = a
	s.mu.Unlock()
	if !changed {
		return a, errUnchanged
	}
	return a, nil
}

var errUnchanged = errors.New("unchanged")
