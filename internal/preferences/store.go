package preferences

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Store reads and writes preferences at a fixed path.
type Store struct {
	path string
}

// NewStore returns a store for the YAML file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the preferences file. A missing file yields Default. Fields
// absent from the file keep their default values.
func (s *Store) Load() (Preferences, error) {
	prefs := Default()
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return prefs, nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("read preferences %s: %w", s.path, err)
	}
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("unmarshal preferences %s: %w", s.path, err)
	}
	if err := prefs.Validate(); err != nil {
		return Preferences{}, fmt.Errorf("preferences %s: %w", s.path, err)
	}
	return prefs, nil
}

// Save writes prefs, creating the parent directory when needed. The file is
// replaced atomically.
func (s *Store) Save(prefs Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	prefs.Version = Version
	data, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create preferences directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".preferences-*.yaml")
	if err != nil {
		return fmt.Errorf("create preferences temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace preferences %s: %w", s.path, err)
	}
	return nil
}
