package filestore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is used when no path is configured. It is resolved
// against the working directory.
const DefaultFileName = "todos.json"

// Store keeps the serialized list in one human-readable file.
// No locking; fine for a local single-user tool.
type Store struct {
	path string
}

// New returns a store over path. An empty path means DefaultFileName in
// the working directory.
func New(path string) (*Store, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getwd: %w", err)
		}
		path = filepath.Join(wd, DefaultFileName)
	}
	return &Store{path: path}, nil
}

func (s *Store) Path() string { return s.path }

// Load returns the file contents. A missing file reads as empty.
func (s *Store) Load() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// Save replaces the file contents atomically (temp file + rename).
func (s *Store) Save(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
