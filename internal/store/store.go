// Package store persists the serialized todo list. Backends only move
// bytes; encoding belongs to the todolist package.
package store

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/tuido/internal/config"
	"github.com/idilsaglam/tuido/internal/store/boltstore"
	"github.com/idilsaglam/tuido/internal/store/filestore"
)

// Store reads and writes the whole serialized list. Load returns empty
// bytes when nothing was saved yet.
type Store interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}

var ErrUnknownBackend = errors.New("unknown storage backend")

// Open returns the backend selected by cfg.
func Open(cfg config.Storage) (Store, error) {
	switch cfg.Backend {
	case config.BackendFile, "":
		s, err := filestore.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case config.BackendBolt:
		s, err := boltstore.Open(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open bolt store: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
}
