package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/tuido/internal/config"
	"github.com/idilsaglam/tuido/internal/store/boltstore"
	"github.com/idilsaglam/tuido/internal/store/filestore"
)

func TestOpenBackends(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(config.Storage{Backend: config.BackendFile, Path: filepath.Join(dir, "a.json")})
	require.NoError(t, err)
	require.IsType(t, &filestore.Store{}, s)
	require.NoError(t, s.Close())

	s, err = Open(config.Storage{Backend: config.BackendBolt, Path: filepath.Join(dir, "a.db")})
	require.NoError(t, err)
	require.IsType(t, &boltstore.Store{}, s)
	require.NoError(t, s.Save([]byte("x")))
	require.NoError(t, s.Close())

	_, err = Open(config.Storage{Backend: "sqlite"})
	require.ErrorIs(t, err, ErrUnknownBackend)
}
