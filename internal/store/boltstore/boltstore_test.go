package boltstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyDatabase(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	defer s.Close()

	b, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestSaveLoadAcrossReopen(t *testing.T) {
	p := filepath.Join(t.TempDir(), "todos.db")
	s, err := Open(p)
	require.NoError(t, err)
	require.NoError(t, s.Save([]byte(`[{"a":1}]`)))
	require.NoError(t, s.Close())

	s, err = Open(p)
	require.NoError(t, err)
	defer s.Close()
	b, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, `[{"a":1}]`, string(b))
	require.Equal(t, p, s.Path())
}
