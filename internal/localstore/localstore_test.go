package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get("session/token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("session/token", "t1"))
	require.NoError(t, s.Set("session/identity", `{"name":"Ann"}`))
	require.NoError(t, s.Set("theme/preference", "dark"))

	value, ok, err := s.Get("session/token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", value)

	// Last write wins
	require.NoError(t, s.Set("session/token", "t2"))
	value, _, err = s.Get("session/token")
	require.NoError(t, err)
	assert.Equal(t, "t2", value)

	keys, err := s.Keys("session/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"session/token", "session/identity"}, keys)

	require.NoError(t, s.Delete("session/token"))
	_, ok, err = s.Get("session/token")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is not an error
	require.NoError(t, s.Delete("session/token"))

	// Foreign namespaces are untouched
	value, ok, err = s.Get("theme/preference")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemory())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	f, err := OpenFile(path)
	require.NoError(t, err)

	testStore(t, f)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	f, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Set("session/token", "t1"))

	reopened, err := OpenFile(path)
	require.NoError(t, err)

	value, ok, err := reopened.Get("session/token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "t1", value)
}
