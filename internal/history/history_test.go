package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndRecent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Add("quiero agua"))
	require.NoError(t, s.Add("tengo hambre"))
	require.NoError(t, s.Add("me duele la cabeza"))

	got, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Most recent first; identical timestamps fall back to insert order.
	assert.Equal(t, "me duele la cabeza", got[0].Text)
	assert.Equal(t, "quiero agua", got[2].Text)
}

func TestRecentHonorsLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Add("frase"))
	}
	got, err := s.Recent(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAddIgnoresEmptyText(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Add("   "))
	got, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Add("hola"))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	got, err := s2.Recent(10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
