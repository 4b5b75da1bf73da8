package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileCreatesEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())

	// First-ever load writes an empty document back so the next load finds one.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(data))
}

func TestLoadSingleCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"food": [{"word":"apple","image":"a.png"}]}`), 0644))

	b, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []string{"food"}, b.Categories())

	entries, ok := b.Entries("food")
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "apple", entries[0].Word)
	assert.Equal(t, "a.png", entries[0].Image)
}

func TestLoadPreservesCategoryOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	doc := `{"zoo": [], "food": [{"word":"apple","image":"a.png"}], "casa": [{"word":"cama","image":"c.png"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	b, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zoo", "food", "casa"}, b.Categories())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "board.json")
	doc := `{"comida": [{"word":"manzana","image":"img/manzana.png"},{"word":"pan","image":"img/pan.png"}], "familia": [{"word":"madre","image":"img/madre.png"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	b, err := Load(path)
	require.NoError(t, err)

	out := filepath.Join(dir, "saved.json")
	require.NoError(t, Save(out, b))

	first, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(first))

	// Saving the reloaded board reproduces the same bytes: order survives.
	b2, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, b.Categories(), b2.Categories())
	require.NoError(t, Save(out, b2))
	second, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestLoadMalformedFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	bad := []byte(`{"food": [{"word":"apple"`)
	require.NoError(t, os.WriteFile(path, bad, 0644))

	b, err := Load(path)
	require.ErrorIs(t, err, ErrMalformed)
	assert.Equal(t, 0, b.Len())

	// The corrupt document must not be overwritten.
	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	assert.Equal(t, bad, data)
}

func TestLoadNonObjectDocumentIsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	require.NoError(t, os.WriteFile(path, []byte(`["not", "an", "object"]`), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestLoadToleratesMissingEntryFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	doc := `{"food": [{"word":"apple"}, {"image":"b.png"}, {}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	b, err := Load(path)
	require.NoError(t, err)
	entries, ok := b.Entries("food")
	require.True(t, ok)
	require.Len(t, entries, 3)
	assert.Equal(t, "apple", entries[0].Word)
	assert.Empty(t, entries[0].Image)
	assert.Equal(t, "b.png", entries[1].Image)
	assert.Empty(t, entries[2].Word)
}

func TestSetReplacesExistingCategoryInPlace(t *testing.T) {
	b := New()
	b.Set("food", []Entry{{Word: "apple"}})
	b.Set("home", []Entry{{Word: "bed"}})
	b.Set("food", []Entry{{Word: "bread"}})

	assert.Equal(t, []string{"food", "home"}, b.Categories())
	entries, _ := b.Entries("food")
	require.Len(t, entries, 1)
	assert.Equal(t, "bread", entries[0].Word)
}

func TestEntriesUnknownCategory(t *testing.T) {
	b := New()
	_, ok := b.Entries("nope")
	assert.False(t, ok)
}
