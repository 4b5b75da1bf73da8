package phrase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habla/internal/emotion"
)

type failingClassifier struct{}

func (failingClassifier) Classify(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
}

func testEngine(t *testing.T, phrases map[string][]string, order []string) *Engine {
	t.Helper()
	s := NewStore()
	for _, name := range order {
		s.Set(name, phrases[name])
	}
	return NewEngine(s, emotion.Static{}, nil)
}

func TestSuggestMatchesAnyKeywordSubstring(t *testing.T) {
	e := testEngine(t, map[string][]string{
		"food": {"I want an apple", "I am hungry"},
	}, []string{"food"})

	got, err := e.Suggest(context.Background(), "I want apple now", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"I want an apple", "I am hungry"}, got)
}

func TestSuggestRejectsFewerThanThreeKeywords(t *testing.T) {
	e := testEngine(t, map[string][]string{"food": {"I am hungry"}}, []string{"food"})

	for _, tc := range []struct {
		name string
		text string
		topN int
	}{
		{"two words", "hi there", 4},
		{"one word", "hungry", 10},
		{"empty", "", 0},
		{"whitespace only", "   \t  ", 4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.Suggest(context.Background(), tc.text, tc.topN)
			assert.ErrorIs(t, err, ErrNeedMoreWords)
			assert.Empty(t, got)
		})
	}
}

func TestSuggestIsCaseInsensitive(t *testing.T) {
	e := testEngine(t, map[string][]string{
		"salud": {"ME DUELE LA CABEZA"},
	}, []string{"salud"})

	got, err := e.Suggest(context.Background(), "me duele mucho", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"ME DUELE LA CABEZA"}, got)
}

func TestSuggestTruncatesToTopN(t *testing.T) {
	e := testEngine(t, map[string][]string{
		"a": {"want one", "want two", "want three"},
		"b": {"want four", "want five"},
	}, []string{"a", "b"})

	got, err := e.Suggest(context.Background(), "I want it", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"want one", "want two", "want three"}, got)
}

func TestSuggestTopNLargerThanMatchCount(t *testing.T) {
	e := testEngine(t, map[string][]string{
		"a": {"want one", "nothing here"},
	}, []string{"a"})

	got, err := e.Suggest(context.Background(), "I want it", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"want one"}, got)
}

func TestSuggestZeroTopN(t *testing.T) {
	e := testEngine(t, map[string][]string{"a": {"want one"}}, []string{"a"})

	got, err := e.Suggest(context.Background(), "I want it", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestPreservesStoreIterationOrder(t *testing.T) {
	e := testEngine(t, map[string][]string{
		"second": {"apple pie", "apple juice"},
		"first":  {"an apple a day"},
	}, []string{"first", "second"})

	got, err := e.Suggest(context.Background(), "apple apple apple", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"an apple a day", "apple pie", "apple juice"}, got)
}

func TestSuggestNoMatches(t *testing.T) {
	e := testEngine(t, map[string][]string{"a": {"nothing relevant"}}, []string{"a"})

	got, err := e.Suggest(context.Background(), "xyzzy quux frobnicate", 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestEveryResultContainsAKeyword(t *testing.T) {
	e := testEngine(t, map[string][]string{
		"mixed": {"Quiero agua fría", "Tengo hambre", "Buenos días", "agua para todos"},
	}, []string{"mixed"})

	keywords := []string{"quiero", "agua", "ya"}
	got, err := e.Suggest(context.Background(), strings.Join(keywords, " "), 10)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, p := range got {
		matched := false
		for _, k := range keywords {
			if strings.Contains(strings.ToLower(p), k) {
				matched = true
				break
			}
		}
		assert.True(t, matched, "phrase %q matches no keyword", p)
	}
}

func TestSuggestSurvivesClassifierFailure(t *testing.T) {
	s := NewStore()
	s.Set("food", []string{"I am hungry"})
	e := NewEngine(s, failingClassifier{}, nil)

	got, err := e.Suggest(context.Background(), "I am very hungry", 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"I am hungry"}, got)
}
