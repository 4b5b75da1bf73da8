package phrase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("phrase %d", i+1)
	}
	return out
}

func TestNewReviewShowsFirstBatch(t *testing.T) {
	r := NewReview(candidates(6))
	assert.Equal(t, Shown, r.State())
	assert.Equal(t, []string{"phrase 1", "phrase 2", "phrase 3", "phrase 4"}, r.Shown())
}

func TestNewReviewFewerCandidatesThanBatch(t *testing.T) {
	r := NewReview(candidates(2))
	assert.Equal(t, Shown, r.State())
	assert.Len(t, r.Shown(), 2)
}

func TestNewReviewEmptyCandidates(t *testing.T) {
	r := NewReview(nil)
	assert.Equal(t, Exhausted, r.State())
	assert.Empty(t, r.Shown())
}

func TestGoodEndsSession(t *testing.T) {
	r := NewReview(candidates(6))
	phrase, err := r.Good(1)
	require.NoError(t, err)
	assert.Equal(t, "phrase 2", phrase)
	assert.Equal(t, Done, r.State())

	_, err = r.Bad(0)
	assert.ErrorIs(t, err, ErrFinished)
}

func TestBadRemovesPhraseFromBatch(t *testing.T) {
	r := NewReview(candidates(6))
	phrase, err := r.Bad(2)
	require.NoError(t, err)
	assert.Equal(t, "phrase 3", phrase)
	assert.Equal(t, Shown, r.State())
	assert.Equal(t, []string{"phrase 1", "phrase 2", "phrase 4"}, r.Shown())
}

func TestSixCandidateSession(t *testing.T) {
	// Six candidates, batch of four: judging the whole first batch bad
	// reveals the remaining two; judging those bad exhausts the session.
	r := NewReview(candidates(6))

	judged := make(map[string]bool)
	for i := 0; i < BatchSize; i++ {
		phrase, err := r.Bad(0)
		require.NoError(t, err)
		require.False(t, judged[phrase], "phrase %q re-shown after bad verdict", phrase)
		judged[phrase] = true
	}

	assert.Equal(t, Shown, r.State())
	assert.Equal(t, []string{"phrase 5", "phrase 6"}, r.Shown())

	for i := 0; i < 2; i++ {
		phrase, err := r.Bad(0)
		require.NoError(t, err)
		require.False(t, judged[phrase])
		judged[phrase] = true
	}

	assert.Equal(t, Exhausted, r.State())
	assert.Empty(t, r.Shown())
	assert.Len(t, judged, 6)
}

func TestBadNeverReshowsJudgedPhrase(t *testing.T) {
	r := NewReview(candidates(10))
	seen := make(map[string]int)
	for r.State() == Shown {
		for _, p := range r.Shown() {
			seen[p]++
		}
		_, err := r.Bad(0)
		require.NoError(t, err)
	}
	// Every phrase was displayed, and marking bad never brought one back in
	// a later batch.
	assert.Len(t, seen, 10)
}

func TestVerdictWithoutSelection(t *testing.T) {
	r := NewReview(candidates(6))

	_, err := r.Good(-1)
	assert.ErrorIs(t, err, ErrNoSelection)
	_, err = r.Bad(4)
	assert.ErrorIs(t, err, ErrNoSelection)

	// A rejected verdict leaves the state untouched.
	assert.Equal(t, Shown, r.State())
	assert.Len(t, r.Shown(), 4)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "shown", Shown.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "exhausted", Exhausted.String())
}
