package phrase

import "errors"

// BatchSize is how many candidate phrases are on display at once during a
// review session.
const BatchSize = 4

var (
	// ErrNoSelection reports a verdict submitted with no phrase selected.
	// The session state does not change.
	ErrNoSelection = errors.New("no phrase selected")

	// ErrFinished reports a verdict submitted after the session reached a
	// terminal state.
	ErrFinished = errors.New("review session finished")
)

// State is the review session's position in its lifecycle.
type State int

const (
	// Shown: a batch of up to BatchSize candidates is on display.
	Shown State = iota
	// Done: the user accepted a phrase; terminal.
	Done
	// Exhausted: every candidate was judged bad; terminal.
	Exhausted
)

func (s State) String() string {
	switch s {
	case Shown:
		return "shown"
	case Done:
		return "done"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Review walks a fixed candidate list in batches. The candidate list is
// immutable for the life of the session; progress is a cursor into it plus
// the batch currently on display. A phrase judged bad leaves the display and
// is never shown again; once the whole batch has been judged, the next
// up-to-BatchSize unseen candidates are revealed, until none remain.
type Review struct {
	candidates []string
	cursor     int // index of the first candidate not yet revealed
	shown      []string
	state      State
}

// NewReview starts a session over candidates and reveals the first batch.
// An empty candidate list starts (and ends) Exhausted.
func NewReview(candidates []string) *Review {
	r := &Review{candidates: candidates}
	if !r.reveal() {
		r.state = Exhausted
	}
	return r
}

// reveal replaces the display with the next batch. Reports false when no
// candidates remain.
func (r *Review) reveal() bool {
	if r.cursor >= len(r.candidates) {
		return false
	}
	end := r.cursor + BatchSize
	if end > len(r.candidates) {
		end = len(r.candidates)
	}
	r.shown = append([]string(nil), r.candidates[r.cursor:end]...)
	r.cursor = end
	return true
}

// Shown returns the phrases currently on display.
func (r *Review) Shown() []string {
	return append([]string(nil), r.shown...)
}

func (r *Review) State() State {
	return r.state
}

// Good accepts the phrase at index i of the shown batch and ends the
// session.
func (r *Review) Good(i int) (string, error) {
	phrase, err := r.selected(i)
	if err != nil {
		return "", err
	}
	r.state = Done
	r.shown = nil
	return phrase, nil
}

// Bad rejects the phrase at index i of the shown batch. The phrase leaves
// the display; when the batch empties, the next batch is revealed, or the
// session ends Exhausted if none remains.
func (r *Review) Bad(i int) (string, error) {
	phrase, err := r.selected(i)
	if err != nil {
		return "", err
	}
	r.shown = append(r.shown[:i], r.shown[i+1:]...)
	if len(r.shown) == 0 && !r.reveal() {
		r.state = Exhausted
	}
	return phrase, nil
}

func (r *Review) selected(i int) (string, error) {
	if r.state != Shown {
		return "", ErrFinished
	}
	if i < 0 || i >= len(r.shown) {
		return "", ErrNoSelection
	}
	return r.shown[i], nil
}
