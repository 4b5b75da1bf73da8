// Package emotion labels the emotional tone of free text. The label is
// surfaced to the suggestion engine, which records it but does not act on it.
package emotion

import "context"

// Well-known labels. A classifier may return other strings; callers treat the
// label as opaque.
const (
	Positive = "POSITIVE"
	Negative = "NEGATIVE"
	Neutral  = "NEUTRAL"
)

// Classifier labels the overall emotional tone of a piece of text.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// Static always answers with the same label. It stands in for the model when
// no API key is configured and keeps the suggestion path usable offline.
type Static struct {
	Label string
}

func (s Static) Classify(context.Context, string) (string, error) {
	if s.Label == "" {
		return Neutral, nil
	}
	return s.Label, nil
}
