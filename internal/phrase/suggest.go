package phrase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"habla/internal/emotion"
)

// MinKeywords is the smallest number of whitespace-separated tokens the
// suggestion engine accepts.
const MinKeywords = 3

// ErrNeedMoreWords reports a suggestion request whose input tokenized into
// fewer than MinKeywords tokens. It is a validation failure, not a fault:
// nothing changes and the caller may retry with more input.
var ErrNeedMoreWords = errors.New("need at least 3 keywords")

// Engine matches free text against the phrase template store.
type Engine struct {
	store      *Store
	classifier emotion.Classifier
	log        *zap.Logger
}

func NewEngine(store *Store, classifier emotion.Classifier, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	if classifier == nil {
		classifier = emotion.Static{}
	}
	return &Engine{store: store, classifier: classifier, log: log}
}

// Suggest returns up to topN candidate phrases for freeText. A phrase is a
// candidate when any input token appears, case-insensitively, as a substring
// of the phrase text. Candidates keep store iteration order; there is no
// ranking and no deduplication.
//
// The emotional tone of the input is classified and logged but does not
// filter or reorder the result. The original behaved this way and the
// intent behind the unused label is not evidenced, so it stays a recorded
// no-op rather than becoming a filter.
func (e *Engine) Suggest(ctx context.Context, freeText string, topN int) ([]string, error) {
	keywords := strings.Fields(freeText)
	if len(keywords) < MinKeywords {
		return nil, ErrNeedMoreWords
	}

	label, err := e.classifier.Classify(ctx, strings.Join(keywords, " "))
	if err != nil {
		// Tone is informational only; a classifier outage must not block
		// suggestions.
		e.log.Warn("emotion classification failed", zap.Error(err))
	} else {
		e.log.Info("emotion classified",
			zap.String("label", label),
			zap.Int("keywords", len(keywords)))
	}

	matches := e.match(keywords)
	if topN < 0 {
		topN = 0
	}
	if len(matches) > topN {
		matches = matches[:topN]
	}
	return matches, nil
}

func (e *Engine) match(keywords []string) []string {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	var matches []string
	e.store.Each(func(_, p string) {
		text := strings.ToLower(p)
		for _, k := range lowered {
			if strings.Contains(text, k) {
				matches = append(matches, p)
				return
			}
		}
	})
	return matches
}
