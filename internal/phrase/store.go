// Package phrase holds the pre-authored phrase templates, the keyword
// suggestion engine over them, and the batch review session for judging
// suggested phrases.
package phrase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed wraps parse failures of the phrase template document.
var ErrMalformed = errors.New("malformed phrase document")

type category struct {
	name    string
	phrases []string
}

// Store is the ordered mapping from category name to its candidate phrases.
// Iteration order is document order; the suggestion contract depends on it.
type Store struct {
	categories []category
	index      map[string]int
}

func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Set replaces the phrases for a category, appending the category at the end
// of the order if it is new.
func (s *Store) Set(name string, phrases []string) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[name]; ok {
		s.categories[i].phrases = phrases
		return
	}
	s.index[name] = len(s.categories)
	s.categories = append(s.categories, category{name: name, phrases: phrases})
}

// Categories returns the category names in document order.
func (s *Store) Categories() []string {
	names := make([]string, len(s.categories))
	for i, c := range s.categories {
		names[i] = c.name
	}
	return names
}

// Phrases returns the phrases for a category in document order.
func (s *Store) Phrases(name string) ([]string, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.categories[i].phrases, true
}

// Each visits every phrase in store iteration order: categories as they
// appear in the document, phrases in per-category list order.
func (s *Store) Each(fn func(category, phrase string)) {
	for _, c := range s.categories {
		for _, p := range c.phrases {
			fn(c.name, p)
		}
	}
}

func (s *Store) Len() int {
	n := 0
	for _, c := range s.categories {
		n += len(c.phrases)
	}
	return n
}

func (s *Store) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected top-level object, got %v", tok)
	}
	s.categories = nil
	s.index = make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected category name, got %v", keyTok)
		}
		var phrases []string
		if err := dec.Decode(&phrases); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		s.Set(name, phrases)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// LoadStore reads the phrase template document at path. A missing file
// yields an empty store for the rest of the session; unlike the board
// document, nothing is written back. A file that exists but does not parse
// yields an empty store and an ErrMalformed-wrapped error.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return NewStore(), nil
	}
	if err != nil {
		return NewStore(), fmt.Errorf("reading phrase document: %w", err)
	}
	s := NewStore()
	if err := json.Unmarshal(data, s); err != nil {
		return NewStore(), fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return s, nil
}
