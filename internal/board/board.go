// Package board holds the word/category document: an ordered mapping from
// category name to the picture-word entries shown on that category's screen.
package board

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed wraps parse failures so callers can tell a corrupt document
// apart from an ordinary filesystem error.
var ErrMalformed = errors.New("malformed board document")

// Entry is one selectable word with its picture. Documents in the wild may
// omit either field; entries are kept as-is, missing fields and all.
type Entry struct {
	Word  string `json:"word"`
	Image string `json:"image"`
}

// Category is a named, ordered group of entries.
type Category struct {
	Name    string
	Entries []Entry
}

// Board preserves category order as it appears in the document. The on-disk
// format is a plain JSON object, so decoding goes through the token stream
// instead of a map to keep key order stable across a load/save round trip.
type Board struct {
	categories []Category
	index      map[string]int
}

func New() *Board {
	return &Board{index: make(map[string]int)}
}

// Set replaces the entries for a category, appending the category at the end
// of the order if it is new.
func (b *Board) Set(name string, entries []Entry) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[name]; ok {
		b.categories[i].Entries = entries
		return
	}
	b.index[name] = len(b.categories)
	b.categories = append(b.categories, Category{Name: name, Entries: entries})
}

// Categories returns the category names in document order.
func (b *Board) Categories() []string {
	names := make([]string, len(b.categories))
	for i, c := range b.categories {
		names[i] = c.Name
	}
	return names
}

// Entries returns the entries for a category, or ok=false if the category is
// not present.
func (b *Board) Entries(name string) ([]Entry, bool) {
	i, ok := b.index[name]
	if !ok {
		return nil, false
	}
	return b.categories[i].Entries, true
}

func (b *Board) Len() int {
	return len(b.categories)
}

func (b *Board) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected top-level object, got %v", tok)
	}
	b.categories = nil
	b.index = make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected category name, got %v", keyTok)
		}
		var entries []Entry
		if err := dec.Decode(&entries); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
		b.Set(name, entries)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (b *Board) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range b.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		entries := c.Entries
		if entries == nil {
			entries = []Entry{}
		}
		val, err := json.Marshal(entries)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Load reads the board document at path. A missing file is not an error: an
// empty board is returned and an empty document is written back so later
// loads find one. A file that exists but does not parse yields an empty
// board together with an ErrMalformed-wrapped error; the bad file is left
// untouched for inspection.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		b := New()
		if serr := Save(path, b); serr != nil {
			return b, fmt.Errorf("creating empty board document: %w", serr)
		}
		return b, nil
	}
	if err != nil {
		return New(), fmt.Errorf("reading board document: %w", err)
	}
	b := New()
	if err := json.Unmarshal(data, b); err != nil {
		return New(), fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}
	return b, nil
}

// Save serializes the board back to path, fully overwriting the document.
func Save(path string, b *Board) error {
	compact, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding board document: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "    "); err != nil {
		return fmt.Errorf("encoding board document: %w", err)
	}
	out.WriteByte('\n')
	if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing board document: %w", err)
	}
	return nil
}
