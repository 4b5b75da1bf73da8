// Package history persists spoken utterances to a local sqlite database so
// past sentences can be reviewed later.
package history

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS utterances (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	text      TEXT NOT NULL,
	spoken_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_utterances_spoken_at ON utterances(spoken_at);
`

// Utterance is one spoken sentence.
type Utterance struct {
	ID       int64
	Text     string
	SpokenAt time.Time
}

// Store wraps the utterance database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	// Single connection keeps writes serialized; the app is single-actor
	// anyway.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a spoken sentence. Empty text is ignored.
func (s *Store) Add(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if _, err := s.db.Exec(
		`INSERT INTO utterances (text, spoken_at) VALUES (?, ?)`,
		text, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("recording utterance: %w", err)
	}
	return nil
}

// Recent returns up to limit utterances, most recent first.
func (s *Store) Recent(limit int) ([]Utterance, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, text, spoken_at FROM utterances ORDER BY spoken_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying utterances: %w", err)
	}
	defer rows.Close()

	var out []Utterance
	for rows.Next() {
		var u Utterance
		if err := rows.Scan(&u.ID, &u.Text, &u.SpokenAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
