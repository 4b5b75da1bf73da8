// Package session carries the state shared across screens: the sentence
// under construction, the category in effect, and the feedback log. It is an
// explicit object handed to each screen, not a process-wide singleton.
package session

import (
	"habla/internal/feedback"
	"habla/internal/sentence"
)

// Session lives for one run of the application.
type Session struct {
	Sentence *sentence.Buffer
	Feedback *feedback.Recorder

	category string
}

func New(recorder *feedback.Recorder) *Session {
	return &Session{
		Sentence: &sentence.Buffer{},
		Feedback: recorder,
	}
}

// SetCategory records which category's words are on display.
func (s *Session) SetCategory(name string) {
	s.category = name
}

// Category returns the category in effect, or "" before one is chosen.
func (s *Session) Category() string {
	return s.category
}
