// Package sentence holds the utterance under construction.
package sentence

import "strings"

// Buffer is the in-progress sentence. Words are appended with a single
// separating space; the only other mutation is a full clear. The zero value
// is an empty buffer.
type Buffer struct {
	text string
}

// Append adds word to the end of the sentence. Surrounding whitespace on
// either side is collapsed to the single joining space.
func (b *Buffer) Append(word string) {
	word = strings.TrimSpace(word)
	if word == "" {
		return
	}
	if b.text == "" {
		b.text = word
		return
	}
	b.text = b.text + " " + word
}

// SetText replaces the whole sentence, trimming surrounding whitespace. Used
// when the user edits the sentence directly or dictates it.
func (b *Buffer) SetText(text string) {
	b.text = strings.TrimSpace(text)
}

// Clear resets the buffer to empty.
func (b *Buffer) Clear() {
	b.text = ""
}

// Text returns the current sentence.
func (b *Buffer) Text() string {
	return b.text
}

// Empty reports whether nothing has been composed yet.
func (b *Buffer) Empty() bool {
	return b.text == ""
}
