package document

import (
	"fmt"
	"slices"
	"strings"

	"harshagw/docstats/internal/analysis"
)

// Snapshot is the exported state of an initialised Document.
type Snapshot struct {
	Text      string
	LineIndex []int
	WordIndex []int
	LineCount int
	WordCount int
	CharCount int
}

// Snapshot copies the document state so it can be persisted.
func (d *Document) Snapshot() Snapshot {
	d.mustBeInitialised("snapshot")
	return Snapshot{
		Text:      d.text,
		LineIndex: slices.Clone(d.lineIndex),
		WordIndex: slices.Clone(d.wordIndex),
		LineCount: d.lineCount,
		WordCount: d.wordCount,
		CharCount: d.charCount,
	}
}

// Restore initialises an empty document from a snapshot after checking that
// the snapshot's indices are consistent with its text.
func (d *Document) Restore(s Snapshot) error {
	if d.initialised {
		return usageError("restore", ErrAlreadyInitialised)
	}
	if err := s.Validate(); err != nil {
		return usageError("restore", err)
	}

	d.text = s.Text
	d.lineIndex = slices.Clone(s.LineIndex)
	d.wordIndex = slices.Clone(s.WordIndex)
	d.lineCount = s.LineCount
	d.wordCount = s.WordCount
	d.charCount = s.CharCount
	if d.lineIndex == nil {
		d.lineIndex = []int{}
	}
	d.initialised = true
	return nil
}

// Validate checks the structural invariants of the indices.
func (s Snapshot) Validate() error {
	if len(s.LineIndex) != s.LineCount {
		return fmt.Errorf("%w: %d line offsets for %d lines", ErrInvalidSnapshot, len(s.LineIndex), s.LineCount)
	}
	if len(s.WordIndex) != s.WordCount {
		return fmt.Errorf("%w: %d word offsets for %d words", ErrInvalidSnapshot, len(s.WordIndex), s.WordCount)
	}
	if s.LineCount > 0 && s.LineIndex[0] != 0 {
		return fmt.Errorf("%w: first line starts at %d", ErrInvalidSnapshot, s.LineIndex[0])
	}
	if s.LineCount == 0 && s.Text != "" {
		return fmt.Errorf("%w: text without lines", ErrInvalidSnapshot)
	}

	for i, off := range s.LineIndex {
		if off < 0 || off >= len(s.Text) {
			return fmt.Errorf("%w: line %d offset %d out of range", ErrInvalidSnapshot, i, off)
		}
		if off > 0 && s.Text[off-1] != '\n' {
			return fmt.Errorf("%w: line %d does not follow a newline", ErrInvalidSnapshot, i)
		}
		if i > 0 && s.LineIndex[i-1] >= off {
			return fmt.Errorf("%w: line offsets not increasing at %d", ErrInvalidSnapshot, i)
		}
		end := len(s.Text)
		if i+1 < len(s.LineIndex) {
			end = s.LineIndex[i+1]
		}
		if end > off {
			if nl := strings.IndexByte(s.Text[off:end], '\n'); nl != end-off-1 {
				return fmt.Errorf("%w: line %d is not terminated by its only newline", ErrInvalidSnapshot, i)
			}
		}
	}
	if s.LineCount > 0 && s.Text[len(s.Text)-1] != '\n' {
		return fmt.Errorf("%w: text does not end with a newline", ErrInvalidSnapshot)
	}

	chars := 0
	for i, off := range s.WordIndex {
		if off < 0 || off >= len(s.Text) || analysis.IsSpace(s.Text[off]) {
			return fmt.Errorf("%w: word %d offset %d does not start a word", ErrInvalidSnapshot, i, off)
		}
		if off > 0 && !analysis.IsSpace(s.Text[off-1]) {
			return fmt.Errorf("%w: word %d offset %d is inside a word", ErrInvalidSnapshot, i, off)
		}
		if i > 0 && s.WordIndex[i-1] >= off {
			return fmt.Errorf("%w: word offsets not increasing at %d", ErrInvalidSnapshot, i)
		}
		end := off
		for end < len(s.Text) && !analysis.IsSpace(s.Text[end]) {
			end++
		}
		chars += end - off
	}
	if chars != s.CharCount {
		return fmt.Errorf("%w: words span %d characters, want %d", ErrInvalidSnapshot, chars, s.CharCount)
	}

	return nil
}
