package document

import (
	"slices"

	"harshagw/docstats/internal/analysis"
)

// Document owns the normalised text of one input and the line and word
// indices built over it. A Document starts empty, is populated once by
// Initialise or Restore and goes back to empty on Reset.
//
// After initialisation every method is read-only, so a single Document may be
// shared by concurrent readers. Initialise, Restore and Reset must not race
// with anything.
type Document struct {
	text        string
	lineIndex   []int
	wordIndex   []int
	lineCount   int
	wordCount   int
	charCount   int
	initialised bool
}

// New returns an empty Document.
func New() *Document {
	return &Document{}
}

// FromLines is shorthand for New followed by Initialise.
func FromLines(lines []string) (*Document, error) {
	d := New()
	if err := d.Initialise(lines); err != nil {
		return nil, err
	}
	return d, nil
}

// Initialise indexes lines in a single pass. A nil source or a second call
// without an intervening Reset is a usage error.
func (d *Document) Initialise(lines []string) error {
	if d.initialised {
		return usageError("initialise", ErrAlreadyInitialised)
	}
	if lines == nil {
		return usageError("initialise", ErrNilSource)
	}

	idx := analysis.Index(lines)
	d.text = idx.Text
	d.lineIndex = idx.LineIndex
	d.wordIndex = idx.WordIndex
	d.lineCount = idx.LineCount
	d.wordCount = idx.WordCount
	d.charCount = idx.CharCount
	d.initialised = true
	return nil
}

// Reset returns the document to its empty state. It is a no-op on an empty
// document.
func (d *Document) Reset() {
	*d = Document{}
}

// Initialised reports whether the document holds indexed text.
func (d *Document) Initialised() bool { return d.initialised }

func (d *Document) mustBeInitialised(op string) {
	if !d.initialised {
		panic(usageError(op, ErrNotInitialised))
	}
}

// Text returns the full normalised text, every line terminated by '\n'.
func (d *Document) Text() string {
	d.mustBeInitialised("text")
	return d.text
}

// LineIndex returns a copy of the start offset of every line.
func (d *Document) LineIndex() []int {
	d.mustBeInitialised("line index")
	return slices.Clone(d.lineIndex)
}

// WordIndex returns a copy of the start offset of every word.
func (d *Document) WordIndex() []int {
	d.mustBeInitialised("word index")
	return slices.Clone(d.wordIndex)
}

// LineCount returns the number of input lines.
func (d *Document) LineCount() int {
	d.mustBeInitialised("line count")
	return d.lineCount
}

// WordCount returns the number of non-empty whitespace-delimited tokens.
func (d *Document) WordCount() int {
	d.mustBeInitialised("word count")
	return d.wordCount
}

// CharCount returns the number of non-whitespace characters, i.e. the sum of
// all word lengths.
func (d *Document) CharCount() int {
	d.mustBeInitialised("char count")
	return d.charCount
}

// AllCharCount returns the length of the text including whitespace and the
// synthetic newlines.
func (d *Document) AllCharCount() int {
	d.mustBeInitialised("all char count")
	return len(d.text)
}

// AvgWordLen returns the mean word length, or 0 for a document without words.
func (d *Document) AvgWordLen() float32 {
	d.mustBeInitialised("avg word len")
	if d.wordCount == 0 {
		return 0
	}
	return float32(d.charCount) / float32(d.wordCount)
}
