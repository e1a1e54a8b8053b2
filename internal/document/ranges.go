package document

import "harshagw/docstats/internal/analysis"

// StringFromLines returns the text from the start of line start up to the start
// of line end, with trailing whitespace removed. end may equal LineCount to
// mean the end of the document. Out-of-range requests return false.
func (d *Document) StringFromLines(start, end int) (string, bool) {
	d.mustBeInitialised("string from lines")
	return d.stringFromIndex(d.lineIndex, start, end)
}

// StringFromWords returns the text from the start of word start up to the
// start of word end, with trailing whitespace removed. end may equal WordCount
// to mean the end of the document. Out-of-range requests return false.
func (d *Document) StringFromWords(start, end int) (string, bool) {
	d.mustBeInitialised("string from words")
	return d.stringFromIndex(d.wordIndex, start, end)
}

func (d *Document) stringFromIndex(index []int, start, end int) (string, bool) {
	if start < 0 || end < 0 || start > end || end > len(index) {
		return "", false
	}
	if start == len(index) {
		return "", true
	}

	from := index[start]
	to := len(d.text)
	if end < len(index) {
		to = index[end]
	}
	return analysis.TrimRightSpace(d.text[from:to]), true
}

// LineString returns line n without its terminating newline.
func (d *Document) LineString(n int) (string, bool) {
	d.mustBeInitialised("line string")
	if n < 0 || n >= d.lineCount {
		return "", false
	}
	to := len(d.text) - 1
	if n+1 < d.lineCount {
		to = d.lineIndex[n+1] - 1
	}
	return d.text[d.lineIndex[n]:to], true
}

// StringFromDocument returns text[start:end]. Unlike the line and word
// accessors it treats a bad range as a programming error and panics with a
// *UsageError wrapping ErrOutOfBounds.
func (d *Document) StringFromDocument(start, end int) string {
	d.mustBeInitialised("string from document")
	if start < 0 || end > len(d.text) || start > end {
		panic(usageError("string from document", ErrOutOfBounds))
	}
	return d.text[start:end]
}
