package analysis

import "strings"

// Indexed is the result of a single indexing pass over a sequence of lines.
type Indexed struct {
	Text      string
	LineIndex []int
	WordIndex []int
	LineCount int
	WordCount int
	CharCount int
}

// Index concatenates lines into one newline-terminated text and records the
// start offset of every line and every word on the way.
func Index(lines []string) Indexed {
	var sb strings.Builder
	size := 0
	for _, line := range lines {
		size += len(line) + 1
	}
	sb.Grow(size)

	ws := NewWhitespace()
	idx := Indexed{
		LineIndex: make([]int, 0, len(lines)),
	}

	cursor := 0
	for _, line := range lines {
		idx.LineIndex = append(idx.LineIndex, cursor)
		sb.WriteString(line)
		sb.WriteByte('\n')

		for _, tok := range ws.Tokenize(line) {
			idx.WordIndex = append(idx.WordIndex, cursor+tok.Offset)
			idx.WordCount++
			idx.CharCount += len(tok.Text)
		}

		cursor += len(line) + 1
	}

	idx.Text = sb.String()
	idx.LineCount = len(lines)
	return idx
}
