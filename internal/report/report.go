package report

import (
	"fmt"
	"io"

	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/search"
)

// Summary holds the headline statistics of one document.
type Summary struct {
	Name       string
	WordCount  int
	LineCount  int
	AvgWordLen float32
	// MostCommonLetter is empty when the document has no letters.
	MostCommonLetter string
}

// Summarize computes the summary of an initialised document.
func Summarize(name string, doc *document.Document) Summary {
	s := search.New(doc)
	defer s.Close()

	sum := Summary{
		Name:       name,
		WordCount:  doc.WordCount(),
		LineCount:  doc.LineCount(),
		AvgWordLen: doc.AvgWordLen(),
	}
	if c, ok := s.MostCommonLetter(); ok {
		sum.MostCommonLetter = string([]byte{c})
	}
	return sum
}

// Write prints the summary in the four-line report format.
func (s Summary) Write(w io.Writer) error {
	letter := s.MostCommonLetter
	if letter == "" {
		letter = "-"
	}
	_, err := fmt.Fprintf(w,
		"Word Count: %d\nLine Count: %d\nAvg letters per word: %.1f\nMost common letter: %s\n",
		s.WordCount, s.LineCount, s.AvgWordLen, letter)
	return err
}
