// Package verify cross-checks an initialised document against the lines it
// was built from.
package verify

import (
	"fmt"
	"strings"

	"harshagw/docstats/internal/analysis"
	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/search"
)

// Check is one named consistency check.
type Check struct {
	Name string
	Run  func(f *Fixture) error
}

// Category groups related checks.
type Category struct {
	Name   string
	Checks []Check
}

// Fixture is the state the checks run against.
type Fixture struct {
	Lines    []string
	Doc      *document.Document
	Searcher *search.Searcher
}

// Result is the outcome of one check.
type Result struct {
	Category string
	Name     string
	Err      error
}

func (r Result) Passed() bool { return r.Err == nil }

// Run executes every category against doc, which must have been initialised
// from lines.
func Run(lines []string, doc *document.Document) []Result {
	f := &Fixture{Lines: lines, Doc: doc, Searcher: search.New(doc)}
	defer f.Searcher.Close()

	var results []Result
	for _, category := range Categories() {
		for _, check := range category.Checks {
			results = append(results, Result{
				Category: category.Name,
				Name:     check.Name,
				Err:      check.Run(f),
			})
		}
	}
	return results
}

func Categories() []Category {
	return []Category{
		{
			Name: "INDEX INVARIANTS",
			Checks: []Check{
				{"snapshot validates", checkSnapshot},
				{"one line offset per line", checkLineCount},
				{"word offsets start words", checkWordOffsets},
			},
		},
		{
			Name: "COUNTS",
			Checks: []Check{
				{"word count matches whitespace split", checkWordCount},
				{"char count is the sum of word lengths", checkCharCount},
			},
		},
		{
			Name: "RANGES",
			Checks: []Check{
				{"each line round trips", checkLines},
				{"each word round trips", checkWords},
				{"whole document range", checkWholeDocument},
			},
		},
		{
			Name: "MATCHES",
			Checks: []Check{
				{"regex matches round trip", checkMatchRoundTrip},
				{"vocabulary covers every term", checkVocabulary},
			},
		},
	}
}

func checkSnapshot(f *Fixture) error {
	return f.Doc.Snapshot().Validate()
}

func checkLineCount(f *Fixture) error {
	if got := len(f.Doc.LineIndex()); got != len(f.Lines) || f.Doc.LineCount() != len(f.Lines) {
		return fmt.Errorf("%d line offsets and line count %d for %d lines", got, f.Doc.LineCount(), len(f.Lines))
	}
	return nil
}

func checkWordOffsets(f *Fixture) error {
	text := f.Doc.Text()
	for i, off := range f.Doc.WordIndex() {
		if analysis.IsSpace(text[off]) {
			return fmt.Errorf("word %d at offset %d starts with whitespace", i, off)
		}
		if off > 0 && !analysis.IsSpace(text[off-1]) {
			return fmt.Errorf("word %d at offset %d follows a non-space byte", i, off)
		}
	}
	return nil
}

// fields splits on the same ASCII whitespace set the indexer uses.
func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r < 0x80 && analysis.IsSpace(byte(r))
	})
}

func checkWordCount(f *Fixture) error {
	want := 0
	for _, line := range f.Lines {
		want += len(fields(line))
	}
	if got := f.Doc.WordCount(); got != want {
		return fmt.Errorf("word count %d, want %d", got, want)
	}
	return nil
}

func checkCharCount(f *Fixture) error {
	want := 0
	for _, line := range f.Lines {
		for _, w := range fields(line) {
			want += len(w)
		}
	}
	if got := f.Doc.CharCount(); got != want {
		return fmt.Errorf("char count %d, want %d", got, want)
	}
	return nil
}

func checkLines(f *Fixture) error {
	for i, line := range f.Lines {
		got, ok := f.Doc.LineString(i)
		if !ok || got != line {
			return fmt.Errorf("line %d: got %q, want %q", i, got, line)
		}
		ranged, ok := f.Doc.StringFromLines(i, i+1)
		if want := analysis.TrimRightSpace(line); !ok || ranged != want {
			return fmt.Errorf("lines [%d, %d): got %q, want %q", i, i+1, ranged, want)
		}
	}
	return nil
}

func checkWords(f *Fixture) error {
	var words []string
	for _, line := range f.Lines {
		words = append(words, fields(line)...)
	}
	for i, want := range words {
		got, ok := f.Doc.StringFromWords(i, i+1)
		if !ok || got != want {
			return fmt.Errorf("word %d: got %q, want %q", i, got, want)
		}
	}
	return nil
}

func checkWholeDocument(f *Fixture) error {
	got, ok := f.Doc.StringFromLines(0, f.Doc.LineCount())
	want := analysis.TrimRightSpace(strings.Join(f.Lines, "\n"))
	if !ok || got != want {
		return fmt.Errorf("whole document: got %q, want %q", got, want)
	}
	return nil
}

func checkMatchRoundTrip(f *Fixture) error {
	for _, m := range f.Searcher.Words() {
		if got := f.Doc.StringFromDocument(m.Offset, m.End()); got != m.Text {
			return fmt.Errorf("match %q at %d round trips to %q", m.Text, m.Offset, got)
		}
	}
	return nil
}

func checkVocabulary(f *Fixture) error {
	v, err := f.Searcher.Vocabulary()
	if err != nil {
		return err
	}

	tokens := analysis.NewSimple().Analyze(f.Doc.Text())
	if v.NumPositions() != len(tokens) {
		return fmt.Errorf("vocabulary has %d positions, analyzer produced %d", v.NumPositions(), len(tokens))
	}
	for _, tok := range tokens {
		if v.Count(tok.Token) == 0 {
			return fmt.Errorf("term %q missing from vocabulary", tok.Token)
		}
		if got := v.Offset(uint32(tok.Position)); got != tok.Offset {
			return fmt.Errorf("term %q at position %d: offset %d, want %d", tok.Token, tok.Position, got, tok.Offset)
		}
	}
	return nil
}
