package search

import (
	"errors"
	"regexp"
	"sync"
	"sync/atomic"

	"harshagw/docstats/internal/analysis"
	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/vocab"
)

// Searcher runs occurrence and pattern queries against one initialised
// Document. It is safe for concurrent use as long as the document is not
// reset underneath it.
type Searcher struct {
	doc      *document.Document
	text     string
	analyzer analysis.Analyzer

	vocabOnce sync.Once
	vocab     *vocab.Vocabulary
	vocabErr  error
	closed    atomic.Bool
}

// New creates a searcher for doc. doc must be initialised.
func New(doc *document.Document) *Searcher {
	return &Searcher{
		doc:      doc,
		text:     doc.Text(),
		analyzer: analysis.NewSimple(),
	}
}

// Document returns the searched document.
func (s *Searcher) Document() *document.Document { return s.doc }

// ErrClosed is returned by vocabulary queries on a closed Searcher.
var ErrClosed = errors.New("searcher is closed")

// Close releases the vocabulary if one was built. The Searcher must not be
// used for vocabulary queries afterwards; they return ErrClosed. Close must
// not run concurrently with other calls.
func (s *Searcher) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	// Consume the once so no dictionary is built after Close.
	s.vocabOnce.Do(func() {})
	v := s.vocab
	s.vocab = nil
	if v != nil {
		return v.Close()
	}
	return nil
}

// CountOccurrences counts pattern in the document.
func (s *Searcher) CountOccurrences(pattern string, caseSensitive, wholeWord bool) int {
	return CountOccurrences(s.text, pattern, caseSensitive, wholeWord)
}

// MostCommonString returns the candidate occurring most often in the document.
func (s *Searcher) MostCommonString(candidates []string, caseSensitive, wholeWord bool) (string, bool) {
	return MostCommonString(s.text, candidates, caseSensitive, wholeWord)
}

// Matches returns every match of the regular expression in the document.
func (s *Searcher) Matches(pattern string) ([]Match, error) {
	return MatchesWithOffsets(s.text, pattern)
}

// Histogram counts each of words in the document.
func (s *Searcher) Histogram(words []string, caseSensitive, wholeWord bool) map[string]int {
	return Histogram(s.text, words, caseSensitive, wholeWord)
}

var wordPattern = regexp.MustCompile(`\w+`)

// Words returns every \w+ run of the document in order.
func (s *Searcher) Words() []Match {
	return matchesWithRegexp(s.text, wordPattern)
}

// CharactersUsed returns each distinct non-whitespace character of the
// document in first-occurrence order, lower-cased unless caseSensitive.
func (s *Searcher) CharactersUsed(caseSensitive bool) []string {
	var seen [256]bool
	var chars []string
	for i := 0; i < len(s.text); i++ {
		c := s.text[i]
		if !caseSensitive {
			c = analysis.ToLower(c)
		}
		if analysis.IsSpace(c) || seen[c] {
			continue
		}
		seen[c] = true
		chars = append(chars, string([]byte{c}))
	}
	return chars
}

// MostCommonLetter returns the most frequent ASCII letter, ignoring case.
// Ties go to the letter earlier in the alphabet.
func (s *Searcher) MostCommonLetter() (byte, bool) {
	var counts [26]int
	for i := 0; i < len(s.text); i++ {
		if c := analysis.ToLower(s.text[i]); 'a' <= c && c <= 'z' {
			counts[c-'a']++
		}
	}

	best := 0
	for i := 1; i < len(counts); i++ {
		if counts[i] > counts[best] {
			best = i
		}
	}
	if counts[best] == 0 {
		return 0, false
	}
	return byte('a' + best), true
}

// Vocabulary returns the term dictionary of the document, building it on
// first use.
func (s *Searcher) Vocabulary() (*vocab.Vocabulary, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	s.vocabOnce.Do(func() {
		s.vocab, s.vocabErr = vocab.Build(s.text, s.analyzer)
	})
	return s.vocab, s.vocabErr
}
