package search

import (
	"slices"

	"harshagw/docstats/internal/vocab"
)

// PhraseMatches finds every place where the terms of phrase appear at
// adjacent positions. Terms are compared after analysis, so case and the
// punctuation between terms are ignored. Each match spans from the first
// character of the first term to the last character of the last term.
func (s *Searcher) PhraseMatches(phrase string) ([]Match, error) {
	v, err := s.Vocabulary()
	if err != nil {
		return nil, err
	}

	tokens := s.analyzer.Analyze(phrase)
	if len(tokens) == 0 {
		return nil, nil
	}

	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Token
	}

	starts := v.Phrase(terms)
	if len(starts) == 0 {
		return nil, nil
	}

	last := uint32(len(terms) - 1)
	matches := make([]Match, len(starts))
	for i, start := range starts {
		from, to := v.Offset(start), v.End(start+last)
		matches[i] = Match{Offset: from, Text: s.text[from:to]}
	}
	return matches, nil
}

// TermMatches returns every occurrence of the given analysed terms, ordered by
// offset.
func (s *Searcher) TermMatches(terms []string) ([]Match, error) {
	v, err := s.Vocabulary()
	if err != nil {
		return nil, err
	}
	return termMatches(s.text, v, terms), nil
}

func termMatches(text string, v *vocab.Vocabulary, terms []string) []Match {
	var matches []Match
	for _, term := range terms {
		bm := v.Lookup(term)
		if bm == nil {
			continue
		}
		it := bm.Iterator()
		for it.HasNext() {
			pos := it.Next()
			from, to := v.Offset(pos), v.End(pos)
			matches = append(matches, Match{Offset: from, Text: text[from:to]})
		}
	}
	if len(matches) == 0 {
		return nil
	}
	slices.SortFunc(matches, func(a, b Match) int { return a.Offset - b.Offset })
	return slices.CompactFunc(matches, func(a, b Match) bool { return a.Offset == b.Offset })
}

// PrefixMatches returns every occurrence of terms starting with prefix.
func (s *Searcher) PrefixMatches(prefix string) ([]Match, error) {
	return s.expandTerms(func(v *vocab.Vocabulary) ([]string, error) {
		return v.PrefixTerms(prefix)
	})
}

// RegexTermMatches returns every occurrence of terms matching pattern in full.
func (s *Searcher) RegexTermMatches(pattern string) ([]Match, error) {
	return s.expandTerms(func(v *vocab.Vocabulary) ([]string, error) {
		return v.MatchingTerms(pattern)
	})
}

// FuzzyMatches returns every occurrence of terms within fuzziness edits of term.
func (s *Searcher) FuzzyMatches(term string, fuzziness uint8) ([]Match, error) {
	return s.expandTerms(func(v *vocab.Vocabulary) ([]string, error) {
		return v.FuzzyTerms(term, fuzziness)
	})
}

// termFinder picks matching terms out of a vocabulary.
type termFinder func(v *vocab.Vocabulary) ([]string, error)

func (s *Searcher) expandTerms(find termFinder) ([]Match, error) {
	v, err := s.Vocabulary()
	if err != nil {
		return nil, err
	}
	terms, err := find(v)
	if err != nil {
		return nil, err
	}
	return termMatches(s.text, v, terms), nil
}
