package search

import (
	"harshagw/docstats/internal/query"
)

// searcherAdapter wraps Searcher to implement query.SearchBackend.
type searcherAdapter struct {
	s *Searcher
}

func (a *searcherAdapter) TermMatches(terms []string) ([]query.Match, error) {
	return convertMatches(a.s.TermMatches(terms))
}

func (a *searcherAdapter) PhraseMatches(phrase string) ([]query.Match, error) {
	return convertMatches(a.s.PhraseMatches(phrase))
}

func (a *searcherAdapter) PrefixMatches(prefix string) ([]query.Match, error) {
	return convertMatches(a.s.PrefixMatches(prefix))
}

func (a *searcherAdapter) RegexTermMatches(pattern string) ([]query.Match, error) {
	return convertMatches(a.s.RegexTermMatches(pattern))
}

func (a *searcherAdapter) FuzzyMatches(term string, fuzziness uint8) ([]query.Match, error) {
	return convertMatches(a.s.FuzzyMatches(term, fuzziness))
}

func convertMatches(matches []Match, err error) ([]query.Match, error) {
	if err != nil || matches == nil {
		return nil, err
	}
	qMatches := make([]query.Match, len(matches))
	for i, m := range matches {
		qMatches[i] = query.Match{Offset: m.Offset, Text: m.Text}
	}
	return qMatches, nil
}

func convertQueryMatches(matches []query.Match) []Match {
	if matches == nil {
		return nil
	}
	sMatches := make([]Match, len(matches))
	for i, m := range matches {
		sMatches[i] = Match{Offset: m.Offset, Text: m.Text}
	}
	return sMatches
}

// Query parses and executes a query string. Fuzzy terms may ask for at most
// maxFuzziness edits.
func (s *Searcher) Query(queryString string, maxFuzziness uint8) ([]Match, error) {
	adapter := &searcherAdapter{s: s}
	matches, err := query.Run(adapter, maxFuzziness, queryString)
	if err != nil {
		return nil, err
	}
	return convertQueryMatches(matches), nil
}
