package query

import (
	"fmt"
	"slices"

	"harshagw/docstats/internal/analysis"
)

// Match is a span of the document text found by a query.
type Match struct {
	Offset int
	Text   string
}

// SearchBackend is the interface that the executor uses to search.
type SearchBackend interface {
	TermMatches(terms []string) ([]Match, error)
	PhraseMatches(phrase string) ([]Match, error)
	PrefixMatches(prefix string) ([]Match, error)
	RegexTermMatches(pattern string) ([]Match, error)
	FuzzyMatches(term string, fuzziness uint8) ([]Match, error)
}

// Executor executes queries against a search backend. Term, prefix and fuzzy
// values go through the same analyzer that built the backend's vocabulary.
type Executor struct {
	backend      SearchBackend
	analyzer     analysis.Analyzer
	maxFuzziness uint8
}

// NewExecutor creates a new query executor. Fuzzy queries asking for more
// than maxFuzziness edits are rejected.
func NewExecutor(backend SearchBackend, maxFuzziness uint8) *Executor {
	return &Executor{backend: backend, analyzer: analysis.NewSimple(), maxFuzziness: maxFuzziness}
}

// analyzeTerms returns the analysed terms of value.
func (e *Executor) analyzeTerms(value string) []string {
	tokens := e.analyzer.Analyze(value)
	terms := make([]string, len(tokens))
	for i, t := range tokens {
		terms[i] = t.Token
	}
	return terms
}

// singleTerm analyses value and requires it to hold at most one term. An
// empty result means the value has no searchable characters.
func (e *Executor) singleTerm(kind, value string) (string, error) {
	terms := e.analyzeTerms(value)
	switch len(terms) {
	case 0:
		return "", nil
	case 1:
		return terms[0], nil
	default:
		return "", fmt.Errorf("%s %q must be a single term, got %d", kind, value, len(terms))
	}
}

// Execute runs every query and merges the matches by offset. When two
// matches start at the same offset the longer one is kept.
func (e *Executor) Execute(queries []Query) ([]Match, error) {
	var all []Match
	for _, q := range queries {
		matches, err := e.executeOne(q)
		if err != nil {
			return nil, err
		}
		all = append(all, matches...)
	}
	return mergeMatches(all), nil
}

func (e *Executor) executeOne(q Query) ([]Match, error) {
	switch q := q.(type) {
	case *TermQuery:
		terms := e.analyzeTerms(q.Term)
		switch len(terms) {
		case 0:
			return nil, nil
		case 1:
			return e.backend.TermMatches(terms)
		default:
			// "don't" analyses to two adjacent terms.
			return e.backend.PhraseMatches(q.Term)
		}
	case *PhraseQuery:
		return e.backend.PhraseMatches(q.Phrase)
	case *PrefixQuery:
		// An empty prefix matches every term.
		if q.Prefix == "" {
			return e.backend.PrefixMatches("")
		}
		prefix, err := e.singleTerm("prefix", q.Prefix)
		if err != nil || prefix == "" {
			return nil, err
		}
		return e.backend.PrefixMatches(prefix)
	case *RegexQuery:
		// Vocabulary terms are lower case, so the pattern matches ignoring case.
		return e.backend.RegexTermMatches("(?i)" + q.Pattern)
	case *FuzzyQuery:
		if q.Fuzziness > e.maxFuzziness {
			return nil, fmt.Errorf("fuzziness %d exceeds maximum %d", q.Fuzziness, e.maxFuzziness)
		}
		term, err := e.singleTerm("fuzzy term", q.Term)
		if err != nil || term == "" {
			return nil, err
		}
		return e.backend.FuzzyMatches(term, q.Fuzziness)
	default:
		return nil, fmt.Errorf("unknown query type: %T", q)
	}
}

func mergeMatches(matches []Match) []Match {
	if len(matches) == 0 {
		return nil
	}
	slices.SortFunc(matches, func(a, b Match) int {
		if a.Offset != b.Offset {
			return a.Offset - b.Offset
		}
		return len(b.Text) - len(a.Text)
	})
	return slices.CompactFunc(matches, func(a, b Match) bool { return a.Offset == b.Offset })
}

// Run tokenizes, parses and executes a query string.
func Run(backend SearchBackend, maxFuzziness uint8, queryString string) ([]Match, error) {
	tokens, err := Tokenize(queryString)
	if err != nil {
		return nil, err
	}
	queries, err := Parse(tokens)
	if err != nil {
		return nil, err
	}
	return NewExecutor(backend, maxFuzziness).Execute(queries)
}
