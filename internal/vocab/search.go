package vocab

import (
	"bytes"
	"fmt"

	"github.com/couchbase/vellum"
	"github.com/couchbase/vellum/levenshtein"
	"github.com/couchbase/vellum/regexp"
)

// collectKeys drains an FST iterator. vellum reports an empty range as
// ErrIteratorDone from the constructor, which is not an error here.
func collectKeys(iter vellum.Iterator, err error) ([]string, error) {
	if err == vellum.ErrIteratorDone {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var terms []string
	for err == nil {
		key, _ := iter.Current()
		terms = append(terms, string(key))
		err = iter.Next()
	}

	if err != vellum.ErrIteratorDone {
		return nil, err
	}
	return terms, nil
}

// Terms returns every term in lexicographic order.
func (v *Vocabulary) Terms() ([]string, error) {
	iter, err := v.fst.Iterator(nil, nil)
	return collectKeys(iter, err)
}

// PrefixTerms returns all terms starting with prefix, using an FST range scan.
func (v *Vocabulary) PrefixTerms(prefix string) ([]string, error) {
	start := []byte(prefix)
	end := prefixSuccessor(start)

	iter, err := v.fst.Iterator(start, end)
	return collectKeys(iter, err)
}

// MatchingTerms returns all terms that match the regex pattern in full.
func (v *Vocabulary) MatchingTerms(pattern string) ([]string, error) {
	aut, err := regexp.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return v.searchWithAutomaton(aut)
}

// FuzzyTerms returns all terms within fuzziness edits of term.
func (v *Vocabulary) FuzzyTerms(term string, fuzziness uint8) ([]string, error) {
	builder, err := levenshtein.NewLevenshteinAutomatonBuilder(fuzziness, true)
	if err != nil {
		return nil, fmt.Errorf("failed to create levenshtein builder: %w", err)
	}

	aut, err := builder.BuildDfa(term, fuzziness)
	if err != nil {
		return nil, fmt.Errorf("failed to build fuzzy automaton: %w", err)
	}
	return v.searchWithAutomaton(aut)
}

func (v *Vocabulary) searchWithAutomaton(aut vellum.Automaton) ([]string, error) {
	iter, err := v.fst.Search(aut, nil, nil)
	return collectKeys(iter, err)
}

// prefixSuccessor returns the lexicographically next prefix after the given one.
func prefixSuccessor(prefix []byte) []byte {
	if len(prefix) == 0 {
		return nil
	}

	succ := bytes.Clone(prefix)

	for i := len(succ) - 1; i >= 0; i-- {
		if succ[i] < 0xff {
			succ[i]++
			return succ[:i+1]
		}
	}

	return nil
}
