package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Query is the interface for all query types.
type Query interface {
	queryNode()
	String() string
}

// TermQuery finds a single term.
type TermQuery struct {
	Term string
}

func (q *TermQuery) queryNode() {}

func (q *TermQuery) String() string {
	return fmt.Sprintf("term(%s)", q.Term)
}

// PhraseQuery finds terms at adjacent positions.
type PhraseQuery struct {
	Phrase string
}

func (q *PhraseQuery) queryNode() {}

func (q *PhraseQuery) String() string {
	return fmt.Sprintf("phrase(\"%s\")", q.Phrase)
}

// PrefixQuery finds terms starting with a prefix.
type PrefixQuery struct {
	Prefix string
}

func (q *PrefixQuery) queryNode() {}

func (q *PrefixQuery) String() string {
	return fmt.Sprintf("prefix(%s*)", q.Prefix)
}

// RegexQuery finds terms matching a regex pattern in full.
type RegexQuery struct {
	Pattern string
}

func (q *RegexQuery) queryNode() {}

func (q *RegexQuery) String() string {
	return fmt.Sprintf("regex(/%s/)", q.Pattern)
}

// FuzzyQuery finds terms within edit distance.
type FuzzyQuery struct {
	Term      string
	Fuzziness uint8
}

func (q *FuzzyQuery) queryNode() {}

func (q *FuzzyQuery) String() string {
	return fmt.Sprintf("fuzzy(%s~%d)", q.Term, q.Fuzziness)
}

// Parse turns tokens into queries, one per token.
func Parse(tokens []Token) ([]Query, error) {
	var queries []Query
	for _, token := range tokens {
		switch token.Type {
		case TokenTerm:
			queries = append(queries, &TermQuery{Term: token.Value})
		case TokenPhrase:
			queries = append(queries, &PhraseQuery{Phrase: token.Value})
		case TokenPrefix:
			queries = append(queries, &PrefixQuery{Prefix: token.Value})
		case TokenRegex:
			queries = append(queries, &RegexQuery{Pattern: token.Value})
		case TokenFuzzy:
			q, err := parseFuzzy(token.Value)
			if err != nil {
				return nil, err
			}
			queries = append(queries, q)
		case TokenEOF:
			return queries, nil
		default:
			return nil, fmt.Errorf("unexpected token: %s", token)
		}
	}
	return queries, nil
}

// parseFuzzy parses "term~k". A bare "term~" means one edit.
func parseFuzzy(value string) (*FuzzyQuery, error) {
	term, dist, _ := strings.Cut(value, "~")
	if term == "" {
		return nil, fmt.Errorf("expected term before '~' in %q", value)
	}
	if dist == "" {
		return &FuzzyQuery{Term: term, Fuzziness: 1}, nil
	}
	k, err := strconv.ParseUint(dist, 10, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid fuzziness in %q: %w", value, err)
	}
	return &FuzzyQuery{Term: term, Fuzziness: uint8(k)}, nil
}
