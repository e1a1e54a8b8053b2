package analysis

import (
	"strings"
)

// TokenPosition is a term produced by an Analyzer. Position is the ordinal of
// the term in the analysed text and Offset is the byte offset of its first
// character.
type TokenPosition struct {
	Token    string
	Position uint64
	Offset   int
}

// Analyzer defines the interface for text analysis.
type Analyzer interface {
	Analyze(text string) []TokenPosition
}

// Simple performs basic term extraction: lowercasing and splitting on
// anything that is not an ASCII letter or digit.
type Simple struct{}

func NewSimple() *Simple {
	return &Simple{}
}

// Analyze tokenizes text into terms with positions and offsets.
func (a *Simple) Analyze(text string) []TokenPosition {
	var tokens []TokenPosition
	var currentToken strings.Builder
	var position uint64
	start := -1

	flush := func() {
		if currentToken.Len() == 0 {
			return
		}
		tokens = append(tokens, TokenPosition{
			Token:    currentToken.String(),
			Position: position,
			Offset:   start,
		})
		position++
		currentToken.Reset()
		start = -1
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		if IsLetter(c) || IsDigit(c) {
			if start < 0 {
				start = i
			}
			currentToken.WriteByte(ToLower(c))
			continue
		}
		flush()
	}
	flush()

	return tokens
}
