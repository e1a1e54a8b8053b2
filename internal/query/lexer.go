package query

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenTerm TokenType = iota
	TokenPhrase
	TokenPrefix
	TokenRegex
	TokenFuzzy
	TokenEOF
)

func (t TokenType) String() string {
	switch t {
	case TokenTerm:
		return "TERM"
	case TokenPhrase:
		return "PHRASE"
	case TokenPrefix:
		return "PREFIX"
	case TokenRegex:
		return "REGEX"
	case TokenFuzzy:
		return "FUZZY"
	case TokenEOF:
		return "EOF"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token.
type Token struct {
	Type  TokenType
	Value string
}

func (t Token) String() string {
	if t.Value != "" {
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
	return t.Type.String()
}

// Lexer tokenizes a query string.
type Lexer struct {
	input string
	pos   int
}

// NewLexer creates a new lexer.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input, pos: 0}
}

// Tokenize tokenizes a query string into tokens.
func Tokenize(query string) ([]Token, error) {
	lexer := NewLexer(query)
	return lexer.TokenizeAll()
}

// TokenizeAll returns all tokens from the input.
func (l *Lexer) TokenizeAll() ([]Token, error) {
	var tokens []Token
	for {
		token, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
		if token.Type == TokenEOF {
			break
		}
	}
	return tokens, nil
}

// NextToken returns the next token.
func (l *Lexer) NextToken() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Type: TokenEOF}, nil
	}

	switch l.input[l.pos] {
	case '"':
		return l.readDelimited('"', TokenPhrase, "phrase")
	case '/':
		return l.readDelimited('/', TokenRegex, "regex")
	}

	return l.readWord()
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
}

// readDelimited reads up to the closing delim. A backslash before delim
// escapes it.
func (l *Lexer) readDelimited(delim byte, typ TokenType, what string) (Token, error) {
	l.pos++
	start := l.pos

	for l.pos < len(l.input) && l.input[l.pos] != delim {
		if l.input[l.pos] == '\\' && l.pos+1 < len(l.input) && l.input[l.pos+1] == delim {
			l.pos += 2
			continue
		}
		l.pos++
	}

	if l.pos >= len(l.input) {
		return Token{}, fmt.Errorf("unterminated %s at position %d", what, start-1)
	}

	value := l.input[start:l.pos]
	value = strings.ReplaceAll(value, `\`+string(delim), string(delim))
	l.pos++

	return Token{Type: typ, Value: value}, nil
}

func (l *Lexer) readWord() (Token, error) {
	start := l.pos

	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if unicode.IsSpace(rune(ch)) || ch == '"' {
			break
		}
		l.pos++
	}

	word := l.input[start:l.pos]
	if word == "" {
		return Token{}, fmt.Errorf("unexpected character at position %d", l.pos)
	}

	if strings.Contains(word, "~") {
		return Token{Type: TokenFuzzy, Value: word}, nil
	}

	if strings.HasSuffix(word, "*") {
		prefix := strings.TrimSuffix(word, "*")
		return Token{Type: TokenPrefix, Value: prefix}, nil
	}

	return Token{Type: TokenTerm, Value: word}, nil
}
