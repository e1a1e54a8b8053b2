package analysis

// Token is a whitespace-delimited word and the byte offset where it starts in
// the text it was cut from.
type Token struct {
	Text   string
	Offset int
}

// Whitespace splits text on runs of ASCII whitespace.
type Whitespace struct{}

func NewWhitespace() *Whitespace {
	return &Whitespace{}
}

// Tokenize returns the non-empty tokens of text. Offsets are relative to the
// untrimmed input, so leading whitespace never shifts them.
func (w *Whitespace) Tokenize(text string) []Token {
	var tokens []Token
	start := -1

	for i := 0; i < len(text); i++ {
		if IsSpace(text[i]) {
			if start >= 0 {
				tokens = append(tokens, Token{Text: text[start:i], Offset: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Offset: start})
	}

	return tokens
}
