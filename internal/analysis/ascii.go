package analysis

// IsSpace reports whether c is ASCII whitespace: space, \t, \n, \v, \f or \r.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func IsLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// IsWord reports whether c belongs to the \w class: [A-Za-z0-9_].
func IsWord(c byte) bool {
	return IsLetter(c) || IsDigit(c) || c == '_'
}

// ToLower folds an ASCII upper-case letter; every other byte is returned as is.
func ToLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// FoldASCII lower-cases the ASCII letters of s. Byte offsets are preserved,
// which strings.ToLower does not guarantee for arbitrary UTF-8.
func FoldASCII(s string) string {
	i := 0
	for i < len(s) && !('A' <= s[i] && s[i] <= 'Z') {
		i++
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		b[i] = ToLower(b[i])
	}
	return string(b)
}

// TrimRightSpace removes trailing ASCII whitespace.
func TrimRightSpace(s string) string {
	end := len(s)
	for end > 0 && IsSpace(s[end-1]) {
		end--
	}
	return s[:end]
}
