package bm25index

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tokenize splits text into lowercased alphanumeric-plus-underscore tokens.
//
// Pure ASCII input takes a byte-scanning fast path; anything with a
// non-ASCII rune falls back to a Unicode-property scan so letters like
// "café" or "世界" tokenize correctly. A token is kept only if it has at
// least two characters and is not in stopWords (stopWords may be nil).
func Tokenize(text string, stopWords map[string]struct{}) []string {
	if isASCII(text) {
		return tokenizeASCII(text, stopWords)
	}
	return tokenizeUnicode(text, stopWords)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 127 {
			return false
		}
	}
	return true
}

func isASCIITokenChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

func asciiLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func tokenizeASCII(s string, stopWords map[string]struct{}) []string {
	var tokens []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isASCIITokenChar(s[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = appendToken(tokens, asciiLower(s[start:i]), stopWords)
			start = -1
		}
	}
	if start >= 0 {
		tokens = appendToken(tokens, asciiLower(s[start:]), stopWords)
	}
	return tokens
}

// unicodeTokenPattern matches a leading letter followed by any run of
// letters, numbers, or underscores. Unlike the ASCII fast path, a token
// here cannot start with a digit or an underscore.
var unicodeTokenPattern = regexp.MustCompile(`\p{L}[\p{L}\p{N}_]*`)

func tokenizeUnicode(s string, stopWords map[string]struct{}) []string {
	raw := unicodeTokenPattern.FindAllString(s, -1)
	tokens := make([]string, 0, len(raw))
	for _, r := range raw {
		tokens = appendToken(tokens, strings.ToLower(r), stopWords)
	}
	return tokens
}

func appendToken(tokens []string, tok string, stopWords map[string]struct{}) []string {
	if utf8.RuneCountInString(tok) < 2 {
		return tokens
	}
	if stopWords != nil {
		if _, stop := stopWords[tok]; stop {
			return tokens
		}
	}
	return append(tokens, tok)
}
