package survey

import "strings"

// DefaultSeparator separates tokens in multi-valued survey columns.
const DefaultSeparator = ";"

// Tokenize splits a multi-valued field into its tokens.
//
// Tokens are returned verbatim, without trimming, so "a; b" yields "a" and
// " b". An empty value yields a single empty token. An empty separator falls
// back to DefaultSeparator.
func Tokenize(value, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Split(value, sep)
}

// containsToken reports whether token is one of the split values of value
func containsToken(value, sep, token string) bool {
	for _, t := range Tokenize(value, sep) {
		if t == token {
			return true
		}
	}
	return false
}
