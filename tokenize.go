package main

import "os"

// minTokenLen is the shortest run that still counts as a token.
const minTokenLen = 2

// tokenizeBytes extracts maximal ASCII alphanumeric runs of length >= 2,
// folded to lowercase. Underscores and any non-ASCII bytes act as
// separators, so malformed encodings simply contribute nothing.
func tokenizeBytes(data []byte) []string {
	var tokens []string
	var word []byte
	for _, b := range data {
		switch {
		case b >= 'a' && b <= 'z' || b >= '0' && b <= '9':
			word = append(word, b)
		case b >= 'A' && b <= 'Z':
			word = append(word, b+('a'-'A'))
		default:
			if len(word) >= minTokenLen {
				tokens = append(tokens, string(word))
			}
			word = word[:0]
		}
	}
	if len(word) >= minTokenLen {
		tokens = append(tokens, string(word))
	}
	return tokens
}

// tokenizeFile reads path and tokenizes its content. Open and read failures
// are returned so the caller can absorb them as per-file skips.
func tokenizeFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return tokenizeBytes(data), nil
}
