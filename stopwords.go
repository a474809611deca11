package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// programmingKeywords are filtered from lexical counts regardless of the
// external corpus: control-flow and declaration keywords across the
// supported languages.
var programmingKeywords = []string{
	"var", "let", "const", "def", "class", "return", "import", "function",
	"if", "else", "elif", "then", "end", "do", "while", "for", "try",
	"catch", "finally", "throw", "new", "this", "self", "super", "true",
	"false", "none", "null", "undefined", "void", "public", "private",
	"protected", "static", "final", "abstract", "interface", "extends",
	"implements", "package", "namespace", "using", "include", "define",
	"ifdef", "endif", "extern", "typeof", "instanceof", "async", "await",
	"yield", "lambda", "del", "pass", "break", "continue", "raise",
	"except", "assert", "switch", "case", "default", "goto", "struct",
	"enum", "union", "typedef", "sizeof", "volatile", "inline", "virtual",
}

// Stopwords answers exact membership for tokens that should not be counted.
// Inputs are expected to be lowercased already.
type Stopwords struct {
	set map[string]struct{}
}

func newStopwords(lists ...[]string) *Stopwords {
	s := &Stopwords{set: make(map[string]struct{})}
	for _, list := range lists {
		for _, word := range list {
			s.set[strings.ToLower(word)] = struct{}{}
		}
	}
	return s
}

// Contains reports whether token is a stopword.
func (s *Stopwords) Contains(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.set[token]
	return ok
}

// Len returns the number of distinct stopwords loaded.
func (s *Stopwords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.set)
}

// loadStopwords builds the run's filter: the fixed keyword set unioned with
// an external natural-language corpus named by source (a local path or an
// http(s) URL). A missing or unreachable corpus degrades to the keyword set
// alone; it never fails the run.
func loadStopwords(source string) *Stopwords {
	if source == "" {
		return newStopwords(programmingKeywords)
	}

	var corpus []string
	var err error
	if isWebURL(source) {
		corpus, err = fetchStopwordCorpus(source)
	} else {
		corpus, err = readCorpusFile(source)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load stopword corpus from %s: %v\n", source, err)
		fmt.Fprintln(os.Stderr, "Proceeding with the built-in keyword set only.")
		return newStopwords(programmingKeywords)
	}
	return newStopwords(programmingKeywords, corpus)
}

// readCorpus parses a word list: one word per line, blank lines and
// '#'-prefixed lines ignored, everything lowercased.
func readCorpus(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	return words, scanner.Err()
}

func readCorpusFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readCorpus(f)
}
