package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// ExcludeMatcher holds the compiled exclusion rules for a run. Rules are
// case-sensitive glob patterns checked against the full relative path and
// against every single path component, so a bare directory name like
// "node_modules" excludes everything beneath it.
type ExcludeMatcher struct {
	globs []glob.Glob
}

// loadExcludePatterns reads one glob pattern per line from path.
// '#'-prefixed and blank lines are ignored. A missing file yields an empty
// pattern list: nothing gets excluded.
func loadExcludePatterns(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening exclude file %s: %w", path, err)
	}
	defer f.Close()

	var patterns []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading exclude file %s: %w", path, err)
	}
	return patterns, nil
}

// newExcludeMatcher compiles the given patterns once. Invalid patterns are
// reported and skipped rather than failing the run.
func newExcludeMatcher(patterns []string) *ExcludeMatcher {
	m := &ExcludeMatcher{}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid exclude pattern %q: %v\n", pattern, err)
			continue
		}
		m.globs = append(m.globs, g)
	}
	return m
}

// Excluded reports whether relPath matches any loaded rule, either as a
// whole or on one of its components.
func (m *ExcludeMatcher) Excluded(relPath string) bool {
	if m == nil || len(m.globs) == 0 {
		return false
	}
	rel := filepath.ToSlash(relPath)
	parts := strings.Split(rel, "/")
	for _, g := range m.globs {
		if g.Match(rel) {
			return true
		}
		for _, part := range parts {
			if g.Match(part) {
				return true
			}
		}
	}
	return false
}
