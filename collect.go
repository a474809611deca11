package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// CollectStats counts traversal outcomes for the end-of-run summary.
type CollectStats struct {
	Skipped int
}

// collectFiles walks the tree rooted at root and streams every candidate
// FileRecord to onFile, single pass. Directories judged excluded are pruned
// without descending; symlinks are never followed. Per-entry errors are
// reported and absorbed. A root that does not exist or is not a directory
// is the only fatal error.
func collectFiles(root string, exts map[string]bool, matcher *ExcludeMatcher, respectIgnore bool, onFile func(FileRecord)) (CollectStats, error) {
	var stats CollectStats

	info, err := os.Stat(root)
	if err != nil {
		return stats, fmt.Errorf("error accessing root %s: %w", root, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("root %s is not a directory", root)
	}

	var ignoreMatcher gitignore.IgnoreMatcher
	if respectIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			m, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", gitIgnorePath, err)
			} else {
				ignoreMatcher = m
			}
		}
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: error accessing %s: %v\n", path, err)
			return nil
		}
		if path == root {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		isDir := d.IsDir()

		if matcher.Excluded(rel) {
			if isDir {
				return fs.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if ignoreMatcher != nil && ignoreMatcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			stats.Skipped++
			return nil
		}
		if isDir {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !exts[ext] {
			return nil
		}

		onFile(FileRecord{Path: path, RelPath: rel, Ext: ext})
		return nil
	})
	if walkErr != nil {
		return stats, fmt.Errorf("error walking %s: %w", root, walkErr)
	}
	return stats, nil
}
