package main

import (
	"fmt"
	"os"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// isGitURL reports whether the source argument names a git repository
// rather than a local path. HTTP(S) URLs are handled by the web source
// unless they carry the .git suffix.
func isGitURL(input string) bool {
	return strings.HasSuffix(input, ".git") || strings.HasPrefix(input, "git@")
}

// cloneScanSource clones url into a temporary directory and returns the
// directory along with a cleanup function. The clone is shallow in spirit:
// default branch only, no extra refs.
func cloneScanSource(url string) (string, func(), error) {
	tempDir, err := os.MkdirTemp("", "nimbus-git-")
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temporary directory: %w", err)
	}

	fmt.Printf("Cloning %s into %s...\n", url, tempDir)
	_, err = git.PlainClone(tempDir, false, &git.CloneOptions{
		URL:           url,
		Progress:      os.Stdout,
		ReferenceName: plumbing.HEAD,
		SingleBranch:  true,
	})
	if err != nil {
		_ = os.RemoveAll(tempDir)
		return "", nil, fmt.Errorf("failed to clone %s: %w", url, err)
	}

	cleanup := func() { _ = os.RemoveAll(tempDir) }
	return tempDir, cleanup, nil
}
