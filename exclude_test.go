package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadExcludePatterns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exclude.txt")
	content := "# build artifacts\nnode_modules\n\n*.min.js\n  dist  \n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	patterns, err := loadExcludePatterns(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"node_modules", "*.min.js", "dist"}, patterns)
}

func TestLoadExcludePatternsMissingFile(t *testing.T) {
	patterns, err := loadExcludePatterns(filepath.Join(t.TempDir(), "nope.txt"))
	require.NoError(t, err)
	assert.Empty(t, patterns)
}

func TestExcludedByComponent(t *testing.T) {
	m := newExcludeMatcher([]string{"node_modules", "*.min.js"})

	assert.True(t, m.Excluded("node_modules"))
	assert.True(t, m.Excluded("src/node_modules/pkg/index.js"))
	assert.True(t, m.Excluded("vendor/app.min.js"))
	assert.False(t, m.Excluded("src/app.js"))
	assert.False(t, m.Excluded("my_node_modules/app.js"))
}

func TestExcludedByFullPath(t *testing.T) {
	m := newExcludeMatcher([]string{"docs/*"})

	assert.True(t, m.Excluded("docs/readme.md"))
	assert.False(t, m.Excluded("mydocs/readme.md"))
}

func TestExcludedCaseSensitive(t *testing.T) {
	m := newExcludeMatcher([]string{"build"})

	assert.True(t, m.Excluded("build/out.js"))
	assert.False(t, m.Excluded("Build/out.js"))
}

func TestExcludedEmptyRuleSet(t *testing.T) {
	assert.False(t, newExcludeMatcher(nil).Excluded("anything/at/all.py"))

	var m *ExcludeMatcher
	assert.False(t, m.Excluded("nil/receiver.py"))
}

func TestNewExcludeMatcherSkipsInvalidPatterns(t *testing.T) {
	m := newExcludeMatcher([]string{"[", "keep"})
	assert.True(t, m.Excluded("keep"))
	assert.False(t, m.Excluded("["))
}
