package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageLookup(t *testing.T) {
	lm := defaultLanguageMap()
	assert.Equal(t, "Python", lm.Language(".py"))
	assert.Equal(t, "Python", lm.Language(".PY"))
	assert.Equal(t, "C++", lm.Language(".hpp"))
	assert.Equal(t, "Other", lm.Language(".zig"))
	assert.Equal(t, "Other", lm.Language(""))
}

func TestLanguageOverlay(t *testing.T) {
	lm := defaultLanguageMap()
	lm.applyOverlay(languageOverlay{
		"Zig": {Extensions: []string{"zig"}},
		"Ruby": {Extensions: []string{".RAKE"}},
	})
	assert.Equal(t, "Zig", lm.Language(".zig"))
	assert.Equal(t, "Ruby", lm.Language(".rake"))
	assert.Equal(t, "Go", lm.Language(".go")) // built-ins untouched
}

func TestExtensionSetsPerMode(t *testing.T) {
	// FULL carries markup and config; CODE-ONLY drops them and adds more code.
	assert.True(t, fullExtensions[".md"])
	assert.True(t, fullExtensions[".json"])
	assert.False(t, fullExtensions[".swift"])

	assert.False(t, codeExtensions[".md"])
	assert.False(t, codeExtensions[".json"])
	for _, ext := range []string{".hpp", ".swift", ".m", ".bash", ".pl", ".r"} {
		assert.True(t, codeExtensions[ext], "code set should include %s", ext)
	}

	// Every code-mode extension classifies to a real language.
	lm := defaultLanguageMap()
	for ext := range codeExtensions {
		assert.NotEqual(t, "Other", lm.Language(ext), "%s should be classified", ext)
	}
}
