package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankEntries(t *testing.T) {
	table := FrequencyTable{"go": 3, "rust": 5, "zig": 3, "ada": 1}

	entries := rankEntries(table, 0)
	require.Len(t, entries, 4)
	assert.Equal(t, Entry{"rust", 5}, entries[0])
	// Ties broken by label so ranking is stable across runs.
	assert.Equal(t, Entry{"go", 3}, entries[1])
	assert.Equal(t, Entry{"zig", 3}, entries[2])
	assert.Equal(t, Entry{"ada", 1}, entries[3])
}

func TestRankEntriesTruncates(t *testing.T) {
	table := FrequencyTable{"a": 1, "b": 2, "c": 3}
	entries := rankEntries(table, 2)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].Label)
	assert.Equal(t, "b", entries[1].Label)
}

func TestTextRendererWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "summary.txt")
	r := &TextRenderer{OutputFile: out}

	err := r.Render(FrequencyTable{"go": 3, "going": 1}, RenderConfig{MaxWords: 50})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "go: 3")
	assert.Contains(t, string(data), "going: 1")
}

func TestPDFRendererWritesFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "cloud.pdf")
	r := &PDFRenderer{OutputFile: out}

	cfg := RenderConfig{
		Width:           1600,
		Height:          800,
		BackgroundColor: "white",
		MaxWords:        50,
		Colormap:        "Set1",
		RelativeScaling: 0.5,
		MinFontSize:     12,
	}
	err := r.Render(FrequencyTable{"python": 12, "go": 7, "rust": 3}, cfg)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestPDFRendererEmptyTable(t *testing.T) {
	r := &PDFRenderer{OutputFile: filepath.Join(t.TempDir(), "empty.pdf")}
	err := r.Render(FrequencyTable{}, RenderConfig{})
	require.Error(t, err)
}
