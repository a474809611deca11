package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
)

// RenderConfig carries the rendering-only options recognized by adapters.
// Effects are confined to the adapter; the aggregation pipeline never reads
// these values.
type RenderConfig struct {
	Width           int
	Height          int
	BackgroundColor string
	MaxWords        int
	Colormap        string
	RelativeScaling float64
	MinFontSize     int
}

// Renderer turns a finalized label→weight table into an artifact. The table
// is handed over exactly once per run and must not be mutated.
type Renderer interface {
	Render(table FrequencyTable, cfg RenderConfig) error
}

// Entry is one ranked label.
type Entry struct {
	Label string
	Count int
}

// rankEntries orders the table by descending count, ties broken by label,
// truncated to max entries. max <= 0 means no limit. The aggregator emits
// an unordered table; ranking is an adapter concern.
func rankEntries(table FrequencyTable, max int) []Entry {
	entries := make([]Entry, 0, len(table))
	for label, count := range table {
		entries = append(entries, Entry{Label: label, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Label < entries[j].Label
	})
	if max > 0 && len(entries) > max {
		entries = entries[:max]
	}
	return entries
}

// TextRenderer writes a ranked summary to a file, the clipboard, or stdout.
type TextRenderer struct {
	OutputFile  string
	ToClipboard bool
}

func (r *TextRenderer) Render(table FrequencyTable, cfg RenderConfig) error {
	entries := rankEntries(table, cfg.MaxWords)

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Top %d labels:\n", len(entries)))
	for _, e := range entries {
		builder.WriteString(fmt.Sprintf("  %s: %d\n", e.Label, e.Count))
	}
	out := builder.String()

	if r.OutputFile != "" {
		if err := os.WriteFile(r.OutputFile, []byte(out), 0644); err != nil {
			return fmt.Errorf("error writing output to %s: %w", r.OutputFile, err)
		}
		fmt.Printf("Output saved to %s\n", r.OutputFile)
		return nil
	}
	if r.ToClipboard {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write to clipboard: %v\n", err)
			fmt.Println(out)
			return nil
		}
		fmt.Println("Output copied to clipboard.")
		return nil
	}
	fmt.Println(out)
	return nil
}
