package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
)

// countTokens folds tokens into table, skipping stopwords.
func countTokens(table FrequencyTable, tokens []string, stop *Stopwords) {
	for _, token := range tokens {
		if stop.Contains(token) {
			continue
		}
		table.Add(token, 1)
	}
}

// aggregateWords tokenizes every collected file and accumulates the
// surviving tokens into one FrequencyTable. Tokenization fans out across a
// worker pool; each file produces a private partial table and the partials
// are merged in a single accumulation step, so the result does not depend
// on visitation order. Unreadable files contribute nothing.
func aggregateWords(files []FileRecord, stop *Stopwords, workers int) (FrequencyTable, RunSummary) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan FileRecord, len(files))
	partials := make(chan FrequencyTable, len(files))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				tokens, err := tokenizeFile(rec.Path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", rec.Path, err)
					continue
				}
				partial := make(FrequencyTable)
				countTokens(partial, tokens, stop)
				partials <- partial
			}
		}()
	}

	for _, rec := range files {
		jobs <- rec
	}
	close(jobs)
	wg.Wait()
	close(partials)

	table := make(FrequencyTable)
	processed := 0
	for partial := range partials {
		table.Merge(partial)
		processed++
	}

	return table, RunSummary{
		FilesProcessed: processed,
		TotalTokens:    table.Total(),
		UniqueLabels:   len(table),
	}
}

// aggregateLanguages classifies each collected file through the language
// map and counts one per file. Unknown extensions land in the "Other"
// bucket.
func aggregateLanguages(files []FileRecord, langs LanguageMap) (FrequencyTable, RunSummary) {
	table := make(FrequencyTable)
	for _, rec := range files {
		table.Add(langs.Language(rec.Ext), 1)
	}
	return table, RunSummary{
		FilesProcessed: len(files),
		UniqueLabels:   len(table),
	}
}
