package main

// FileRecord identifies one collected file. Records are created during
// traversal and discarded once tokenized or classified.
type FileRecord struct {
	Path    string // path usable for reading (root-joined)
	RelPath string // path relative to the scan root, slash-separated
	Ext     string // lowercased extension, ".ext" form
}

// FrequencyTable maps a label (word or language name) to its count.
// Zero-count entries are never stored; a fresh table is built per run.
type FrequencyTable map[string]int

// Add increments the count for label by n. Non-positive increments are
// ignored so absent keys never materialize with a zero count.
func (t FrequencyTable) Add(label string, n int) {
	if n <= 0 {
		return
	}
	t[label] += n
}

// Merge folds another table into this one.
func (t FrequencyTable) Merge(other FrequencyTable) {
	for label, count := range other {
		t.Add(label, count)
	}
}

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// RunSummary holds the counters reported at the end of a run.
type RunSummary struct {
	FilesProcessed int
	FilesSkipped   int
	TotalTokens    int
	UniqueLabels   int
}
