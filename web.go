package main

import (
	"crypto/sha256"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/PuerkitoBio/goquery"
)

// isWebURL reports whether input is an HTTP/HTTPS URL.
func isWebURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// fetchStopwordCorpus downloads a plain-text word list and caches it under
// the user cache dir, keyed by URL. A cached copy is reused on later runs
// so the corpus stays available offline.
func fetchStopwordCorpus(corpusURL string) ([]string, error) {
	cachePath := corpusCachePath(corpusURL)
	if cachePath != "" {
		if f, err := os.Open(cachePath); err == nil {
			defer f.Close()
			return readCorpus(f)
		}
	}

	res, err := http.Get(corpusURL)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("fetching %s: status %d", corpusURL, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	if cachePath != "" {
		if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err == nil {
			// Cache write failures are not worth failing the run over.
			_ = os.WriteFile(cachePath, body, 0644)
		}
	}

	return readCorpus(strings.NewReader(string(body)))
}

func corpusCachePath(corpusURL string) string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	sum := sha256.Sum256([]byte(corpusURL))
	return filepath.Join(cacheDir, "nimbus", fmt.Sprintf("stopwords-%x.txt", sum[:8]))
}

// WebPage is one fetched page reduced to plain markdown text, ready for
// tokenization.
type WebPage struct {
	URL  string
	Text string
}

// collectWebPages fetches startURL, converts the HTML to markdown text, and
// follows same-scheme links up to maxDepth. Fetch and parse failures skip
// the page and keep the run going; the skip count is returned alongside the
// pages so the run summary stays honest. Visited URLs are never refetched.
func collectWebPages(startURL string, maxDepth int) ([]WebPage, int) {
	c := &webCollector{visited: make(map[string]bool)}
	pages := c.collect(startURL, 0, maxDepth)
	return pages, c.skipped
}

type webCollector struct {
	visited map[string]bool
	skipped int
}

func (c *webCollector) collect(startURL string, currentDepth, maxDepth int) []WebPage {
	parsedURL, err := url.Parse(startURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid URL %s: %v\n", startURL, err)
		c.skipped++
		return nil
	}
	parsedURL.Fragment = ""
	cleanURL := parsedURL.String()

	if currentDepth > maxDepth || c.visited[cleanURL] {
		return nil
	}
	c.visited[cleanURL] = true

	res, err := http.Get(cleanURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to fetch %s: %v\n", cleanURL, err)
		c.skipped++
		return nil
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		fmt.Fprintf(os.Stderr, "Warning: failed to fetch %s: status %d\n", cleanURL, res.StatusCode)
		c.skipped++
		return nil
	}
	if ct := res.Header.Get("Content-Type"); !strings.Contains(strings.ToLower(ct), "text/html") {
		c.skipped++
		return nil
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to read %s: %v\n", cleanURL, err)
		c.skipped++
		return nil
	}

	var pages []WebPage
	converter := md.NewConverter("", true, nil)
	if text, err := converter.ConvertString(string(body)); err == nil {
		pages = append(pages, WebPage{URL: cleanURL, Text: text})
	} else {
		fmt.Fprintf(os.Stderr, "Warning: failed to convert %s: %v\n", cleanURL, err)
		c.skipped++
	}

	if currentDepth < maxDepth {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
		if err != nil {
			return pages
		}
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			link, ok := s.Attr("href")
			if !ok || link == "" || strings.HasPrefix(link, "#") {
				return
			}
			lower := strings.ToLower(link)
			if strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "javascript:") {
				return
			}
			resolved, err := parsedURL.Parse(link)
			if err != nil {
				return
			}
			if resolved.Scheme != "http" && resolved.Scheme != "https" {
				return
			}
			pages = append(pages, c.collect(resolved.String(), currentDepth+1, maxDepth)...)
		})
	}

	return pages
}

// aggregateWebWords tokenizes fetched pages into a lexical table, applying
// the same stopword filter as the file pipeline.
func aggregateWebWords(pages []WebPage, stop *Stopwords) (FrequencyTable, RunSummary) {
	table := make(FrequencyTable)
	for _, page := range pages {
		countTokens(table, tokenizeBytes([]byte(page.Text)), stop)
	}
	return table, RunSummary{
		FilesProcessed: len(pages),
		TotalTokens:    table.Total(),
		UniqueLabels:   len(table),
	}
}
