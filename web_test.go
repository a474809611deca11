package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body>
<p>hello repository words</p>
<a href="/two">second</a>
<a href="/missing">gone</a>
</body></html>`)
	})
	mux.HandleFunc("/two", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><p>hello again</p></body></html>`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestCollectWebPagesFollowsLinksAndCountsSkips(t *testing.T) {
	srv := newTestSite(t)

	pages, skipped := collectWebPages(srv.URL, 1)
	require.Len(t, pages, 2)
	assert.Equal(t, 1, skipped, "the 404 link should be counted as skipped")
	assert.Contains(t, pages[0].Text, "hello repository words")
	assert.Contains(t, pages[1].Text, "hello again")
}

func TestCollectWebPagesDepthZero(t *testing.T) {
	srv := newTestSite(t)

	pages, skipped := collectWebPages(srv.URL, 0)
	require.Len(t, pages, 1)
	assert.Equal(t, 0, skipped, "links past the depth limit are not skips")
}

func TestCollectWebPagesUnreachable(t *testing.T) {
	srv := newTestSite(t)
	srv.Close()

	pages, skipped := collectWebPages(srv.URL, 0)
	assert.Empty(t, pages)
	assert.Equal(t, 1, skipped)
}

func TestAggregateWebWords(t *testing.T) {
	srv := newTestSite(t)

	pages, _ := collectWebPages(srv.URL, 1)
	table, summary := aggregateWebWords(pages, loadStopwords(""))

	assert.Equal(t, 2, table["hello"])
	assert.Equal(t, 1, table["repository"])
	assert.Equal(t, 2, summary.FilesProcessed)
}
