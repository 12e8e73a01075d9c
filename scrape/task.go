// Package scrape provides scrape orchestration: per-URL tasks with a
// memoized fetch, and rate-limited, bounded-concurrency runs over many
// catalog URLs. Retry policy lives here, not in the fetcher: the core
// only classifies failures; this layer decides what to do about them.
package scrape

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/refscrape"
	"github.com/fwojciec/refscrape/goquery"
)

// Task is the unit of work for one catalog page. It memoizes the fetch:
// the first Document call performs the network request and caches the
// result for the task's lifetime; later calls return the cached value
// without a new request. Errors are not cached, so a failed fetch can be
// retried by calling again.
//
// A Task is single-goroutine state. Create one per URL per concurrent
// unit of work; never share a task between goroutines.
type Task struct {
	fetcher refscrape.Fetcher
	url     string

	doc  *refscrape.Document
	page *goquery.Page
}

// NewTask creates a task for one URL.
func NewTask(fetcher refscrape.Fetcher, url string) *Task {
	return &Task{fetcher: fetcher, url: url}
}

// URL returns the task's target URL.
func (t *Task) URL() string {
	return t.url
}

// Document returns the fetched page, fetching it on first call.
func (t *Task) Document(ctx context.Context) (*refscrape.Document, error) {
	if t.doc != nil {
		return t.doc, nil
	}
	doc, err := t.fetcher.Fetch(ctx, t.url)
	if err != nil {
		return nil, err
	}
	t.doc = doc
	return t.doc, nil
}

// Page returns the parsed view over the fetched document, fetching and
// parsing on first call.
func (t *Task) Page(ctx context.Context) (*goquery.Page, error) {
	if t.page != nil {
		return t.page, nil
	}
	doc, err := t.Document(ctx)
	if err != nil {
		return nil, err
	}
	page, err := goquery.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	t.page = page
	return t.page, nil
}

// Hash returns the xxhash digest of the fetched document's HTML, used
// for change detection between scrape runs. Fetches on first call.
func (t *Task) Hash(ctx context.Context) (string, error) {
	doc, err := t.Document(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", xxhash.Sum64String(doc.HTML)), nil
}
