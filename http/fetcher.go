// Package http provides HTTP-based implementations of refscrape.Fetcher
// and refscrape.SitemapService for talking to source catalog sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/refscrape"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements refscrape.Fetcher at compile time.
var _ refscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves catalog pages using plain HTTP requests and
// classifies failure statuses into the scrape error taxonomy. It carries
// no retry or backoff policy of its own; 429 classification is purely
// informational for the caller's scheduling layer.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch issues a single GET for the URL. A 404 fails with ENOTFOUND
// (the page is confirmed gone); a 429 fails with ERATELIMITED (the
// caller should back off). Every other status returns the body
// unmodified for the orchestrator to interpret.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*refscrape.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, refscrape.Errorf(refscrape.ENOTFOUND, "page not found: %s", url)
	case http.StatusTooManyRequests:
		return nil, refscrape.Errorf(refscrape.ERATELIMITED, "too many requests: %s", url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &refscrape.Document{
		URL:        url,
		HTML:       string(body),
		StatusCode: resp.StatusCode,
		FetchedAt:  time.Now().UTC(),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
