package refscrape

import "context"

// Fetcher retrieves catalog pages over the network.
type Fetcher interface {
	// Fetch issues a single GET for the URL and returns the resulting
	// document. A 404 response fails with ENOTFOUND (the resource is
	// confirmed gone); a 429 fails with ERATELIMITED (the caller's
	// scheduling layer should back off before retrying). Every other
	// status returns the body unmodified for the caller to interpret.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Document, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
