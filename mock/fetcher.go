package mock

import (
	"context"

	"github.com/fwojciec/refscrape"
)

var _ refscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of refscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*refscrape.Document, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*refscrape.Document, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
