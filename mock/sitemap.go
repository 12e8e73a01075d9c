package mock

import (
	"context"

	"github.com/fwojciec/refscrape"
)

var _ refscrape.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of refscrape.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *refscrape.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *refscrape.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
