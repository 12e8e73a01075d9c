package refscrape

import (
	"context"
	"regexp"
)

// SitemapService discovers scrape target URLs from a source site's
// sitemap.
type SitemapService interface {
	// DiscoverURLs finds all URLs from a site's sitemap. It first checks
	// robots.txt for sitemap directives, then falls back to
	// /sitemap.xml. Sitemap indexes are resolved recursively.
	//
	// The filter can be used to restrict discovery to canonical entity
	// paths (e.g. only /anime/ pages). If filter is nil, all URLs are
	// returned.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}

// URLFilter specifies patterns for including/excluding URLs.
type URLFilter struct {
	// Include patterns - if set, only URLs matching at least one pattern are included.
	Include []*regexp.Regexp

	// Exclude patterns - URLs matching any pattern are excluded.
	// Exclude is applied after Include.
	Exclude []*regexp.Regexp
}

// KindFilter returns a filter that keeps only canonical pages of the
// given kinds, matching their /segment/<id>/ paths.
func KindFilter(kinds ...Kind) *URLFilter {
	f := &URLFilter{}
	for _, kind := range kinds {
		segment := kind.PathSegment()
		if segment == "" {
			continue
		}
		f.Include = append(f.Include, regexp.MustCompile(`/`+regexp.QuoteMeta(segment)+`/\d+(?:/|$)`))
	}
	return f
}

// Match returns true if the URL passes the filter.
// If the filter is nil, all URLs pass.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}

	// If include patterns exist, URL must match at least one
	if len(f.Include) > 0 {
		matched := false
		for _, re := range f.Include {
			if re.MatchString(url) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// URL must not match any exclude pattern
	for _, re := range f.Exclude {
		if re.MatchString(url) {
			return false
		}
	}

	return true
}
