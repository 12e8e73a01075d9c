package main

import (
	"fmt"

	"github.com/fwojciec/refscrape"
)

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	var filter *refscrape.URLFilter
	if len(c.Kinds) > 0 {
		kinds := make([]refscrape.Kind, 0, len(c.Kinds))
		for _, k := range c.Kinds {
			kinds = append(kinds, refscrape.Kind(k))
		}
		filter = refscrape.KindFilter(kinds...)
	}

	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refscrape.ErrorMessage(err))
		return err
	}

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stdout, "No URLs discovered.")
		return nil
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}
	fmt.Fprintf(deps.Stdout, "\n%d URLs discovered.\n", len(urls))
	return nil
}
