package main

import (
	"fmt"

	"github.com/fwojciec/refscrape"
	"github.com/fwojciec/refscrape/goquery"
	"github.com/fwojciec/refscrape/scrape"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	task := scrape.NewTask(deps.Fetcher, c.URL)
	page, err := task.Page(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refscrape.ErrorMessage(err))
		return err
	}

	parser := refscrape.NewSectionParser()
	parser.HeaderClasses = c.Class

	sections := page.Sections(c.Container, parser)
	if sections.Len() == 0 {
		fmt.Fprintf(deps.Stdout, "No sections found under %q.\n", c.Container)
		return nil
	}

	for _, key := range sections.Keys() {
		nodes := sections.Get(key)
		fmt.Fprintf(deps.Stdout, "%s (%d nodes)\n", key, len(nodes))
		if text := refscrape.Clean(goquery.Text(nodes)); text != "" && !refscrape.IsPlaceholder(text) {
			fmt.Fprintf(deps.Stdout, "  %s\n", truncate(text, 120))
		}
	}

	return nil
}

// truncate shortens s to at most n runes for display.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
