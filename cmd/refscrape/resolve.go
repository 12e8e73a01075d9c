package main

import (
	"fmt"

	"github.com/fwojciec/refscrape"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	resolver := refscrape.NewResolver(c.Source, deps.Identity, nil)

	record, err := resolver.ResolveURL(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refscrape.ErrorMessage(err))
		return err
	}

	if record == nil {
		fmt.Fprintln(deps.Stdout, "No mapping found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%s  %s:%d  %s\n", record.ID, record.CompositeKey, record.ExternalID, record.Name)
	return nil
}
