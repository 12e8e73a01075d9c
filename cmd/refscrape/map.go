package main

import (
	"fmt"

	"github.com/fwojciec/refscrape"
)

// Run executes the map add command.
func (c *MapAddCmd) Run(deps *Dependencies) error {
	rec := &refscrape.ExternalRecord{
		CompositeKey: c.Key,
		ExternalID:   c.ExternalID,
		Name:         c.Name,
	}

	if err := deps.Identity.CreateMapping(deps.Ctx, rec); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refscrape.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Mapped %s:%d -> %s\n", rec.CompositeKey, rec.ExternalID, rec.ID)
	return nil
}

// Run executes the map list command.
func (c *MapListCmd) Run(deps *Dependencies) error {
	filter := refscrape.MappingFilter{}
	if c.Key != "" {
		filter.CompositeKey = &c.Key
	}

	records, err := deps.Identity.FindMappings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refscrape.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No mappings found. Use 'refscrape map add' to create one.")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  %s:%d  %s\n", r.ID, r.CompositeKey, r.ExternalID, r.Name)
	}

	return nil
}
