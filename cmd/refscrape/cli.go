package main

import (
	"context"
	"io"

	"github.com/fwojciec/refscrape"
	"github.com/fwojciec/refscrape/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Fetcher  refscrape.Fetcher
	Identity refscrape.IdentityService
	Sitemaps refscrape.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Sections SectionsCmd `cmd:"" help:"Fetch a page and print its parsed sections"`
	Resolve  ResolveCmd  `cmd:"" help:"Resolve a canonical URL against the identity mapping"`
	Discover DiscoverCmd `cmd:"" help:"Discover catalog entry URLs from a site's sitemap"`
	Map      MapCmd      `cmd:"" help:"Manage identity mappings"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	URL       string   `arg:"" help:"Page URL to fetch"`
	Container string   `short:"c" default:"body" help:"CSS selector of the container to parse"`
	Class     []string `short:"C" name:"header-class" help:"Class token treated as a header marker (repeatable)"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	URL    string `arg:"" help:"Canonical URL to resolve"`
	Source string `short:"s" default:"mal" help:"Source name for the composite key"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL   string   `arg:"" help:"Site base URL"`
	Kinds []string `short:"k" help:"Restrict to entity kinds (repeatable)"`
}

// MapCmd groups the mapping management subcommands.
type MapCmd struct {
	Add  MapAddCmd  `cmd:"" help:"Add an identity mapping"`
	List MapListCmd `cmd:"" help:"List identity mappings"`
}

// MapAddCmd is the "map add" subcommand.
type MapAddCmd struct {
	Key        string `arg:"" help:"Composite key, e.g. mal/anime"`
	ExternalID int64  `arg:"" help:"Third-party numeric id"`
	Name       string `arg:"" optional:"" help:"Display name"`
}

// MapListCmd is the "map list" subcommand.
type MapListCmd struct {
	Key string `short:"k" help:"Filter by composite key"`
}
