// Package refscrape provides the core parsing and resolution layer for
// scraping reference data from third-party media catalog pages. It splits
// header-delimited markup into named sections, cleans attribution
// boilerplate from free text, and resolves canonical catalog URLs back to
// internally known records via an identity mapping.
//
// This package contains domain types, pure parsing functions, and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., http/, sqlite/, goquery/); scrape orchestration
// lives in scrape/.
package refscrape
