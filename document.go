package refscrape

import "time"

// Document represents one fetched catalog page. It is produced once by a
// Fetcher and passed by ownership into downstream parsing stages; nothing
// in this package mutates a Document after construction.
type Document struct {
	// Source URL the document was fetched from.
	URL string

	// Raw HTML body as returned by the source.
	HTML string

	// HTTP status code of the response. The fetcher classifies 404 and
	// 429 as errors; every other status is passed through here for the
	// orchestrator to interpret.
	StatusCode int

	// Time the fetch completed.
	FetchedAt time.Time
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}
