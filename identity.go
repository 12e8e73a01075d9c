package refscrape

import (
	"context"
	"time"
)

// ExternalRecord links one third-party catalog entity to an internally
// known record. Records are owned by the identity store; this package
// only holds transient lookup results.
type ExternalRecord struct {
	ID           string    `json:"id"`
	CompositeKey string    `json:"compositeKey"`
	ExternalID   int64     `json:"externalId"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *ExternalRecord) Validate() error {
	if r.CompositeKey == "" {
		return Errorf(EINVALID, "mapping composite key required")
	}
	if r.ExternalID <= 0 {
		return Errorf(EINVALID, "mapping external ID required")
	}
	return nil
}

// IdentityService maps third-party entity ids to internal records.
type IdentityService interface {
	// Lookup returns the record mapped to (compositeKey, externalID).
	// A missing mapping returns (nil, nil): unmapped external entities
	// are expected, not exceptional.
	Lookup(ctx context.Context, compositeKey string, externalID int64) (*ExternalRecord, error)

	// CreateMapping registers a new mapping.
	// Returns ECONFLICT if the (CompositeKey, ExternalID) pair is
	// already mapped.
	CreateMapping(ctx context.Context, rec *ExternalRecord) error

	// FindMappings retrieves mappings matching the filter.
	FindMappings(ctx context.Context, filter MappingFilter) ([]*ExternalRecord, error)
}

// MappingFilter represents a filter for FindMappings.
type MappingFilter struct {
	CompositeKey *string `json:"compositeKey"`
	ExternalID   *int64  `json:"externalId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
