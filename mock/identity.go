package mock

import (
	"context"

	"github.com/fwojciec/refscrape"
)

var _ refscrape.IdentityService = (*IdentityService)(nil)

// IdentityService is a mock implementation of refscrape.IdentityService.
type IdentityService struct {
	LookupFn        func(ctx context.Context, compositeKey string, externalID int64) (*refscrape.ExternalRecord, error)
	CreateMappingFn func(ctx context.Context, rec *refscrape.ExternalRecord) error
	FindMappingsFn  func(ctx context.Context, filter refscrape.MappingFilter) ([]*refscrape.ExternalRecord, error)
}

func (s *IdentityService) Lookup(ctx context.Context, compositeKey string, externalID int64) (*refscrape.ExternalRecord, error) {
	return s.LookupFn(ctx, compositeKey, externalID)
}

func (s *IdentityService) CreateMapping(ctx context.Context, rec *refscrape.ExternalRecord) error {
	return s.CreateMappingFn(ctx, rec)
}

func (s *IdentityService) FindMappings(ctx context.Context, filter refscrape.MappingFilter) ([]*refscrape.ExternalRecord, error) {
	return s.FindMappingsFn(ctx, filter)
}
