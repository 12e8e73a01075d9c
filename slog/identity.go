package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refscrape"
)

// Ensure LoggingIdentityService implements refscrape.IdentityService.
var _ refscrape.IdentityService = (*LoggingIdentityService)(nil)

// LoggingIdentityService wraps an IdentityService with lookup logging.
type LoggingIdentityService struct {
	next   refscrape.IdentityService
	logger *slog.Logger
}

// NewLoggingIdentityService creates a new LoggingIdentityService.
func NewLoggingIdentityService(next refscrape.IdentityService, logger *slog.Logger) *LoggingIdentityService {
	return &LoggingIdentityService{next: next, logger: logger}
}

// Lookup delegates to the wrapped service and logs the operation.
func (s *LoggingIdentityService) Lookup(ctx context.Context, compositeKey string, externalID int64) (rec *refscrape.ExternalRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("identity lookup",
			"key", compositeKey,
			"external_id", externalID,
			"hit", rec != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Lookup(ctx, compositeKey, externalID)
}

// CreateMapping delegates to the wrapped service and logs the operation.
func (s *LoggingIdentityService) CreateMapping(ctx context.Context, rec *refscrape.ExternalRecord) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("identity mapping created",
			"key", rec.CompositeKey,
			"external_id", rec.ExternalID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateMapping(ctx, rec)
}

// FindMappings delegates to the wrapped service.
func (s *LoggingIdentityService) FindMappings(ctx context.Context, filter refscrape.MappingFilter) ([]*refscrape.ExternalRecord, error) {
	return s.next.FindMappings(ctx, filter)
}
