package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/refscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ refscrape.IdentityService = (*IdentityService)(nil)

// IdentityService implements refscrape.IdentityService using SQLite.
type IdentityService struct {
	db *DB
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(db *DB) *IdentityService {
	return &IdentityService{db: db}
}

// Lookup returns the record mapped to (compositeKey, externalID), or
// (nil, nil) when no mapping exists.
func (s *IdentityService) Lookup(ctx context.Context, compositeKey string, externalID int64) (*refscrape.ExternalRecord, error) {
	var rec refscrape.ExternalRecord
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, composite_key, external_id, name, created_at
		FROM identity_mappings
		WHERE composite_key = ? AND external_id = ?
	`, compositeKey, externalID).Scan(&rec.ID, &rec.CompositeKey, &rec.ExternalID, &rec.Name, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &rec, nil
}

// CreateMapping registers a new mapping. Returns ECONFLICT if the
// (CompositeKey, ExternalID) pair is already mapped.
func (s *IdentityService) CreateMapping(ctx context.Context, rec *refscrape.ExternalRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	if existing, err := s.Lookup(ctx, rec.CompositeKey, rec.ExternalID); err != nil {
		return err
	} else if existing != nil {
		return refscrape.Errorf(refscrape.ECONFLICT, "mapping already exists for %s:%d", rec.CompositeKey, rec.ExternalID)
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO identity_mappings (id, composite_key, external_id, name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, rec.ID, rec.CompositeKey, rec.ExternalID, rec.Name, rec.CreatedAt.Format(time.RFC3339))

	return err
}

// FindMappings retrieves mappings matching the filter, ordered by
// composite key and external id.
func (s *IdentityService) FindMappings(ctx context.Context, filter refscrape.MappingFilter) ([]*refscrape.ExternalRecord, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, composite_key, external_id, name, created_at FROM identity_mappings WHERE 1=1")

	if filter.CompositeKey != nil {
		query.WriteString(" AND composite_key = ?")
		args = append(args, *filter.CompositeKey)
	}
	if filter.ExternalID != nil {
		query.WriteString(" AND external_id = ?")
		args = append(args, *filter.ExternalID)
	}

	query.WriteString(" ORDER BY composite_key, external_id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*refscrape.ExternalRecord
	for rows.Next() {
		var rec refscrape.ExternalRecord
		var createdAt string

		if err := rows.Scan(&rec.ID, &rec.CompositeKey, &rec.ExternalID, &rec.Name, &createdAt); err != nil {
			return nil, err
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		records = append(records, &rec)
	}

	return records, rows.Err()
}
