package repository

import (
	"context"
	"time"

	"monstermap/internal/domain/entity"

	"github.com/google/uuid"
)

// VariantRepository defines the interface for variant-related database operations.
// Variant identity is the (location_id, variant_name) pair.
type VariantRepository interface {
	// ListNamesByLocation returns the variant names currently stored for a location.
	ListNamesByLocation(ctx context.Context, locationID uuid.UUID) ([]string, error)

	// Create inserts a new variant row with its initial provenance fields.
	Create(ctx context.Context, variant *entity.Variant) error

	// Reconfirm bumps the confirmation counter and refreshes the
	// last-confirmed provenance of an existing variant.
	Reconfirm(ctx context.Context, locationID uuid.UUID, name, reporter string, at time.Time) error

	// DeleteByNames removes the named variant rows for a location outright.
	DeleteByNames(ctx context.Context, locationID uuid.UUID, names []string) error

	// DeleteByLocation removes all variant rows for a location.
	DeleteByLocation(ctx context.Context, locationID uuid.UUID) error

	// SearchNames returns distinct variant names matching the query as a
	// case-insensitive substring, most-confirmed first.
	SearchNames(ctx context.Context, query string, limit int) ([]string, error)
}
