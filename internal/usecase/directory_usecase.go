package usecase

import (
	"context"

	"monstermap/internal/domain/entity"

	"github.com/paulmach/orb"
)

// DirectoryUsecase serves the read side of the map: location listings and
// variant-name autocomplete.
type DirectoryUsecase interface {
	// ListLocations returns all locations with their variant names, ordered
	// by name. A non-nil bounds restricts the result to the map viewport.
	ListLocations(ctx context.Context, bounds *orb.Bound) ([]*entity.LocationSummary, error)

	// SearchVariants returns distinct variant names matching the query,
	// most-confirmed first.
	SearchVariants(ctx context.Context, query string) ([]string, error)
}
