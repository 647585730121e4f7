package service

import (
	"context"

	"monstermap/internal/domain/entity"
)

// GeocodingService defines the interface for the address autocomplete proxy.
// Implementations cache results per query; the cache is owned by the
// implementation, never ambient global state.
type GeocodingService interface {
	// Autocomplete returns address suggestions for a partial query.
	// Queries shorter than two runes yield an empty result without an
	// upstream call.
	Autocomplete(ctx context.Context, query string) ([]entity.AddressSuggestion, error)
}
