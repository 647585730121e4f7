package usecase

import (
	"context"

	"monstermap/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminUsecase is the moderation gate: credential issuance plus the
// destructive and annotation operations it protects.
type AdminUsecase interface {
	// Authenticate exchanges the admin secret for a time-boxed bearer token.
	Authenticate(ctx context.Context, secret string) (string, error)

	// ListLocations returns the full listing with moderation notes.
	ListLocations(ctx context.Context) ([]*entity.AdminLocationSummary, error)

	// DeleteLocation removes a location with all its variants and
	// submissions, in dependency order, atomically.
	DeleteLocation(ctx context.Context, locationID uuid.UUID) error

	// SetNote stores a free-text moderation note against a location.
	SetNote(ctx context.Context, locationID uuid.UUID, note string) error
}
