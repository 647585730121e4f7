// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"monstermap/internal/domain/entity"
	"monstermap/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrDuplicateNaturalKey is returned when an insert collides with the
	// unique (name, address, latitude, longitude) constraint.
	ErrDuplicateNaturalKey = errors.New("location natural key already exists")
)

// LocationRepository defines the interface for location-related database operations.
type LocationRepository interface {
	// Create persists a new location. Returns ErrDuplicateNaturalKey when a
	// concurrent writer won the race on the natural-key unique constraint.
	Create(ctx context.Context, location *entity.Location) error

	// FindByNaturalKey retrieves the location whose (name, address, latitude,
	// longitude) tuple exactly matches the key. Returns ErrLocationNotFound
	// if no such location exists.
	FindByNaturalKey(ctx context.Context, key entity.NaturalKey) (*entity.Location, error)

	// FindByID retrieves a location by its ID. Returns ErrLocationNotFound
	// if it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindByIDForUpdate retrieves a location by ID and takes a row lock on it
	// for the duration of the surrounding transaction. Concurrent variant
	// diffs against the same location serialize on this lock.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// Update overwrites the mutable fields of an existing location.
	Update(ctx context.Context, location *entity.Location) error

	// Delete removes a location row. Variants and submissions must already
	// be gone; callers drive the cascade in dependency order.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListWithVariants returns all locations with their aggregated variant
	// names, ordered by name ascending.
	ListWithVariants(ctx context.Context) ([]*entity.LocationSummary, error)

	// ListForAdmin returns all locations with variants and the latest
	// submission note, ordered by name ascending.
	ListForAdmin(ctx context.Context) ([]*entity.AdminLocationSummary, error)
}
