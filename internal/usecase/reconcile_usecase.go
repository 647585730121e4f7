// Package usecase defines the application-layer interfaces and their input types.
package usecase

import (
	"context"

	"monstermap/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitLocationInput carries one user submission: a location identity, the
// full variant set reported available there, and optional free-text context
// recorded on the submission itself.
type SubmitLocationInput struct {
	Name         string
	Address      string
	Latitude     float64
	Longitude    float64
	Variants     []string
	PriceRange   string
	OpeningHours string
	Notes        string
}

// NaturalKey returns the identity tuple the submission resolves against.
func (in *SubmitLocationInput) NaturalKey() entity.NaturalKey {
	return entity.NaturalKey{
		Name:      in.Name,
		Address:   in.Address,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
}

// UpdateLocationInput carries a partial edit of an existing location.
// Nil fields are left untouched; for Name and Address an empty string also
// means "no change", so there is no way to clear either field via this path.
// A non-nil Variants replaces the stored variant set outright (a pointer to
// an empty slice removes every variant).
type UpdateLocationInput struct {
	Name      *string
	Address   *string
	Latitude  *float64
	Longitude *float64
	Variants  *[]string
}

// ReconcileUsecase is the reconciliation engine: it resolves submission
// identity against stored locations and converges stored variants to the
// latest reported set.
type ReconcileUsecase interface {
	// SubmitLocation resolves or creates the location for the submitted
	// natural key, appends the submission to the audit log, and applies the
	// variant diff with reconfirmation. Returns the resolved location ID.
	SubmitLocation(ctx context.Context, input *SubmitLocationInput) (uuid.UUID, error)

	// UpdateLocation applies a partial edit to an existing location and, when
	// a variant set is supplied, applies the variant diff without
	// reconfirmation. No submission is logged by this path.
	UpdateLocation(ctx context.Context, locationID uuid.UUID, input *UpdateLocationInput) error
}
