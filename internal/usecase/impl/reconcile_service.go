// Package impl contains the concrete implementations of the application use cases.
package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"monstermap/internal/domain/entity"
	domainerrors "monstermap/internal/domain/errors"
	"monstermap/internal/domain/repository"
	"monstermap/internal/errors"
	"monstermap/internal/usecase"

	"github.com/google/uuid"
)

// anonymousReporter is the placeholder identity recorded for all submissions;
// the public submission path carries no user accounts.
const anonymousReporter = "anonymous"

type reconcileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewReconcileService creates the reconciliation engine.
func NewReconcileService(txManager repository.TransactionManager, logger *slog.Logger) usecase.ReconcileUsecase {
	return &reconcileService{
		txManager: txManager,
		logger:    logger,
	}
}

// SubmitLocation resolves the submitted natural key to a location (creating
// one if unseen), appends the submission record, and converges the stored
// variant set to the requested one. Everything runs in a single transaction.
//
// When a concurrent submission wins the race on the natural-key unique
// constraint, the losing transaction is retried once so it re-resolves
// against the winner's row. A second conflict is surfaced as a store error.
func (s *reconcileService) SubmitLocation(ctx context.Context, input *usecase.SubmitLocationInput) (uuid.UUID, error) {
	if err := validateSubmitInput(input); err != nil {
		return uuid.Nil, err
	}

	locationID, err := s.submitOnce(ctx, input)
	if errors.Is(err, repository.ErrDuplicateNaturalKey) {
		s.logger.Debug("natural key race lost, re-resolving",
			slog.String("name", input.Name))

		locationID, err = s.submitOnce(ctx, input)
		if errors.Is(err, repository.ErrDuplicateNaturalKey) {
			return uuid.Nil, domainerrors.NewDatabaseExecuteError(err, "natural key conflict persisted after retry")
		}
	}

	return locationID, err
}

func (s *reconcileService) submitOnce(ctx context.Context, input *usecase.SubmitLocationInput) (uuid.UUID, error) {
	key := input.NaturalKey()
	now := time.Now()

	var resolvedID uuid.UUID
	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		locationRepo := f.NewLocationRepository()

		location, err := locationRepo.FindByNaturalKey(ctx, key)
		isUpdate := true
		switch {
		case err == nil:
			// Take the row lock so concurrent diffs against this location
			// cannot interleave.
			if _, err := locationRepo.FindByIDForUpdate(ctx, location.ID); err != nil {
				return err
			}
		case errors.Is(err, repository.ErrLocationNotFound):
			location = &entity.Location{
				ID:        uuid.New(),
				Name:      input.Name,
				Address:   input.Address,
				Latitude:  input.Latitude,
				Longitude: input.Longitude,
				CreatedAt: now,
			}
			if err := locationRepo.Create(ctx, location); err != nil {
				return err
			}
			isUpdate = false
		default:
			return err
		}

		submission := &entity.Submission{
			ID:             uuid.New(),
			LocationID:     location.ID,
			SubmittedBy:    anonymousReporter,
			SubmissionTime: now,
			IsUpdate:       isUpdate,
			Variants:       input.Variants,
			PriceRange:     input.PriceRange,
			OpeningHours:   input.OpeningHours,
			Notes:          input.Notes,
		}
		if err := f.NewSubmissionRepository().Create(ctx, submission); err != nil {
			return err
		}

		// Resubmission implies reconfirmation of every still-present variant.
		if err := s.reconcileVariants(ctx, f, location.ID, input.Variants, now, true); err != nil {
			return err
		}

		resolvedID = location.ID

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return resolvedID, nil
}

// UpdateLocation applies a partial edit to an existing location. Nil and
// empty-string fields keep their stored value; a supplied variant set is
// diffed without reconfirmation. No submission is logged.
func (s *reconcileService) UpdateLocation(ctx context.Context, locationID uuid.UUID, input *usecase.UpdateLocationInput) error {
	if err := validateUpdateInput(input); err != nil {
		return err
	}

	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		locationRepo := f.NewLocationRepository()

		location, err := locationRepo.FindByIDForUpdate(ctx, locationID)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return domainerrors.ErrLocationNotFound
			}

			return err
		}

		if applyLocationUpdates(location, input) {
			if err := locationRepo.Update(ctx, location); err != nil {
				return err
			}
		}

		if input.Variants != nil {
			if err := s.reconcileVariants(ctx, f, locationID, *input.Variants, time.Now(), false); err != nil {
				return err
			}
		}

		return nil
	})
}

// applyLocationUpdates merges the supplied fields into the location and
// reports whether anything changed. An empty string means "no change", not
// "clear the field".
func applyLocationUpdates(location *entity.Location, input *usecase.UpdateLocationInput) bool {
	changed := false

	if input.Name != nil && *input.Name != "" {
		location.Name = *input.Name
		changed = true
	}
	if input.Address != nil && *input.Address != "" {
		location.Address = *input.Address
		changed = true
	}
	if input.Latitude != nil {
		location.Latitude = *input.Latitude
		changed = true
	}
	if input.Longitude != nil {
		location.Longitude = *input.Longitude
		changed = true
	}

	return changed
}

// reconcileVariants converges the stored variant set for a location to the
// requested one: unseen names are inserted with fresh provenance, names that
// disappeared are deleted outright, and, on the submit path only, names
// present on both sides get their confirmation counter bumped.
//
// Names are compared by exact string equality; whitespace and case are
// significant and no normalization happens here.
func (s *reconcileService) reconcileVariants(ctx context.Context, f repository.RepositoryFactory, locationID uuid.UUID, requested []string, now time.Time, reconfirm bool) error {
	variantRepo := f.NewVariantRepository()

	existing, err := variantRepo.ListNamesByLocation(ctx, locationID)
	if err != nil {
		return err
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		existingSet[name] = struct{}{}
	}

	seen := make(map[string]struct{}, len(requested))
	for _, name := range requested {
		// The requested list is treated as a set; skip duplicate entries.
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, ok := existingSet[name]; ok {
			if !reconfirm {
				continue
			}
			if err := variantRepo.Reconfirm(ctx, locationID, name, anonymousReporter, now); err != nil {
				return err
			}

			continue
		}

		variant := &entity.Variant{
			LocationID:        locationID,
			Name:              name,
			FirstReportedBy:   anonymousReporter,
			FirstReportedAt:   now,
			LastConfirmedBy:   anonymousReporter,
			LastConfirmedAt:   now,
			ConfirmationCount: 1,
		}
		if err := variantRepo.Create(ctx, variant); err != nil {
			return err
		}
	}

	var toRemove []string
	for _, name := range existing {
		if _, ok := seen[name]; !ok {
			toRemove = append(toRemove, name)
		}
	}

	return variantRepo.DeleteByNames(ctx, locationID, toRemove)
}

func validateSubmitInput(input *usecase.SubmitLocationInput) error {
	if input.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if input.Address == "" {
		return domainerrors.ErrValidationFailed.WithDetails("address is required")
	}
	if !isFinite(input.Latitude) || !isFinite(input.Longitude) {
		return domainerrors.ErrValidationFailed.WithDetails("coordinates must be finite")
	}

	return nil
}

func validateUpdateInput(input *usecase.UpdateLocationInput) error {
	if input.Latitude != nil && !isFinite(*input.Latitude) {
		return domainerrors.ErrValidationFailed.WithDetails("latitude must be finite")
	}
	if input.Longitude != nil && !isFinite(*input.Longitude) {
		return domainerrors.ErrValidationFailed.WithDetails("longitude must be finite")
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
