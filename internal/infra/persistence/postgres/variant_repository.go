package postgres

import (
	"context"
	"time"

	"monstermap/internal/domain/entity"
	"monstermap/internal/domain/repository"
	"monstermap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// variantRepository implements the domain.VariantRepository interface using GORM.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

// ListNamesByLocation returns the variant names currently stored for a location.
func (repo *variantRepository) ListNamesByLocation(ctx context.Context, locationID uuid.UUID) ([]string, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("location_id = ?", locationID).
		Pluck("variant_name", &names).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variant names by location")
	}

	return names, nil
}

// Create inserts a new variant row with its initial provenance.
func (repo *variantRepository) Create(ctx context.Context, variant *entity.Variant) error {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		return errors.Wrap(err, "failed to create variant")
	}

	return nil
}

// Reconfirm bumps the confirmation counter and refreshes the last-confirmed
// provenance. First-reported fields are never touched.
func (repo *variantRepository) Reconfirm(ctx context.Context, locationID uuid.UUID, name, reporter string, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("location_id = ? AND variant_name = ?", locationID, name).
		Updates(map[string]any{
			"last_confirmed_by":  reporter,
			"last_confirmed_at":  at,
			"confirmation_count": gorm.Expr("confirmation_count + 1"),
		}).Error
	if err != nil {
		return errors.Wrap(err, "failed to reconfirm variant")
	}

	return nil
}

// DeleteByNames removes the named variant rows for a location.
func (repo *variantRepository) DeleteByNames(ctx context.Context, locationID uuid.UUID, names []string) error {
	if len(names) == 0 {
		return nil
	}

	err := repo.db.WithContext(ctx).
		Where("location_id = ? AND variant_name IN ?", locationID, names).
		Delete(&model.VariantModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete variants by name")
	}

	return nil
}

// DeleteByLocation removes all variant rows for a location.
func (repo *variantRepository) DeleteByLocation(ctx context.Context, locationID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Delete(&model.VariantModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete variants by location")
	}

	return nil
}

// SearchNames returns distinct variant names matching the query as a
// case-insensitive substring, most-confirmed first.
func (repo *variantRepository) SearchNames(ctx context.Context, query string, limit int) ([]string, error) {
	var names []string
	err := repo.db.WithContext(ctx).
		Raw(`SELECT variant_name
		     FROM location_variants
		     WHERE variant_name ILIKE ?
		     GROUP BY variant_name
		     ORDER BY MAX(confirmation_count) DESC
		     LIMIT ?`, "%"+query+"%", limit).
		Scan(&names).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search variant names")
	}

	return names, nil
}

// --- Mapper Functions ---

func fromVariantDomain(data *entity.Variant) *model.VariantModel {
	if data == nil {
		return nil
	}

	return &model.VariantModel{
		LocationID:        data.LocationID,
		VariantName:       data.Name,
		FirstReportedBy:   data.FirstReportedBy,
		FirstReportedAt:   data.FirstReportedAt,
		LastConfirmedBy:   data.LastConfirmedBy,
		LastConfirmedAt:   data.LastConfirmedAt,
		ConfirmationCount: data.ConfirmationCount,
	}
}
