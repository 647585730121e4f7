package postgres

import (
	"context"

	"monstermap/internal/domain/entity"
	"monstermap/internal/domain/repository"
	"monstermap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// Create persists a new location row. A unique-constraint hit on the natural
// key is surfaced as repository.ErrDuplicateNaturalKey so the reconciliation
// engine can re-resolve against the winner's row.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNaturalKey
		}

		return errors.Wrap(err, "failed to create location")
	}

	location.CreatedAt = locationM.CreatedAt

	return nil
}

// FindByNaturalKey retrieves a location by exact (name, address, latitude, longitude) match.
func (repo *locationRepository) FindByNaturalKey(ctx context.Context, key entity.NaturalKey) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("name = ? AND address = ? AND latitude = ? AND longitude = ?",
			key.Name, key.Address, key.Latitude, key.Longitude).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by natural key")
	}

	return toLocationDomain(&locationM), nil
}

// FindByID retrieves a location by its unique ID.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// FindByIDForUpdate retrieves a location by ID with a FOR UPDATE row lock.
// Inside a transaction this serializes concurrent variant diffs against the
// same location; diffs on different locations do not contend.
func (repo *locationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&locationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to lock location by id")
	}

	return toLocationDomain(&locationM), nil
}

// Update overwrites the mutable fields of an existing location row.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", location.ID).
		Updates(map[string]any{
			"name":      location.Name,
			"address":   location.Address,
			"latitude":  location.Latitude,
			"longitude": location.Longitude,
		}).Error

	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNaturalKey
		}

		return errors.Wrap(err, "failed to update location")
	}

	return nil
}

// Delete removes a location row by ID.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LocationModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

// ListWithVariants returns all locations ordered by name with their variant
// names aggregated. Locations and variants are fetched in two queries and
// joined in memory to avoid a grouped-array aggregate in the ORM layer.
func (repo *locationRepository) ListWithVariants(ctx context.Context) ([]*entity.LocationSummary, error) {
	locations, err := repo.listOrderedByName(ctx)
	if err != nil {
		return nil, err
	}

	variantsByLocation, err := repo.variantNamesByLocation(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*entity.LocationSummary, 0, len(locations))
	for _, locationM := range locations {
		summaries = append(summaries, &entity.LocationSummary{
			Location: *toLocationDomain(locationM),
			Variants: variantsByLocation[locationM.ID],
		})
	}

	return summaries, nil
}

// ListForAdmin returns the listing enriched with the latest submission note
// per location.
func (repo *locationRepository) ListForAdmin(ctx context.Context) ([]*entity.AdminLocationSummary, error) {
	summaries, err := repo.ListWithVariants(ctx)
	if err != nil {
		return nil, err
	}

	type noteRow struct {
		LocationID uuid.UUID
		Notes      string
	}

	var rows []noteRow
	err = repo.db.WithContext(ctx).
		Raw(`SELECT DISTINCT ON (location_id) location_id, notes
		     FROM location_submissions
		     ORDER BY location_id, submission_time DESC`).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list submission notes")
	}

	notesByLocation := make(map[uuid.UUID]string, len(rows))
	for _, row := range rows {
		notesByLocation[row.LocationID] = row.Notes
	}

	adminSummaries := make([]*entity.AdminLocationSummary, 0, len(summaries))
	for _, summary := range summaries {
		adminSummaries = append(adminSummaries, &entity.AdminLocationSummary{
			LocationSummary: *summary,
			Notes:           notesByLocation[summary.ID],
		})
	}

	return adminSummaries, nil
}

func (repo *locationRepository) listOrderedByName(ctx context.Context) ([]*model.LocationModel, error) {
	var locations []*model.LocationModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&locations).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

func (repo *locationRepository) variantNamesByLocation(ctx context.Context) (map[uuid.UUID][]string, error) {
	type variantRow struct {
		LocationID  uuid.UUID
		VariantName string
	}

	var rows []variantRow
	err := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Select("location_id", "variant_name").
		Order("variant_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variant names")
	}

	byLocation := make(map[uuid.UUID][]string)
	for _, row := range rows {
		byLocation[row.LocationID] = append(byLocation[row.LocationID], row.VariantName)
	}

	return byLocation, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM LocationModel to a domain Location entity.
func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
	}
}

// fromLocationDomain converts a domain Location entity to a GORM LocationModel for persistence.
func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		CreatedAt: data.CreatedAt,
	}
}
