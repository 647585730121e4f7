package postgres

import (
	"context"

	"monstermap/internal/domain/entity"
	"monstermap/internal/domain/repository"
	"monstermap/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// submissionRepository implements the domain.SubmissionRepository interface using GORM.
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository is the constructor for submissionRepository.
func NewSubmissionRepository(db *gorm.DB) repository.SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create appends a submission event to the log.
func (repo *submissionRepository) Create(ctx context.Context, submission *entity.Submission) error {
	submissionM := fromSubmissionDomain(submission)

	if err := repo.db.WithContext(ctx).Create(submissionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return errors.Wrap(err, "failed to create submission")
	}

	return nil
}

// SetNotesByLocation stores the admin note on the location's submission rows.
func (repo *submissionRepository) SetNotesByLocation(ctx context.Context, locationID uuid.UUID, notes string) error {
	err := repo.db.WithContext(ctx).
		Model(&model.SubmissionModel{}).
		Where("location_id = ?", locationID).
		Update("notes", notes).Error
	if err != nil {
		return errors.Wrap(err, "failed to set submission notes")
	}

	return nil
}

// DeleteByLocation removes all submission rows for a location.
func (repo *submissionRepository) DeleteByLocation(ctx context.Context, locationID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("location_id = ?", locationID).
		Delete(&model.SubmissionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete submissions by location")
	}

	return nil
}

// --- Mapper Functions ---

func fromSubmissionDomain(data *entity.Submission) *model.SubmissionModel {
	if data == nil {
		return nil
	}

	return &model.SubmissionModel{
		SubmissionID:   data.ID,
		LocationID:     data.LocationID,
		SubmittedBy:    data.SubmittedBy,
		SubmissionTime: data.SubmissionTime,
		IsUpdate:       data.IsUpdate,
		Variants:       datatypes.NewJSONSlice(data.Variants),
		PriceRange:     data.PriceRange,
		OpeningHours:   data.OpeningHours,
		Notes:          data.Notes,
	}
}
