package repository

import (
	"context"

	"monstermap/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmissionRepository defines the interface for the append-only submission log.
type SubmissionRepository interface {
	// Create appends a submission event. Submissions are never mutated by
	// the reconciliation path.
	Create(ctx context.Context, submission *entity.Submission) error

	// SetNotesByLocation stores the admin note on the location's submission
	// rows, where the admin listing reads it back from.
	SetNotesByLocation(ctx context.Context, locationID uuid.UUID, notes string) error

	// DeleteByLocation removes all submission rows for a location.
	DeleteByLocation(ctx context.Context, locationID uuid.UUID) error
}
