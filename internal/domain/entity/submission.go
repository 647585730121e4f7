package entity

import (
	"time"

	"github.com/google/uuid"
)

// Submission is an immutable audit record of one reported variant set for a
// location at a point in time. The reconciliation path only ever appends
// submissions; they are removed solely by the admin cascade delete.
type Submission struct {
	ID             uuid.UUID // System-generated submission identifier.
	LocationID     uuid.UUID // Owning location.
	SubmittedBy    string    // Reporter identity; currently always an anonymous placeholder.
	SubmissionTime time.Time
	IsUpdate       bool     // False if this submission created the location.
	Variants       []string // Full snapshot of variant names as requested.
	PriceRange     string
	OpeningHours   string
	Notes          string
}
