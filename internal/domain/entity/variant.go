package entity

import (
	"time"

	"github.com/google/uuid"
)

// Variant is a named product flavor reported available at a location.
// Identity is the (LocationID, Name) pair; names are compared by exact
// string equality, whitespace and case significant.
type Variant struct {
	LocationID        uuid.UUID // Owning location.
	Name              string    // Variant name as submitted, no normalization.
	FirstReportedBy   string    // Reporter of the first sighting. Set once.
	FirstReportedAt   time.Time // Timestamp of the first sighting. Set once.
	LastConfirmedBy   string    // Reporter of the latest reconfirmation.
	LastConfirmedAt   time.Time // Timestamp of the latest reconfirmation.
	ConfirmationCount int       // Starts at 1, incremented on each reconfirmation.
}
