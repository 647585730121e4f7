package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SubmissionModel mirrors the 'location_submissions' table. The variant
// snapshot is stored as a jsonb array.
type SubmissionModel struct {
	SubmissionID   uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	LocationID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	SubmittedBy    string                      `gorm:"type:varchar(100);not null"`
	SubmissionTime time.Time                   `gorm:"not null"`
	IsUpdate       bool                        `gorm:"not null"`
	Variants       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	PriceRange     string                      `gorm:"type:varchar(100)"`
	OpeningHours   string                      `gorm:"type:varchar(255)"`
	Notes          string                      `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (SubmissionModel) TableName() string {
	return "location_submissions"
}
