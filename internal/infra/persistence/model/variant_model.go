package model

import (
	"time"

	"github.com/google/uuid"
)

// VariantModel mirrors the 'location_variants' table. The primary key is the
// (location_id, variant_name) composite; no surrogate ID exists.
type VariantModel struct {
	LocationID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	VariantName       string    `gorm:"type:varchar(255);primaryKey"`
	FirstReportedBy   string    `gorm:"type:varchar(100);not null"`
	FirstReportedAt   time.Time `gorm:"not null"`
	LastConfirmedBy   string    `gorm:"type:varchar(100);not null"`
	LastConfirmedAt   time.Time `gorm:"not null"`
	ConfirmationCount int       `gorm:"not null;default:1"`
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "location_variants"
}
