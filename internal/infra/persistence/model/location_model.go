// Package model holds the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. The composite unique index on
// (name, address, latitude, longitude) arbitrates concurrent submissions of
// the same natural key.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_locations_natural_key"`
	Address   string    `gorm:"type:varchar(512);not null;uniqueIndex:idx_locations_natural_key"`
	Latitude  float64   `gorm:"type:double precision;not null;uniqueIndex:idx_locations_natural_key"`
	Longitude float64   `gorm:"type:double precision;not null;uniqueIndex:idx_locations_natural_key"`
	CreatedAt time.Time

	Variants    []VariantModel    `gorm:"foreignKey:LocationID"`
	Submissions []SubmissionModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
