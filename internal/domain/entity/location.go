// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a physical retail site where product variants have been reported.
// Its identity for deduplication purposes is the exact NaturalKey tuple;
// the ID stays opaque and stable once assigned.
type Location struct {
	ID        uuid.UUID // The stable, system-generated identifier for the location.
	Name      string    // Display name of the site, e.g. a shop name.
	Address   string    // Human-readable street address.
	Latitude  float64   // Geographic latitude in decimal degrees.
	Longitude float64   // Geographic longitude in decimal degrees.
	CreatedAt time.Time // Timestamp of when this location was first reported.
}

// NaturalKey is the exact-match tuple used to deduplicate submissions.
// Two submissions whose coordinates differ in the last decimal place are
// two different locations.
type NaturalKey struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}

// NaturalKey returns the deduplication key of the location.
func (l *Location) NaturalKey() NaturalKey {
	return NaturalKey{
		Name:      l.Name,
		Address:   l.Address,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
	}
}

// LocationSummary is a location together with its aggregated variant names,
// as served by the public map listing.
type LocationSummary struct {
	Location
	Variants []string
}

// AdminLocationSummary extends the public listing with moderation data.
type AdminLocationSummary struct {
	LocationSummary
	Notes string
}

// AddressSuggestion is one autocomplete result from the geocoding proxy.
type AddressSuggestion struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
