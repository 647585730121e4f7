package service

import "context"

// Tile is one fetched raster map tile.
type Tile struct {
	Data        []byte
	ContentType string
}

// TileService defines the interface for the map tile proxy. Tiles are a pure
// passthrough to the upstream provider and never touch the data model.
type TileService interface {
	// FetchTile retrieves the raster tile at z/x/y. The retina suffix is
	// either empty or "@2x".
	FetchTile(ctx context.Context, z, x, y int, retina string) (*Tile, error)
}
