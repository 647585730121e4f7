// Package tiles implements the map tile proxy against Stadia Maps.
package tiles

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"monstermap/config"
	"monstermap/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://tiles.stadiamaps.com/tiles"

	requestTimeout = 15 * time.Second
)

// stadiaService implements service.TileService as a pure passthrough to the
// hosted raster tile endpoint.
type stadiaService struct {
	client  *http.Client
	baseURL string
	apiKey  string
	style   string
}

// NewTileService is the constructor for stadiaService.
func NewTileService(cfg *config.Config) (service.TileService, error) {
	if cfg.Tiles == nil || cfg.Tiles.StadiaKey == "" {
		return nil, errors.New("stadia maps api key must be provided")
	}

	return &stadiaService{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: defaultBaseURL,
		apiKey:  cfg.Tiles.StadiaKey,
		style:   cfg.Tiles.Style,
	}, nil
}

// FetchTile retrieves the raster tile at z/x/y with the optional retina suffix.
func (s *stadiaService) FetchTile(ctx context.Context, z, x, y int, retina string) (*service.Tile, error) {
	tileURL := fmt.Sprintf("%s/%s/%d/%d/%d%s.png", s.baseURL, s.style, z, x, y, retina)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tileURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build tile request")
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "tile request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("tile provider returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read tile body")
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	return &service.Tile{Data: data, ContentType: contentType}, nil
}
