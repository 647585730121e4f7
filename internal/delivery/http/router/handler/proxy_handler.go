package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"monstermap/internal/delivery/http/response"
	"monstermap/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProxyHandlerParams holds dependencies for ProxyHandler, injected by Fx.
type ProxyHandlerParams struct {
	fx.In

	GeocodingSvc service.GeocodingService
	TileSvc      service.TileService
	Logger       *slog.Logger
}

// ProxyHandler fronts the third-party geocoding and tile providers so the
// frontend never sees the upstream API keys.
type ProxyHandler struct {
	geocodingSvc service.GeocodingService
	tileSvc      service.TileService
	logger       *slog.Logger
}

// NewProxyHandler is the constructor for ProxyHandler
func NewProxyHandler(params ProxyHandlerParams) *ProxyHandler {
	return &ProxyHandler{
		geocodingSvc: params.GeocodingSvc,
		tileSvc:      params.TileSvc,
		logger:       params.Logger,
	}
}

// SearchAddress handles address autocomplete
func (h *ProxyHandler) SearchAddress(c echo.Context) error {
	suggestions, err := h.geocodingSvc.Autocomplete(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		h.logger.Warn("address autocomplete failed", slog.String("error", err.Error()))

		return response.BadGateway(c, "UPSTREAM_FAILED", "Address lookup failed")
	}

	return response.Success(c, http.StatusOK, suggestions, "Suggestions retrieved successfully")
}

// FetchTile handles the raster tile passthrough
func (h *ProxyHandler) FetchTile(c echo.Context) error {
	z, errZ := strconv.Atoi(c.QueryParam("z"))
	x, errX := strconv.Atoi(c.QueryParam("x"))
	y, errY := strconv.Atoi(c.QueryParam("y"))
	if errZ != nil || errX != nil || errY != nil {
		return response.BadRequest(c, "INVALID_TILE", "z, x and y must be integers")
	}

	retina := c.QueryParam("r")
	if retina != "" && retina != "@2x" {
		return response.BadRequest(c, "INVALID_TILE", "r must be empty or @2x")
	}

	tile, err := h.tileSvc.FetchTile(c.Request().Context(), z, x, y, retina)
	if err != nil {
		h.logger.Warn("tile fetch failed",
			slog.Int("z", z), slog.Int("x", x), slog.Int("y", y),
			slog.String("error", err.Error()))

		return response.BadGateway(c, "UPSTREAM_FAILED", "Tile fetch failed")
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, tile.ContentType, tile.Data)
}
