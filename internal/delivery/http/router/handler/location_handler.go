// Package handler contains the HTTP request handlers.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"monstermap/internal/delivery/http/response"
	domainerrors "monstermap/internal/domain/errors"
	"monstermap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	ReconcileUC usecase.ReconcileUsecase
	DirectoryUC usecase.DirectoryUsecase
	Logger      *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	reconcileUC usecase.ReconcileUsecase
	directoryUC usecase.DirectoryUsecase
	logger      *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		reconcileUC: params.ReconcileUC,
		directoryUC: params.DirectoryUC,
		logger:      params.Logger,
	}
}

// SubmitLocationRequest represents the request body for submitting a sighting
type SubmitLocationRequest struct {
	Name         string   `json:"name" validate:"required"`
	Address      string   `json:"address" validate:"required"`
	Latitude     float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude    float64  `json:"longitude" validate:"min=-180,max=180"`
	Variants     []string `json:"variants"`
	PriceRange   string   `json:"price_range"`
	OpeningHours string   `json:"opening_hours"`
	Notes        string   `json:"notes"`
}

// UpdateLocationRequest represents the request body for editing a location
type UpdateLocationRequest struct {
	Name      *string   `json:"name,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Latitude  *float64  `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude *float64  `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	Variants  *[]string `json:"variants,omitempty"`
}

// SubmitLocation handles a crowdsourced sighting submission
func (h *LocationHandler) SubmitLocation(c echo.Context) error {
	var req SubmitLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid submission input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitLocationInput{
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Variants:     req.Variants,
		PriceRange:   req.PriceRange,
		OpeningHours: req.OpeningHours,
		Notes:        req.Notes,
	}

	locationID, err := h.reconcileUC.SubmitLocation(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": locationID.String()}, "Location submitted successfully")
}

// UpdateLocation handles a partial edit of an existing location
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateLocationInput{
		Name:      req.Name,
		Address:   req.Address,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Variants:  req.Variants,
	}

	if err := h.reconcileUC.UpdateLocation(c.Request().Context(), locationID, input); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": locationID.String()}, "Location updated successfully")
}

// ListLocations handles the public map listing
func (h *LocationHandler) ListLocations(c echo.Context) error {
	bounds, err := parseBBox(c.QueryParam("bbox"))
	if err != nil {
		return response.BadRequest(c, "INVALID_BBOX", "bbox must be minLng,minLat,maxLng,maxLat")
	}

	locations, err := h.directoryUC.ListLocations(c.Request().Context(), bounds)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// SearchVariants handles variant-name autocomplete
func (h *LocationHandler) SearchVariants(c echo.Context) error {
	names, err := h.directoryUC.SearchVariants(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, names, "Variants retrieved successfully")
}

// parseBBox parses the optional viewport filter. An empty value means no filter.
func parseBBox(raw string) (*orb.Bound, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return nil, errors.New("bbox requires four comma-separated values")
	}

	coords := make([]float64, 4)
	for i, part := range parts {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.Wrap(err, "invalid bbox coordinate")
		}
		coords[i] = value
	}

	bound := orb.Bound{
		Min: orb.Point{coords[0], coords[1]},
		Max: orb.Point{coords[2], coords[3]},
	}

	return &bound, nil
}

func (h *LocationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
