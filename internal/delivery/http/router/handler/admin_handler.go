package handler

import (
	"log/slog"
	"net/http"

	"monstermap/internal/delivery/http/response"
	domainerrors "monstermap/internal/domain/errors"
	"monstermap/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for the moderation endpoints
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// AuthRequest represents the admin login body
type AuthRequest struct {
	Password string `json:"password" validate:"required"`
}

// SetNoteRequest represents the moderation note body
type SetNoteRequest struct {
	Note string `json:"note"`
}

// Authenticate exchanges the admin password for a bearer token
func (h *AdminHandler) Authenticate(c echo.Context) error {
	var req AuthRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid auth input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	token, err := h.adminUC.Authenticate(c.Request().Context(), req.Password)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token}, "Authenticated successfully")
}

// ListLocations returns the full listing with moderation notes
func (h *AdminHandler) ListLocations(c echo.Context) error {
	locations, err := h.adminUC.ListLocations(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations, "Locations retrieved successfully")
}

// DeleteLocation removes a location with all its dependents
func (h *AdminHandler) DeleteLocation(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	if err := h.adminUC.DeleteLocation(c.Request().Context(), locationID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": locationID.String()}, "Location deleted successfully")
}

// SetNote stores a moderation note against a location
func (h *AdminHandler) SetNote(c echo.Context) error {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid location ID")
	}

	var req SetNoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid note input")
	}

	if err := h.adminUC.SetNote(c.Request().Context(), locationID, req.Note); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"id": locationID.String()}, "Note saved successfully")
}

func (h *AdminHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
