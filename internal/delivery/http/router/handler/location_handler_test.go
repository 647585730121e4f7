package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"monstermap/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBBox(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantNil bool
		wantErr bool
	}{
		{name: "empty means no filter", raw: "", wantNil: true},
		{name: "valid viewport", raw: "121.0,24.5,122.0,25.5"},
		{name: "with spaces", raw: "121.0, 24.5, 122.0, 25.5"},
		{name: "too few values", raw: "121.0,24.5,122.0", wantErr: true},
		{name: "not numbers", raw: "a,b,c,d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds, err := parseBBox(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, bounds)
				return
			}
			require.NotNil(t, bounds)
			assert.Equal(t, 121.0, bounds.Min[0])
			assert.Equal(t, 25.5, bounds.Max[1])
		})
	}
}

func TestLocationHandler_ListLocations_InvalidBBox(t *testing.T) {
	handler := &LocationHandler{}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/locations?bbox=not-a-box", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListLocations(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_BBOX")
}

func TestLocationHandler_SubmitLocation_RejectsMissingFields(t *testing.T) {
	handler := &LocationHandler{}

	e := echo.New()
	e.Validator = validator.New()
	body := `{"address": "1 Main St", "latitude": 25.0, "longitude": 121.5}`
	req := httptest.NewRequest(http.MethodPost, "/locations/submit", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SubmitLocation(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := HealthCheck(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
