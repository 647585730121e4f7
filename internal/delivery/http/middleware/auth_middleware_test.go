package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockService "monstermap/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthMiddleware(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, bool) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/locations", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	next := func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec, nextCalled
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	rec, nextCalled := runAuthMiddleware(t, m, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	rec, nextCalled := runAuthMiddleware(t, m, "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bogus").Return(errors.New("invalid"))
	m := NewAuthMiddleware(tokenSvc)

	rec, nextCalled := runAuthMiddleware(t, m, "Bearer bogus")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, nextCalled)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("good-token").Return(nil)
	m := NewAuthMiddleware(tokenSvc)

	rec, nextCalled := runAuthMiddleware(t, m, "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, nextCalled)
}
