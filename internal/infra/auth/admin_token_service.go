// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"monstermap/config"
	domainerrors "monstermap/internal/domain/errors"
	"monstermap/internal/domain/service"
)

// adminTokenService is a concrete implementation of the TokenService interface
// using the JWT standard. The credential carries no subject claims: holding a
// valid token is the entire admin authorization model.
type adminTokenService struct {
	secret string        // Secret key for signing admin tokens.
	ttl    time.Duration // Validity window of an issued token.
}

// NewAdminTokenService is the constructor for adminTokenService.
func NewAdminTokenService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin.TokenSecret == "" {
		return nil, errors.New("admin token secret must be provided")
	}

	return &adminTokenService{
		secret: cfg.Admin.TokenSecret,
		ttl:    cfg.Admin.TokenTTL,
	}, nil
}

// IssueToken creates a new signed admin credential valid for the configured window.
func (s *adminTokenService) IssueToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the signature and expiry of a credential.
func (s *adminTokenService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return domainerrors.ErrTokenInvalid
	}

	return nil
}
