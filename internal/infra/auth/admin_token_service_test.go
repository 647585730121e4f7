package auth

import (
	"testing"
	"time"

	"monstermap/config"
	domainerrors "monstermap/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Admin.TokenSecret = "test-signing-secret"
	cfg.Admin.TokenTTL = ttl

	return cfg
}

func TestNewAdminTokenService_MissingSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.Admin.TokenTTL = time.Hour

	svc, err := NewAdminTokenService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestAdminTokenService_IssueAndValidate(t *testing.T) {
	svc, err := NewAdminTokenService(newTestConfig(24 * time.Hour))
	require.NoError(t, err)

	token, err := svc.IssueToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateToken(token))
}

func TestAdminTokenService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewAdminTokenService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.IssueToken()
	require.NoError(t, err)

	err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAdminTokenService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewAdminTokenService(newTestConfig(time.Hour))
	require.NoError(t, err)

	otherCfg := newTestConfig(time.Hour)
	otherCfg.Admin.TokenSecret = "another-signing-secret"
	verifier, err := NewAdminTokenService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.IssueToken()
	require.NoError(t, err)

	err = verifier.ValidateToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAdminTokenService_RejectsGarbage(t *testing.T) {
	svc, err := NewAdminTokenService(newTestConfig(time.Hour))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ValidateToken("not-a-jwt"), domainerrors.ErrTokenInvalid)
}
