//go:build unit || e2e

// Package authtest mints tokens and logs staff in for handler and e2e tests.
package authtest

import (
	"testing"
	"time"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs with the same secret the app under test verifies with.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) service(access time.Duration) *jwt.Service {
	return jwt.NewService(h.cfg.Secret, access, h.cfg.RefreshTokenDuration)
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(h.cfg.AccessTokenDuration).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken returns an access token that has already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service(time.Millisecond).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	return token
}
