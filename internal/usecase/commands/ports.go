package commands

import (
	"context"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
)

// PromotionCacheInvalidator drops the cached promotion snapshot after a write commits.
type PromotionCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type TokenService interface {
	GenerateAccessToken(userID uuid.UUID, role user.Role) (string, error)
	GenerateRefreshToken(userID uuid.UUID, role user.Role) (string, error)
	ValidateToken(tokenString string) (*jwt.Claims, error)
}
