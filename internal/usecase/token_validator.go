package usecase

import (
	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/pkg/jwt"

	"github.com/google/uuid"
)

var ErrNotAccessToken = errs.New("refresh token presented as access token")

// TokenValidator is what the auth middleware needs from the token service.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type accessTokenValidator struct {
	jwt *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return accessTokenValidator{jwt: jwtService}
}

// ValidateToken accepts only access tokens carrying a known role.
func (v accessTokenValidator) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwt.ValidateToken(tokenString)
	switch {
	case err != nil:
		return uuid.Nil, "", err
	case claims.TokenType != jwt.TokenTypeAccess:
		return uuid.Nil, "", ErrNotAccessToken
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.UserID, role, nil
}
