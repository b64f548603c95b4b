package bootstrap

import (
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(NewJWTService),
)

// NewJWTService refuses to start with a non-positive token lifetime; envconfig
// accepts "0s" and the resulting tokens would be born expired.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.AccessTokenDuration <= 0 || cfg.JWT.RefreshTokenDuration <= 0 {
		return nil, errs.Newf("jwt token durations must be positive (access=%s refresh=%s)",
			cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration), nil
}
