package bootstrap

import (
	"mysterybox-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

// ConfigModule loads the server/worker configuration from the environment once per process.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
)
