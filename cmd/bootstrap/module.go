package bootstrap

import (
	"mysterybox-storefront/cmd/bootstrap/components"
	"mysterybox-storefront/internal/pkg/clock"

	"go.uber.org/fx"
)

// Infra is everything both the API server and the worker need.
var Infra = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
)

// Module assembles the HTTP API.
var Module = fx.Options(
	Infra,
	JWTModule,
	RedisModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// WorkerModule assembles the notification dispatcher and idempotency sweeper.
var WorkerModule = fx.Options(
	Infra,
	fx.Provide(clock.NewRealClock),
	components.JobsModule,
)
