package components

import (
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/jwt"
	"mysterybox-storefront/internal/usecase"
	"mysterybox-storefront/internal/usecase/commands"
	"mysterybox-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewTokenService,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewPromotionCommands,
		commands.NewOrderCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProductQueries,
		queries.NewPromotionQueries,
		queries.NewCheckoutQueries,
		queries.NewOrderQueries,
		queries.NewNotificationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewTokenService(s *jwt.Service) commands.TokenService {
	return s
}
