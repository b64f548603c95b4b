package bootstrap

import (
	"context"
	"log/slog"

	"mysterybox-storefront/internal/infra/cache"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/usecase/commands"
	"mysterybox-storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewPromotionSnapshotCache,
		func(c queries.PromotionSnapshotCache) commands.PromotionCacheInvalidator {
			return c
		},
	),
)

// NewPromotionSnapshotCache falls back to a no-op cache when REDIS_ADDR is unset.
func NewPromotionSnapshotCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.PromotionSnapshotCache, error) {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}
	if client == nil {
		logger.Info("redis not configured, promotion snapshot cache disabled")
		return cache.NoopPromotionCache{}, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewPromotionCache(client, cfg.Promotion.SnapshotCacheTTL, logger), nil
}
