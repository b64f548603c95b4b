package bootstrap

import (
	"context"
	"log/slog"

	"mysterybox-storefront/internal/infra/db"
	"mysterybox-storefront/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects eagerly so a bad DSN fails fx startup instead of the first request.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", cfg.DB.MaxConns,
	)

	lc.Append(fx.StopHook(func(context.Context) error {
		closePool()
		return nil
	}))
	return pool, nil
}
