package components

import (
	"log/slog"
	"time"

	"mysterybox-storefront/internal/infra/notifier"
	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/usecase/jobs"
	"mysterybox-storefront/internal/usecase/shared"

	"go.uber.org/fx"
)

const idempotencySweepInterval = 10 * time.Minute

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewSender,
		NewDispatcher,
		NewIdempotencySweeper,
	),
)

// NewSender logs notifications instead of posting them when no webhook URL is set.
func NewSender(cfg config.Config, logger *slog.Logger) jobs.Sender {
	if cfg.Notifier.WebhookURL == "" {
		logger.Warn("NOTIFIER_WEBHOOK_URL is empty, notifications will only be logged")
		return notifier.NewLogSender(logger)
	}
	return notifier.NewWebhookSender(cfg.Notifier)
}

func NewDispatcher(uow shared.UnitOfWork, sender jobs.Sender, cfg config.Config, clk clock.Clock, logger *slog.Logger) *jobs.Dispatcher {
	return jobs.NewDispatcher(uow, sender, cfg.Notifier, clk, logger.With(slog.String("component", "dispatcher")))
}

func NewIdempotencySweeper(repo jobs.ExpiredKeyDeleter, clk clock.Clock, logger *slog.Logger) *jobs.IdempotencySweeper {
	return jobs.NewIdempotencySweeper(repo, idempotencySweepInterval, clk, logger.With(slog.String("component", "idempotency_sweeper")))
}
