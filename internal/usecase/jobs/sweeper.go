package jobs

import (
	"context"
	"log/slog"
	"time"

	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/countdown"
)

// IdempotencySweeper deletes idempotency keys past their TTL.
type IdempotencySweeper struct {
	repo     ExpiredKeyDeleter
	interval time.Duration
	clock    clock.Clock
	logger   *slog.Logger
}

func NewIdempotencySweeper(repo ExpiredKeyDeleter, interval time.Duration, clk clock.Clock, logger *slog.Logger) *IdempotencySweeper {
	return &IdempotencySweeper{repo: repo, interval: interval, clock: clk, logger: logger}
}

func (s *IdempotencySweeper) Run(ctx context.Context) error {
	return countdown.Run(ctx, s.interval, s.clock, func(time.Time) {
		s.SweepOnce(ctx)
	})
}

func (s *IdempotencySweeper) SweepOnce(ctx context.Context) int64 {
	n, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("idempotency sweep failed", "error", err.Error())
		}
		return 0
	}
	if n > 0 {
		s.logger.Info("expired idempotency keys deleted", "count", n)
	}
	return n
}
