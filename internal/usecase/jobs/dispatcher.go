// Package jobs runs the background work behind order placement: delivering
// queued notifications and sweeping expired idempotency keys.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"mysterybox-storefront/internal/pkg/clock"
	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/countdown"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/usecase/shared"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrPermanent marks a delivery that must not be retried.
var ErrPermanent = errs.New("notification rejected permanently")

const (
	baseBackoff = 5 * time.Second
	maxBackoff  = 10 * time.Minute

	defaultRatePerSecond = 5
)

type Dispatcher struct {
	uow     shared.UnitOfWork
	sender  Sender
	limiter *rate.Limiter
	cfg     config.NotifierConfig
	clock   clock.Clock
	logger  *slog.Logger
}

func NewDispatcher(uow shared.UnitOfWork, sender Sender, cfg config.NotifierConfig, clk clock.Clock, logger *slog.Logger) *Dispatcher {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	// A zero limit would admit only the burst and then reject every wait.
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = defaultRatePerSecond
	}
	return &Dispatcher{
		uow:     uow,
		sender:  sender,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		cfg:     cfg,
		clock:   clk,
		logger:  logger,
	}
}

// Run polls until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) error {
	d.logger.Info("notification dispatcher started",
		"poll_interval", d.cfg.PollInterval.String(),
		"batch_size", d.cfg.BatchSize,
		"rate_per_second", d.cfg.RatePerSecond)

	return countdown.Run(ctx, d.cfg.PollInterval, d.clock, func(time.Time) {
		if _, err := d.RunOnce(ctx); err != nil && ctx.Err() == nil {
			d.logger.Error("notification batch failed", "error", err.Error())
		}
	})
}

// RunOnce claims one batch of due jobs and delivers them concurrently.
// It returns the number of jobs claimed.
func (d *Dispatcher) RunOnce(ctx context.Context) (int, error) {
	var batch []shared.NotificationJob
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		batch, err = tx.Notifications().ClaimDue(ctx, tx.DB(), d.clock.Now(), d.cfg.BatchSize)
		return err
	})
	if err != nil {
		return 0, errs.Wrap(err, "claim due notification jobs")
	}
	if len(batch) == 0 {
		return 0, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.cfg.Concurrency)
	for _, job := range batch {
		g.Go(func() error {
			if err := d.limiter.Wait(gctx); err != nil {
				// Shutting down: hand the job back untouched by a delivery attempt.
				d.record(ctx, job, err, true)
				return nil
			}
			d.record(ctx, job, d.sender.Send(gctx, job), false)
			return nil
		})
	}
	return len(batch), g.Wait()
}

func (d *Dispatcher) record(ctx context.Context, job shared.NotificationJob, sendErr error, released bool) {
	// The outcome must be stored even when the worker is stopping.
	ctx = context.WithoutCancel(ctx)
	now := d.clock.Now()

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		repo := tx.Notifications()
		switch {
		case sendErr == nil:
			return repo.MarkSent(ctx, tx.DB(), job.ID)
		case released:
			return repo.Reschedule(ctx, tx.DB(), job.ID, shared.JobStatusQueued, sendErr.Error(), now)
		case errs.Is(sendErr, ErrPermanent) || job.Attempts >= d.cfg.MaxAttempts:
			return repo.Reschedule(ctx, tx.DB(), job.ID, shared.JobStatusFailed, sendErr.Error(), now)
		default:
			return repo.Reschedule(ctx, tx.DB(), job.ID, shared.JobStatusQueued, sendErr.Error(), now.Add(Backoff(job.Attempts)))
		}
	})
	if err != nil {
		d.logger.Error("failed to record notification outcome", "job_id", job.ID, "error", err.Error())
		return
	}

	switch {
	case sendErr == nil:
		d.logger.Info("notification sent", "job_id", job.ID, "topic", job.Topic, "attempt", job.Attempts)
	case released:
		d.logger.Debug("notification released on shutdown", "job_id", job.ID)
	default:
		d.logger.Warn("notification delivery failed",
			"job_id", job.ID,
			"attempt", job.Attempts,
			"permanent", errs.Is(sendErr, ErrPermanent),
			"error", sendErr.Error())
	}
}

// Backoff doubles from 5s per attempt, capped at 10 minutes.
func Backoff(attempt int32) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseBackoff
	for i := int32(1); i < attempt; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
