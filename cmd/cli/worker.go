package cli

import (
	"context"
	"log/slog"

	"mysterybox-storefront/cmd/bootstrap"
	"mysterybox-storefront/internal/usecase/jobs"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Deliver queued order notifications and sweep expired idempotency keys",
	RunE:  runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(_ *cobra.Command, _ []string) error {
	app := fx.New(
		bootstrap.WorkerModule,
		fx.Invoke(startWorker),
	)
	return runApp(app)
}

func startWorker(lc fx.Lifecycle, dispatcher *jobs.Dispatcher, sweeper *jobs.IdempotencySweeper, logger *slog.Logger) {
	ctx, cancel := context.WithCancel(context.Background())
	var g errgroup.Group

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🚀 通知ワーカーを起動します")
			g.Go(func() error { return dispatcher.Run(ctx) })
			g.Go(func() error { return sweeper.Run(ctx) })
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 通知ワーカーを停止します")
			cancel()
			return g.Wait()
		},
	})
}
