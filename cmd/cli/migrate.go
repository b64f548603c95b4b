package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"mysterybox-storefront/internal/handler/middleware"
	"mysterybox-storefront/internal/infra/migrate"
	"mysterybox-storefront/internal/pkg/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations with atlas",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().String("dir", migrate.DefaultDir, "Migrations directory")
	migrateCmd.Flags().String("atlas-bin", "atlas", "Atlas executable")
	migrateCmd.Flags().Bool("dry-run", false, "Print pending migrations without applying them")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	dbCfg, logCfg, err := config.LoadMigrateConfig()
	if err != nil {
		return err
	}
	logger := middleware.NewLogger(logCfg).GetSlogLogger()

	dir, _ := cmd.Flags().GetString("dir")
	bin, _ := cmd.Flags().GetString("atlas-bin")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	m, err := migrate.NewMigrator(dbCfg, migrate.Options{Dir: dir, AtlasBin: bin, DryRun: dryRun}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	res, err := m.Apply(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "current=%s target=%s applied=%d\n", res.Current, res.Target, len(res.Applied))
	return nil
}
