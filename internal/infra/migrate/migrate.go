package migrate

import (
	"context"
	"log/slog"

	"mysterybox-storefront/internal/pkg/config"
	"mysterybox-storefront/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const DefaultDir = "migrations"

var ErrAtlasUnavailable = errs.New("atlas binary unavailable")

type Options struct {
	// Dir is the migrations directory relative to the working directory.
	Dir string
	// AtlasBin is the atlas executable name or path.
	AtlasBin string
	DryRun   bool
}

type Result struct {
	Current string
	Target  string
	Applied []string
}

type Migrator struct {
	client *atlasexec.Client
	dsn    string
	dir    string
	dryRun bool
	logger *slog.Logger
}

func NewMigrator(cfg config.DBConfig, opts Options, logger *slog.Logger) (*Migrator, error) {
	if opts.Dir == "" {
		opts.Dir = DefaultDir
	}
	if opts.AtlasBin == "" {
		opts.AtlasBin = "atlas"
	}
	client, err := atlasexec.NewClient(".", opts.AtlasBin)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to create atlas client"), ErrAtlasUnavailable)
	}
	return &Migrator{
		client: client,
		dsn:    cfg.BuildDSN(),
		dir:    opts.Dir,
		dryRun: opts.DryRun,
		logger: logger,
	}, nil
}

func (m *Migrator) Apply(ctx context.Context) (*Result, error) {
	res, err := m.client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    m.dsn,
		DirURL: "file://" + m.dir,
		DryRun: m.dryRun,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to apply migrations")
	}

	out := &Result{Current: res.Current, Target: res.Target}
	for _, f := range res.Applied {
		out.Applied = append(out.Applied, f.Name)
		m.logger.Info("migration applied", "file", f.Name, "dry_run", m.dryRun)
	}
	if len(out.Applied) == 0 {
		m.logger.Info("no pending migrations", "current", res.Current)
	}
	return out, nil
}
