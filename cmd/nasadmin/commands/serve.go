package commands

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/observes"
	"github.com/ncobase/nasadmin/version"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand(configFile *string) *cobra.Command {
	var seed int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development list server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("seed") {
				cfg.Server.SeedCount = seed
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().IntVar(&seed, "seed", 0, "records to seed per resource when the store is empty")
	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	app, cleanup, err := InitializeApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	l := app.Logger
	l.SetVersion(version.GetVersionInfo().Version)

	defer startTracing(ctx, cfg.Observes.Tracer)()

	enabled, flush, err := observes.NewSentry(cfg.AppName, cfg.Observes.Sentry)
	if err != nil {
		l.Warnf(ctx, "sentry disabled: %v", err)
	} else if enabled {
		l.Info(ctx, "sentry enabled")
	}
	defer flush()

	cfg.Watch(func(next *config.Config) {
		l.ApplyLevel(next.Logger.Level)
		l.Infof(context.Background(), "config reloaded, log level %d", next.Logger.Level)
	}, func(err error) {
		l.Warnf(context.Background(), "config reload: %v", err)
	})

	empty, err := app.Store.Empty(ctx)
	if err != nil {
		return err
	}
	if empty && cfg.Server.SeedCount > 0 {
		if err := app.Store.Seed(ctx, cfg.Server.SeedCount); err != nil {
			return err
		}
		l.Infof(ctx, "seeded %d records per resource", cfg.Server.SeedCount)
	}

	return app.Server.Run(ctx)
}
