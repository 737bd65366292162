package cli

import (
	"context"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/spf13/cobra"

	"github.com/RodrigoRozasV/contentful-products-api/internal/platform/logger"
	syncmod "github.com/RodrigoRozasV/contentful-products-api/internal/services/sync/module"
)

// SyncCompleted is printed after a manual sync
const SyncCompleted = "Sync completed successfully"

const shutdownTimeout = 30 * time.Second

// waitShutdown blocks on SIGINT/SIGTERM, runs ops and yields the exit code
var waitShutdown = func(ctx context.Context, ops map[string]gfshutdown.Operation) <-chan int {
	return gfshutdown.GracefulShutdown(ctx, shutdownTimeout, ops)
}

func newSyncCmd(rt Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Pull every product from Contentful and upsert it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ports, err := rt.Sync(cmd.Context(), syncmod.Options{})
			if err != nil {
				return err
			}
			if err := ports.Runner.Execute(cmd.Context()); err != nil {
				return err
			}
			return printJSON(cmd, messageOut{Message: SyncCompleted})
		},
	}
}

func newScheduleCmd(rt Runtime) *cobra.Command {
	var (
		interval time.Duration
		runNow   bool
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run syncs on an interval until interrupted",
		Long: "Runs the sync on a fixed interval (CORE_SYNC_INTERVAL, default 1h) until SIGINT or SIGTERM.\n" +
			"A failed run is logged and the next tick proceeds.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ports, err := rt.Sync(cmd.Context(), syncmod.Options{Interval: interval, RunOnStart: runNow})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			done := make(chan error, 1)
			go func() { done <- ports.Scheduler.Run(ctx) }()

			log := logger.Named("schedule")
			wait := waitShutdown(context.WithoutCancel(cmd.Context()), map[string]gfshutdown.Operation{
				"scheduler": func(ctx context.Context) error {
					cancel()
					select {
					case <-done:
						return nil
					case <-ctx.Done():
						return ctx.Err()
					}
				},
			})

			code := <-wait
			cancel()
			if err := rt.Close(context.WithoutCancel(cmd.Context())); err != nil {
				log.Warn().Err(err).Msg("close store failed")
			}
			log.Info().Int("exit_code", code).Msg("scheduler stopped")
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "time between syncs (defaults to CORE_SYNC_INTERVAL)")
	cmd.Flags().BoolVar(&runNow, "run-now", false, "sync once immediately before the first tick")
	return cmd
}
