package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/observability/metrics"
	"github.com/votewatch/leaderboard-syncer/internal/observability/tracing"
)

const shutdownTimeout = 10 * time.Second

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the leaderboard sync loops together with the metrics and health server",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		return fmt.Errorf("error while loading config file %s: %w", cfgPath, err)
	}

	d, err := setupDeps(ctx, cfg)
	if err != nil {
		return err
	}

	server := metrics.Init(cfg.Metrics.GetMetricsAddr(), d.monitor)

	log.Info().
		Int("trackers", len(cfg.Trackers)).
		Dur("sync_interval", cfg.Poller.SyncInterval).
		Msg("starting leaderboard sync")

	// blocks until SIGINT or SIGTERM
	d.service.StartSync(ctx)

	log.Info().Msg("shutting down leaderboard syncer")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown metrics server")
	}
	d.close(shutdownCtx)

	return nil
}
