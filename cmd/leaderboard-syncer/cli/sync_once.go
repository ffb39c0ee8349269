package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/observability/tracing"
)

// SyncOnceCmd runs a single cycle for every configured tracker and exits.
// Usage: ./leaderboard-syncer sync-once --config config.yml [--tracker <id>]
func SyncOnceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-once",
		Short: "Runs one sync cycle for every tracker and exits",
		Args:  cobra.ExactArgs(0),
		RunE:  syncOnce,
	}

	cmd.Flags().String("tracker", "", "Only sync the tracker with this id")

	return cmd
}

func syncOnce(cmd *cobra.Command, _ []string) error {
	ctx := tracing.InjectTraceID(cmd.Context())

	trackerID, err := cmd.Flags().GetString("tracker")
	if err != nil {
		return fmt.Errorf("failed to parse tracker flag: %w", err)
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if trackerID != "" {
		tracker, ok := cfg.Tracker(trackerID)
		if !ok {
			return fmt.Errorf("tracker %s is not configured", trackerID)
		}
		cfg.Trackers = []config.TrackerConfig{tracker}
	}

	d, err := setupDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer d.close(context.WithoutCancel(ctx))

	if err := d.service.SyncAll(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	log.Ctx(ctx).Info().Int("trackers", len(cfg.Trackers)).Msg("sync completed")
	return nil
}
