package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/db"
	"github.com/votewatch/leaderboard-syncer/internal/db/model"
)

// ShowStateCmd prints the persisted sync state of the configured trackers
// Usage: ./leaderboard-syncer show-state --config config.yml [--tracker <id>]
func ShowStateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show-state",
		Short: "Prints the persisted sync state as JSON",
		Args:  cobra.ExactArgs(0),
		RunE:  showState,
	}

	cmd.Flags().String("tracker", "", "Only show the tracker with this id")

	return cmd
}

type trackerState struct {
	TrackerID string           `json:"tracker_id"`
	Synced    bool             `json:"synced"`
	State     *model.SyncState `json:"state,omitempty"`
}

func showState(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	trackerID, err := cmd.Flags().GetString("tracker")
	if err != nil {
		return fmt.Errorf("failed to parse tracker flag: %w", err)
	}

	cfg, err := config.New(GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ids := make([]string, 0, len(cfg.Trackers))
	if trackerID != "" {
		ids = append(ids, trackerID)
	} else {
		for _, tracker := range cfg.Trackers {
			ids = append(ids, tracker.ID)
		}
	}

	d := &deps{}
	defer d.close(context.WithoutCancel(ctx))

	store, err := openStore(ctx, cfg, d)
	if err != nil {
		return err
	}

	states, err := loadTrackerStates(ctx, store, ids)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(states)
}

func loadTrackerStates(ctx context.Context, store db.DbInterface, ids []string) ([]trackerState, error) {
	states := make([]trackerState, 0, len(ids))
	for _, id := range ids {
		state, err := store.GetSyncState(ctx, id)
		if err != nil && !db.IsNotFoundError(err) {
			return nil, fmt.Errorf("failed to load sync state of %s: %w", id, err)
		}
		states = append(states, trackerState{
			TrackerID: id,
			Synced:    state != nil,
			State:     state,
		})
	}

	return states, nil
}
