package services

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

const periodLayout = "200601"

// fetchLeaderboard issues both provider reads concurrently and waits for both.
// The first failure cancels the other read and is returned as is.
func (s *Service) fetchLeaderboard(
	ctx context.Context, tracker config.TrackerConfig,
) (*types.Standings, *types.Events, error) {
	period := tracker.Period
	if period == "" {
		period = s.now().Format(periodLayout)
	}

	var (
		standings *types.Standings
		events    *types.Events
	)

	p := pool.New().
		WithErrors().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError()

	p.Go(func(ctx context.Context) error {
		var err error
		standings, err = s.provider.GetStandings(ctx, tracker.ProviderKey, period)
		if err != nil {
			return fmt.Errorf("failed to fetch standings for period %s: %w", period, err)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		var err error
		events, err = s.provider.GetEvents(ctx, tracker.ProviderKey)
		if err != nil {
			return fmt.Errorf("failed to fetch vote events: %w", err)
		}
		return nil
	})

	if err := p.Wait(); err != nil {
		return nil, nil, err
	}

	return standings, events, nil
}
