package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/observability/metrics"
	"github.com/votewatch/leaderboard-syncer/internal/utils/poller"
)

const syncPollerType = "leaderboard_sync"

// StartSync runs one serial poller per tracker and blocks until ctx is done
func (s *Service) StartSync(ctx context.Context) {
	var wg conc.WaitGroup
	for _, tracker := range s.cfg.Trackers {
		syncPoller := poller.NewPoller(
			tracker.ID,
			s.cfg.Poller.SyncInterval,
			metrics.RecordPollerDuration(syncPollerType, tracker.ID, s.syncCycle(tracker)),
		)
		wg.Go(func() {
			syncPoller.Start(ctx)
		})
	}
	wg.Wait()
}

// SyncAll runs a single cycle for every tracker, one after another
func (s *Service) SyncAll(ctx context.Context) error {
	var errs []error
	for _, tracker := range s.cfg.Trackers {
		if err := s.syncCycle(tracker)(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracker %s: %w", tracker.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Service) syncCycle(tracker config.TrackerConfig) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := s.SyncOnce(ctx, tracker)
		if s.monitor != nil {
			s.monitor.RecordCycle(tracker.ID, err)
		}
		return err
	}
}
