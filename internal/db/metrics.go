package db

import (
	"context"
	"time"

	"github.com/votewatch/leaderboard-syncer/internal/db/model"
	"github.com/votewatch/leaderboard-syncer/internal/observability/metrics"
)

type DbWithMetrics struct {
	db DbInterface
}

func NewDbWithMetrics(db DbInterface) *DbWithMetrics {
	return &DbWithMetrics{db: db}
}

func (d *DbWithMetrics) Ping(ctx context.Context) error {
	return d.db.Ping(ctx)
}

func (d *DbWithMetrics) GetSyncState(ctx context.Context, trackedEntityID string) (result *model.SyncState, err error) {
	//nolint:errcheck
	d.run("GetSyncState", func() error {
		result, err = d.db.GetSyncState(ctx, trackedEntityID)
		// a missing state is an expected answer, not a failed query
		if IsNotFoundError(err) {
			return nil
		}
		return err
	})
	return
}

func (d *DbWithMetrics) UpsertSyncState(ctx context.Context, state *model.SyncState) error {
	return d.run("UpsertSyncState", func() error {
		return d.db.UpsertSyncState(ctx, state)
	})
}

// run is private method that executes passed lambda function and send metrics data with spent time, method name
// and an error if any. It returns the error from the lambda function for convenience
func (d *DbWithMetrics) run(method string, f func() error) error {
	startTime := time.Now()
	err := f()
	duration := time.Since(startTime)

	metrics.RecordDbLatency(duration, method, err != nil)
	return err
}
