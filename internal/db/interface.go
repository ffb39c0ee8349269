package db

import (
	"context"

	"github.com/votewatch/leaderboard-syncer/internal/db/model"
)

//go:generate mockery --name=DbInterface --output=../../tests/mocks --outpkg=mocks --filename=mock_db_client.go
type DbInterface interface {
	Ping(ctx context.Context) error
	// GetSyncState returns *NotFoundError when the tracker was never synced
	GetSyncState(ctx context.Context, trackedEntityID string) (*model.SyncState, error)
	// UpsertSyncState writes all fields of the state at once
	UpsertSyncState(ctx context.Context, state *model.SyncState) error
}
