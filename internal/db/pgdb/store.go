// Package pgdb keeps the sync state in PostgreSQL for deployments that do not
// run MongoDB. It satisfies db.DbInterface.
package pgdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/db"
	"github.com/votewatch/leaderboard-syncer/internal/db/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS sync_state (
	tracked_entity_id TEXT PRIMARY KEY,
	channel_id        TEXT NOT NULL,
	last_fingerprint  TEXT NOT NULL DEFAULT '',
	last_message_id   TEXT,
	created_at        TIMESTAMPTZ NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL
)`

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg *config.PostgresConfig) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create sync_state table: %w", err)
	}

	return &Store{pool: pool}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) GetSyncState(ctx context.Context, trackedEntityID string) (*model.SyncState, error) {
	const query = `
SELECT tracked_entity_id, channel_id, last_fingerprint, last_message_id, created_at, updated_at
FROM sync_state
WHERE tracked_entity_id = $1`

	var state model.SyncState
	err := s.pool.QueryRow(ctx, query, trackedEntityID).Scan(
		&state.TrackedEntityID,
		&state.ChannelID,
		&state.LastFingerprint,
		&state.LastMessageID,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &db.NotFoundError{
				Key:     trackedEntityID,
				Message: "sync state not found",
			}
		}
		return nil, err
	}

	return &state, nil
}

func (s *Store) UpsertSyncState(ctx context.Context, state *model.SyncState) error {
	const query = `
INSERT INTO sync_state (tracked_entity_id, channel_id, last_fingerprint, last_message_id, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (tracked_entity_id) DO UPDATE SET
	channel_id = EXCLUDED.channel_id,
	last_fingerprint = EXCLUDED.last_fingerprint,
	last_message_id = EXCLUDED.last_message_id,
	updated_at = EXCLUDED.updated_at`

	_, err := s.pool.Exec(ctx, query,
		state.TrackedEntityID,
		state.ChannelID,
		state.LastFingerprint,
		state.LastMessageID,
		state.CreatedAt,
		state.UpdatedAt,
	)
	return err
}
