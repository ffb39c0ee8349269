//go:build integration

package pgdb

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/db"
	"github.com/votewatch/leaderboard-syncer/internal/db/model"
	"github.com/votewatch/leaderboard-syncer/pkg"
	"github.com/votewatch/leaderboard-syncer/testutil"
)

const (
	postgresUser     = "user"
	postgresPassword = "password"
	postgresDatabase = "test-database"

	postgresVersion = "16-alpine"
)

var testStore *Store

func TestMain(m *testing.M) {
	cfg, cleanup, err := setupPostgresContainer()
	if err != nil {
		log.Fatalf("failed to setup postgres container: %v", err)
	}

	testStore, err = connect(cfg)
	if err != nil {
		cleanup()
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	code := m.Run()
	testStore.Close()
	cleanup()

	os.Exit(code)
}

func setupPostgresContainer() (*config.PostgresConfig, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, err
	}

	randomString, err := testutil.RandomAlphaNum(3)
	if err != nil {
		return nil, nil, err
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Name:       "postgres-integration-tests-db-" + randomString,
		Repository: "postgres",
		Tag:        postgresVersion,
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDatabase,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("failed to purge resource: %v", err)
		}
	}

	cfg := &config.PostgresConfig{
		DSN: fmt.Sprintf(
			"postgres://%s:%s@localhost:%s/%s?sslmode=disable",
			postgresUser, postgresPassword, resource.GetPort("5432/tcp"), postgresDatabase,
		),
		MaxConns: 4,
	}

	// postgres accepts connections a few seconds after the container starts
	err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store, err := New(ctx, cfg)
		if err != nil {
			return err
		}
		store.Close()
		return nil
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return cfg, cleanup, nil
}

func connect(cfg *config.PostgresConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return New(ctx, cfg)
}

func resetTable(t *testing.T) {
	_, err := testStore.pool.Exec(context.Background(), "TRUNCATE sync_state")
	require.NoError(t, err)
}

func TestSyncState(t *testing.T) {
	ctx := t.Context()
	t.Cleanup(func() {
		resetTable(t)
	})

	const trackerID = "server-1"

	t.Run("not found", func(t *testing.T) {
		state, err := testStore.GetSyncState(ctx, trackerID)
		assert.True(t, db.IsNotFoundError(err))
		assert.Nil(t, state)
	})
	t.Run("upsert keeps created_at", func(t *testing.T) {
		// postgres keeps microsecond precision
		createdAt := time.Now().UTC().Truncate(time.Microsecond)
		updatedAt := createdAt.Add(10 * time.Minute)

		err := testStore.UpsertSyncState(ctx, &model.SyncState{
			TrackedEntityID: trackerID,
			ChannelID:       "channel-1",
			LastFingerprint: "fp-1",
			LastMessageID:   pkg.Ptr("message-1"),
			CreatedAt:       createdAt,
			UpdatedAt:       createdAt,
		})
		require.NoError(t, err)

		err = testStore.UpsertSyncState(ctx, &model.SyncState{
			TrackedEntityID: trackerID,
			ChannelID:       "channel-2",
			LastFingerprint: "fp-2",
			LastMessageID:   pkg.Ptr("message-2"),
			CreatedAt:       updatedAt,
			UpdatedAt:       updatedAt,
		})
		require.NoError(t, err)

		found, err := testStore.GetSyncState(ctx, trackerID)
		require.NoError(t, err)
		assert.Equal(t, "channel-2", found.ChannelID)
		assert.Equal(t, "fp-2", found.LastFingerprint)
		require.NotNil(t, found.LastMessageID)
		assert.Equal(t, "message-2", *found.LastMessageID)
		assert.True(t, createdAt.Equal(found.CreatedAt))
		assert.True(t, updatedAt.Equal(found.UpdatedAt))
	})
	t.Run("nil message id", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		err := testStore.UpsertSyncState(ctx, &model.SyncState{
			TrackedEntityID: "server-2",
			ChannelID:       "channel-2",
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		require.NoError(t, err)

		found, err := testStore.GetSyncState(ctx, "server-2")
		require.NoError(t, err)
		assert.False(t, found.HasMessage())
	})
}
