package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/votewatch/leaderboard-syncer/internal/db"
	"github.com/votewatch/leaderboard-syncer/internal/db/model"
	"github.com/votewatch/leaderboard-syncer/pkg"
	"github.com/votewatch/leaderboard-syncer/tests/mocks"
)

func TestLoadTrackerStates(t *testing.T) {
	ctx := t.Context()

	t.Run("synced and unsynced trackers", func(t *testing.T) {
		store := mocks.NewDbInterface(t)
		synced := &model.SyncState{
			TrackedEntityID: "skyblock",
			ChannelID:       "channel-1",
			LastFingerprint: "abc",
			LastMessageID:   pkg.Ptr("m1"),
			UpdatedAt:       time.Now(),
		}
		store.On("GetSyncState", mock.Anything, "skyblock").Return(synced, nil).Once()
		store.On("GetSyncState", mock.Anything, "factions").Return(nil, &db.NotFoundError{Key: "factions"}).Once()

		states, err := loadTrackerStates(ctx, store, []string{"skyblock", "factions"})
		require.NoError(t, err)
		require.Len(t, states, 2)

		assert.True(t, states[0].Synced)
		assert.Equal(t, synced, states[0].State)
		assert.False(t, states[1].Synced)
		assert.Nil(t, states[1].State)
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewDbInterface(t)
		store.On("GetSyncState", mock.Anything, "skyblock").Return(nil, errors.New("connection refused")).Once()

		_, err := loadTrackerStates(ctx, store, []string{"skyblock"})
		require.ErrorContains(t, err, "connection refused")
	})
}

func TestGetDefaultConfigFile(t *testing.T) {
	assert.Equal(t, "/home/syncer/config.yml", getDefaultConfigFile("/home/syncer", defaultConfigFileName))
}
