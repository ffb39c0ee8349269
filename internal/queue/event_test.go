package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

func TestNewLeaderboardUpdatedEvent(t *testing.T) {
	emittedAt := time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)
	records := []types.LeaderboardRecord{
		{Nickname: "alice", VoteCount: 4, LastActivityDisplay: "Oct 01, 2024 07:00 AM UTC"},
		{Nickname: "bob", VoteCount: 2, LastActivityDisplay: types.UnknownActivity},
	}

	ev := NewLeaderboardUpdatedEvent("server-1", "channel-1", "message-1", types.ActionEdit, "202410", "fp", records, emittedAt)

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, LeaderboardUpdatedEventType, decoded["event_type"])
	assert.Equal(t, "edit", decoded["action"])
	assert.Equal(t, "2024-10-01T12:00:00Z", decoded["emitted_at"])

	entries, ok := decoded["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 2)
	second := entries[1].(map[string]any)
	assert.Equal(t, float64(2), second["rank"])
	assert.Equal(t, "bob", second["nickname"])
}
