package queue

import (
	"time"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

const (
	LeaderboardUpdatedEventType = "leaderboard_updated"
	eventSchemaVersion          = 1
)

type LeaderboardEntry struct {
	Rank         int    `json:"rank"`
	Nickname     string `json:"nickname"`
	VoteCount    uint64 `json:"vote_count"`
	LastActivity string `json:"last_activity"`
}

// LeaderboardUpdatedEvent is emitted whenever a leaderboard message was posted or edited
type LeaderboardUpdatedEvent struct {
	SchemaVersion   int                `json:"schema_version"`
	EventType       string             `json:"event_type"`
	TrackedEntityID string             `json:"tracked_entity_id"`
	ChannelID       string             `json:"channel_id"`
	MessageID       string             `json:"message_id"`
	Action          string             `json:"action"`
	Period          string             `json:"period"`
	Fingerprint     string             `json:"fingerprint"`
	Entries         []LeaderboardEntry `json:"entries"`
	EmittedAt       time.Time          `json:"emitted_at"`
}

func NewLeaderboardUpdatedEvent(
	trackedEntityID, channelID, messageID string,
	action types.SyncAction,
	period, fingerprint string,
	records []types.LeaderboardRecord,
	emittedAt time.Time,
) *LeaderboardUpdatedEvent {
	entries := make([]LeaderboardEntry, 0, len(records))
	for i, record := range records {
		entries = append(entries, LeaderboardEntry{
			Rank:         i + 1,
			Nickname:     record.Nickname,
			VoteCount:    record.VoteCount,
			LastActivity: record.LastActivityDisplay,
		})
	}

	return &LeaderboardUpdatedEvent{
		SchemaVersion:   eventSchemaVersion,
		EventType:       LeaderboardUpdatedEventType,
		TrackedEntityID: trackedEntityID,
		ChannelID:       channelID,
		MessageID:       messageID,
		Action:          action.String(),
		Period:          period,
		Fingerprint:     fingerprint,
		Entries:         entries,
		EmittedAt:       emittedAt,
	}
}
