package model

import "time"

const SyncStateCollection = "sync_state"

// SyncState is the only persisted entity. LastMessageID points at a message
// owned by the chat platform and may have been deleted there at any time.
type SyncState struct {
	TrackedEntityID string    `bson:"_id" json:"tracked_entity_id"`
	ChannelID       string    `bson:"channel_id" json:"channel_id"`
	LastFingerprint string    `bson:"last_fingerprint" json:"last_fingerprint"`
	LastMessageID   *string   `bson:"last_message_id" json:"last_message_id"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// HasMessage reports whether a message was recorded for the tracker
func (s *SyncState) HasMessage() bool {
	return s != nil && s.LastMessageID != nil && *s.LastMessageID != ""
}
