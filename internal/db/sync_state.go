package db

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/votewatch/leaderboard-syncer/internal/db/model"
)

func (db *Database) GetSyncState(ctx context.Context, trackedEntityID string) (*model.SyncState, error) {
	filter := bson.M{"_id": trackedEntityID}
	res := db.collection(model.SyncStateCollection).FindOne(ctx, filter)

	var state model.SyncState
	err := res.Decode(&state)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{
				Key:     trackedEntityID,
				Message: "sync state not found",
			}
		}
		return nil, err
	}

	return &state, nil
}

// UpsertSyncState replaces the mutable fields of the tracker's state in one
// write. created_at is only written when the document is inserted.
func (db *Database) UpsertSyncState(ctx context.Context, state *model.SyncState) error {
	filter := bson.M{"_id": state.TrackedEntityID}
	update := bson.M{
		"$set": bson.M{
			"channel_id":       state.ChannelID,
			"last_fingerprint": state.LastFingerprint,
			"last_message_id":  state.LastMessageID,
			"updated_at":       state.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"created_at": state.CreatedAt,
		},
	}

	_, err := db.collection(model.SyncStateCollection).
		UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}
