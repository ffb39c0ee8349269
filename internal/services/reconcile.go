package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/votewatch/leaderboard-syncer/internal/clients/discordclient"
	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/db"
	"github.com/votewatch/leaderboard-syncer/internal/db/model"
	"github.com/votewatch/leaderboard-syncer/internal/leaderboard"
	"github.com/votewatch/leaderboard-syncer/internal/observability/metrics"
	"github.com/votewatch/leaderboard-syncer/internal/observability/tracing"
	"github.com/votewatch/leaderboard-syncer/internal/queue"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

// ErrTransientTransport aborts a cycle when the chat platform failed in a way
// that says nothing about whether the message still exists.
var ErrTransientTransport = errors.New("transient transport failure")

// PersistenceError is returned when a message was published or edited but the
// resulting state could not be saved. The next cycle will not know about
// MessageID and may publish again.
type PersistenceError struct {
	TrackedEntityID string
	MessageID       string
	Err             error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf(
		"failed to persist sync state of %s after action on message %s: %v",
		e.TrackedEntityID, e.MessageID, e.Err,
	)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

type SyncResult struct {
	State       types.SyncState
	Action      types.SyncAction
	MessageID   string
	Fingerprint string
	Entries     int
}

// SyncOnce runs a single fetch, shape and reconcile cycle for the tracker.
// Any error leaves the stored state untouched, except for a
// *PersistenceError which means the transport action already happened.
func (s *Service) SyncOnce(ctx context.Context, tracker config.TrackerConfig) (*SyncResult, error) {
	ctx = tracing.InjectTracker(tracing.InjectTraceID(ctx), tracker.ID)
	log := log.Ctx(ctx)

	standings, events, err := s.fetchLeaderboard(ctx, tracker)
	if err != nil {
		return nil, err
	}

	records := leaderboard.Shape(standings.Entries, events.Entries, s.normalizer)
	fingerprint := leaderboard.Fingerprint(records)
	metrics.RecordLeaderboardEntries(tracker.ID, len(records))

	prior, err := s.getSyncState(ctx, tracker.ID)
	if err != nil {
		return nil, err
	}

	state, err := s.classify(ctx, tracker, prior, fingerprint)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{
		State:       state,
		Action:      types.ActionFor(state),
		Fingerprint: fingerprint,
		Entries:     len(records),
	}

	if result.Action == types.ActionNoop {
		result.MessageID = *prior.LastMessageID
		metrics.RecordSyncState(tracker.ID, state.String())
		log.Debug().
			Str("state", state.String()).
			Str("message_id", result.MessageID).
			Msg("leaderboard unchanged and message is live")
		return result, nil
	}

	msg := leaderboard.Render(standings.EntityLabel, standings.Period, records, s.cfg.Discord.MaxEntries)

	if result.Action == types.ActionEdit {
		messageID := *prior.LastMessageID
		err := s.discord.EditMessage(ctx, tracker.ChannelID, messageID, msg)
		switch {
		case err == nil:
			result.MessageID = messageID
		case discordclient.IsNotFound(err):
			// deleted between the probe and the edit
			log.Warn().
				Str("message_id", messageID).
				Msg("leaderboard message disappeared before edit, publishing a new one")
			result.State = types.StateChangedNotEditable
			result.Action = types.ActionPublish
		default:
			return nil, fmt.Errorf("%w: failed to edit leaderboard message: %w", ErrTransientTransport, err)
		}
	}

	if result.Action == types.ActionPublish {
		messageID, err := s.discord.SendMessage(ctx, tracker.ChannelID, msg)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to publish leaderboard message: %w", ErrTransientTransport, err)
		}
		result.MessageID = messageID
	}

	metrics.RecordSyncState(tracker.ID, result.State.String())

	if err := s.saveSyncState(ctx, tracker, prior, result); err != nil {
		return result, err
	}

	log.Info().
		Str("state", result.State.String()).
		Str("action", result.Action.String()).
		Str("message_id", result.MessageID).
		Str("fingerprint", fingerprint).
		Int("entries", len(records)).
		Msg("leaderboard message synchronized")

	s.emitLeaderboardUpdated(ctx, tracker, standings.Period, records, result)

	return result, nil
}

// getSyncState returns nil without error when the tracker was never synced
func (s *Service) getSyncState(ctx context.Context, trackerID string) (*model.SyncState, error) {
	state, err := s.db.GetSyncState(ctx, trackerID)
	if err != nil {
		if db.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sync state: %w", err)
	}

	return state, nil
}

func (s *Service) classify(
	ctx context.Context, tracker config.TrackerConfig, prior *model.SyncState, fingerprint string,
) (types.SyncState, error) {
	if prior == nil {
		return types.StateNoPriorState, nil
	}

	unchanged := prior.LastFingerprint == fingerprint

	live, err := s.messageLive(ctx, tracker, prior)
	if err != nil {
		return "", err
	}

	switch {
	case unchanged && live:
		return types.StateUnchangedAndLive, nil
	case unchanged:
		return types.StateUnchangedButMissing, nil
	case live:
		return types.StateChangedEditable, nil
	default:
		return types.StateChangedNotEditable, nil
	}
}

// messageLive probes the transport only when a message id is stored
func (s *Service) messageLive(ctx context.Context, tracker config.TrackerConfig, prior *model.SyncState) (bool, error) {
	if !prior.HasMessage() {
		return false, nil
	}

	if prior.ChannelID != "" && prior.ChannelID != tracker.ChannelID {
		log.Ctx(ctx).Info().
			Str("previous_channel", prior.ChannelID).
			Str("channel", tracker.ChannelID).
			Msg("tracker moved to another channel, previous message is abandoned")
		return false, nil
	}

	exists, err := s.discord.MessageExists(ctx, tracker.ChannelID, *prior.LastMessageID)
	if err != nil {
		return false, fmt.Errorf("%w: failed to probe leaderboard message: %w", ErrTransientTransport, err)
	}

	return exists, nil
}

func (s *Service) saveSyncState(
	ctx context.Context, tracker config.TrackerConfig, prior *model.SyncState, result *SyncResult,
) error {
	now := s.now().UTC()
	next := &model.SyncState{
		TrackedEntityID: tracker.ID,
		ChannelID:       tracker.ChannelID,
		LastFingerprint: result.Fingerprint,
		LastMessageID:   &result.MessageID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if prior != nil {
		next.CreatedAt = prior.CreatedAt
	}

	err := s.db.UpsertSyncState(ctx, next)
	if err == nil {
		return nil
	}

	persistErr := &PersistenceError{
		TrackedEntityID: tracker.ID,
		MessageID:       result.MessageID,
		Err:             err,
	}

	log.Ctx(ctx).Error().
		Err(err).
		Str("state", result.State.String()).
		Str("action", result.Action.String()).
		Str("message_id", result.MessageID).
		Msg("leaderboard message is live but its sync state was not saved")
	metrics.IncPersistenceFailures(tracker.ID)
	if s.monitor != nil {
		s.monitor.MarkPersistenceDegraded(tracker.ID, persistErr)
	}

	return persistErr
}

func (s *Service) emitLeaderboardUpdated(
	ctx context.Context,
	tracker config.TrackerConfig,
	period string,
	records []types.LeaderboardRecord,
	result *SyncResult,
) {
	if s.eventConsumer == nil {
		return
	}

	ev := queue.NewLeaderboardUpdatedEvent(
		tracker.ID,
		tracker.ChannelID,
		result.MessageID,
		result.Action,
		period,
		result.Fingerprint,
		records,
		s.now().UTC(),
	)
	if err := s.eventConsumer.PushLeaderboardUpdatedEvent(ctx, ev); err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to push leaderboard updated event")
		metrics.RecordQueueSendError()
	}
}
