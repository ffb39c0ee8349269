package consumer

import (
	"context"

	"github.com/votewatch/leaderboard-syncer/internal/queue"
)

// EventConsumer receives leaderboard updates for downstream services. Pushing
// is best effort, a failed push never fails the sync cycle.
//
//go:generate mockery --name=EventConsumer --output=../tests/mocks --outpkg=mocks --filename=mock_event_consumer.go
type EventConsumer interface {
	PushLeaderboardUpdatedEvent(ctx context.Context, ev *queue.LeaderboardUpdatedEvent) error
}
