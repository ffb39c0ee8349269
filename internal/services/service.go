package services

import (
	"time"

	"github.com/votewatch/leaderboard-syncer/consumer"
	"github.com/votewatch/leaderboard-syncer/internal/clients/discordclient"
	"github.com/votewatch/leaderboard-syncer/internal/clients/providerclient"
	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/db"
	"github.com/votewatch/leaderboard-syncer/internal/observability/health"
	"github.com/votewatch/leaderboard-syncer/internal/timezone"
)

// Service holds every handle a sync cycle needs. eventConsumer and monitor
// are optional and may be nil.
type Service struct {
	cfg           *config.Config
	db            db.DbInterface
	provider      providerclient.ProviderInterface
	discord       discordclient.DiscordInterface
	eventConsumer consumer.EventConsumer
	monitor       *health.Monitor
	normalizer    *timezone.Normalizer
	now           func() time.Time
}

func NewService(
	cfg *config.Config,
	db db.DbInterface,
	provider providerclient.ProviderInterface,
	discord discordclient.DiscordInterface,
	eventConsumer consumer.EventConsumer,
	monitor *health.Monitor,
) *Service {
	return &Service{
		cfg:           cfg,
		db:            db,
		provider:      provider,
		discord:       discord,
		eventConsumer: eventConsumer,
		monitor:       monitor,
		normalizer:    timezone.New(cfg.Timezone),
		now:           time.Now,
	}
}
