package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/votewatch/leaderboard-syncer/consumer"
	"github.com/votewatch/leaderboard-syncer/internal/clients/discordclient"
	"github.com/votewatch/leaderboard-syncer/internal/clients/providerclient"
	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/db"
	dbmodel "github.com/votewatch/leaderboard-syncer/internal/db/model"
	"github.com/votewatch/leaderboard-syncer/internal/db/pgdb"
	"github.com/votewatch/leaderboard-syncer/internal/observability/health"
	"github.com/votewatch/leaderboard-syncer/internal/queue"
	"github.com/votewatch/leaderboard-syncer/internal/services"
)

// deps are the long lived handles of one process. close releases them in
// reverse order of creation.
type deps struct {
	service *services.Service
	monitor *health.Monitor
	closers []func(ctx context.Context)
}

func (d *deps) close(ctx context.Context) {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i](ctx)
	}
}

func setupDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	d := &deps{}

	dbClient, err := openStore(ctx, cfg, d)
	if err != nil {
		d.close(ctx)
		return nil, err
	}

	var discordClient discordclient.DiscordInterface
	client, session, err := discordclient.New(ctx, &cfg.Discord)
	if err != nil {
		d.close(ctx)
		return nil, fmt.Errorf("error while creating discord client: %w", err)
	}
	d.closers = append(d.closers, func(ctx context.Context) {
		if err := session.Close(); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to close discord session")
		}
	})
	discordClient = discordclient.NewDiscordClientWithMetrics(client)

	var providerClient providerclient.ProviderInterface
	providerClient = providerclient.NewClient(&cfg.Provider)
	providerClient = providerclient.NewProviderClientWithMetrics(providerClient)

	// left as a nil interface when no queue is configured
	var eventConsumer consumer.EventConsumer
	if cfg.Queue != nil {
		qm, err := queue.NewQueueManager(cfg.Queue)
		if err != nil {
			d.close(ctx)
			return nil, fmt.Errorf("failed to initialize event consumer: %w", err)
		}
		d.closers = append(d.closers, func(context.Context) { qm.Shutdown() })
		eventConsumer = qm
	}

	trackerIDs := make([]string, 0, len(cfg.Trackers))
	for _, tracker := range cfg.Trackers {
		trackerIDs = append(trackerIDs, tracker.ID)
	}
	d.monitor = health.NewMonitor(cfg.Poller.HealthStaleAfter, dbClient, trackerIDs)

	d.service = services.NewService(cfg, dbClient, providerClient, discordClient, eventConsumer, d.monitor)

	return d, nil
}

// openStore connects the state store selected by db.driver
func openStore(ctx context.Context, cfg *config.Config, d *deps) (db.DbInterface, error) {
	var store db.DbInterface

	switch cfg.Db.Driver {
	case config.DriverPostgres:
		pgStore, err := pgdb.New(ctx, cfg.Postgres)
		if err != nil {
			return nil, fmt.Errorf("error while creating postgres client: %w", err)
		}
		d.closers = append(d.closers, func(context.Context) { pgStore.Close() })
		store = pgStore
	default:
		if err := dbmodel.Setup(ctx, &cfg.Db); err != nil {
			return nil, fmt.Errorf("error while setting up sync state db model: %w", err)
		}

		mongoStore, err := db.New(ctx, cfg.Db)
		if err != nil {
			return nil, fmt.Errorf("error while creating db client: %w", err)
		}
		d.closers = append(d.closers, func(ctx context.Context) {
			if err := mongoStore.Disconnect(ctx); err != nil {
				log.Ctx(ctx).Error().Err(err).Msg("failed to disconnect from mongo")
			}
		})
		store = mongoStore
	}

	return db.NewDbWithMetrics(store), nil
}
