package providerclient

import (
	"context"
	"time"

	"github.com/votewatch/leaderboard-syncer/internal/observability/metrics"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

type providerClientWithMetrics struct {
	provider ProviderInterface
}

func NewProviderClientWithMetrics(provider ProviderInterface) *providerClientWithMetrics {
	return &providerClientWithMetrics{provider: provider}
}

func (p *providerClientWithMetrics) GetStandings(ctx context.Context, key, period string) (*types.Standings, error) {
	return runProviderClientMethodWithMetrics("GetStandings", func() (*types.Standings, error) {
		return p.provider.GetStandings(ctx, key, period)
	})
}

func (p *providerClientWithMetrics) GetEvents(ctx context.Context, key string) (*types.Events, error) {
	return runProviderClientMethodWithMetrics("GetEvents", func() (*types.Events, error) {
		return p.provider.GetEvents(ctx, key)
	})
}

func runProviderClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	metrics.RecordProviderClientLatency(duration, method, err != nil)
	return result, err
}
