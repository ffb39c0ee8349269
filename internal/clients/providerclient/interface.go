package providerclient

import (
	"context"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

//go:generate mockery --name=ProviderInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_provider_client.go
type ProviderInterface interface {
	// GetStandings returns the voters of the tracked server for the given period (YYYYMM)
	GetStandings(ctx context.Context, key, period string) (*types.Standings, error)
	// GetEvents returns the raw vote log of the tracked server
	GetEvents(ctx context.Context, key string) (*types.Events, error)
}
