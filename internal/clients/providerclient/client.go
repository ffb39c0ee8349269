package providerclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/observability/metrics"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

const (
	apiPath = "/api/"
	// bodies above this size are not a leaderboard
	maxResponseBytes = 8 << 20
)

type Client struct {
	httpClient *http.Client
	cfg        *config.ProviderConfig
	limiter    *rate.Limiter
}

func NewClient(cfg *config.ProviderConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
	}
}

func (c *Client) GetStandings(ctx context.Context, key, period string) (*types.Standings, error) {
	const op = "get standings"

	params := url.Values{}
	params.Set("object", "servers")
	params.Set("element", "voters")
	params.Set("key", key)
	params.Set("month", period)
	params.Set("format", "json")

	var resp votersResponse
	if err := c.get(ctx, op, params, &resp); err != nil {
		return nil, err
	}

	standings := &types.Standings{
		EntityLabel: strings.TrimSpace(resp.Name),
		Period:      period,
		Entries:     make([]types.VoterStanding, 0, len(resp.Voters)),
	}
	seen := make(map[string]struct{}, len(resp.Voters))
	for i, voter := range resp.Voters {
		nickname := strings.TrimSpace(voter.Nickname)
		if nickname == "" {
			return nil, malformed(op, fmt.Errorf("voter %d has no nickname", i))
		}
		if voter.Votes < 0 {
			return nil, malformed(op, fmt.Errorf("voter %q has negative vote count %d", nickname, voter.Votes))
		}
		if _, ok := seen[nickname]; ok {
			log.Ctx(ctx).Debug().Str("nickname", nickname).Msg("skipping duplicate voter in standings")
			continue
		}
		seen[nickname] = struct{}{}

		standings.Entries = append(standings.Entries, types.VoterStanding{
			Nickname:  nickname,
			VoteCount: uint64(voter.Votes),
		})
	}

	return standings, nil
}

func (c *Client) GetEvents(ctx context.Context, key string) (*types.Events, error) {
	const op = "get events"

	params := url.Values{}
	params.Set("object", "servers")
	params.Set("element", "votes")
	params.Set("key", key)
	params.Set("format", "json")

	var resp votesResponse
	if err := c.get(ctx, op, params, &resp); err != nil {
		return nil, err
	}

	events := &types.Events{
		Entries: make([]types.VoteEvent, 0, len(resp.Votes)),
	}
	for i, vote := range resp.Votes {
		nickname := strings.TrimSpace(vote.Nickname)
		if nickname == "" {
			return nil, malformed(op, fmt.Errorf("vote %d has no nickname", i))
		}

		events.Entries = append(events.Entries, types.VoteEvent{
			Nickname:     nickname,
			OccurredAt:   vote.Date,
			EpochOrdinal: int64(vote.Timestamp),
		})
	}

	return events, nil
}

func (c *Client) GetBaseURL() string {
	return strings.TrimRight(c.cfg.BaseURL, "/")
}

func (c *Client) get(ctx context.Context, op string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &FetchError{Op: op, Reason: ReasonNetwork, Err: err}
	}

	endpoint := c.GetBaseURL() + apiPath + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &FetchError{Op: op, Reason: ReasonNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	observe := metrics.StartClientRequestDurationTimer(c.GetBaseURL(), http.MethodGet, apiPath+params.Get("element"))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(0)
		return &FetchError{Op: op, Reason: ReasonNetwork, Err: err}
	}
	defer resp.Body.Close()
	observe(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &FetchError{Op: op, Reason: ReasonNetwork, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &FetchError{
			Op:         op,
			Reason:     ReasonStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s", truncate(body, 200)),
		}
	}

	// an invalid key is answered with 200 and a plain text error
	if err := json.Unmarshal(body, out); err != nil {
		return malformed(op, fmt.Errorf("%w (body: %s)", err, truncate(body, 200)))
	}

	return nil
}

func malformed(op string, err error) *FetchError {
	return &FetchError{Op: op, Reason: ReasonMalformed, Err: err}
}

func truncate(body []byte, limit int) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
