package providerclient

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.ProviderConfig{
		BaseURL:           server.URL + "/",
		Timeout:           5 * time.Second,
		RequestsPerSecond: 100,
		Burst:             10,
	})
}

func TestGetStandings(t *testing.T) {
	ctx := t.Context()

	t.Run("ok", func(t *testing.T) {
		var query map[string]string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/", r.URL.Path)
			query = map[string]string{
				"object":  r.URL.Query().Get("object"),
				"element": r.URL.Query().Get("element"),
				"key":     r.URL.Query().Get("key"),
				"month":   r.URL.Query().Get("month"),
				"format":  r.URL.Query().Get("format"),
			}
			fmt.Fprint(w, `{
				"name": " My Server ",
				"address": "play.example.com",
				"month": "202410",
				"voters": [
					{"nickname": "alice", "votes": "12"},
					{"nickname": "bob", "votes": 7},
					{"nickname": "alice", "votes": "3"}
				]
			}`)
		})

		standings, err := client.GetStandings(ctx, "secret", "202410")
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"object":  "servers",
			"element": "voters",
			"key":     "secret",
			"month":   "202410",
			"format":  "json",
		}, query)
		assert.Equal(t, &types.Standings{
			EntityLabel: "My Server",
			Period:      "202410",
			Entries: []types.VoterStanding{
				{Nickname: "alice", VoteCount: 12},
				{Nickname: "bob", VoteCount: 7},
			},
		}, standings)
	})

	t.Run("empty voters", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"name": "My Server", "voters": []}`)
		})

		standings, err := client.GetStandings(ctx, "secret", "202410")
		require.NoError(t, err)
		assert.Empty(t, standings.Entries)
	})

	t.Run("invalid key answered with text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "Error: no server found")
		})

		_, err := client.GetStandings(ctx, "bad", "202410")
		assertFetchError(t, err, ReasonMalformed)
	})

	t.Run("negative votes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"voters": [{"nickname": "alice", "votes": -1}]}`)
		})

		_, err := client.GetStandings(ctx, "secret", "202410")
		assertFetchError(t, err, ReasonMalformed)
	})

	t.Run("missing nickname", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"voters": [{"nickname": "  ", "votes": 1}]}`)
		})

		_, err := client.GetStandings(ctx, "secret", "202410")
		assertFetchError(t, err, ReasonMalformed)
	})

	t.Run("non success status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, "slow down")
		})

		_, err := client.GetStandings(ctx, "secret", "202410")
		fetchErr := assertFetchError(t, err, ReasonStatus)
		assert.Equal(t, http.StatusTooManyRequests, fetchErr.StatusCode)
		assert.Contains(t, err.Error(), "slow down")
	})
}

func TestGetEvents(t *testing.T) {
	ctx := t.Context()

	t.Run("ok", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "votes", r.URL.Query().Get("element"))
			assert.Empty(t, r.URL.Query().Get("month"))
			fmt.Fprint(w, `{
				"name": "My Server",
				"votes": [
					{"date": "October 23rd, 2024 05:23 PM EST", "timestamp": 1729722180, "nickname": "alice", "claimed": "0"},
					{"date": "October 22nd, 2024 01:00 AM EST", "timestamp": "1729576800", "nickname": "bob", "claimed": "1"}
				]
			}`)
		})

		events, err := client.GetEvents(ctx, "secret")
		require.NoError(t, err)
		assert.Equal(t, []types.VoteEvent{
			{Nickname: "alice", OccurredAt: "October 23rd, 2024 05:23 PM EST", EpochOrdinal: 1729722180},
			{Nickname: "bob", OccurredAt: "October 22nd, 2024 01:00 AM EST", EpochOrdinal: 1729576800},
		}, events.Entries)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"votes": [{"date": "x", "timestamp": "soon", "nickname": "alice"}]}`)
		})

		_, err := client.GetEvents(ctx, "secret")
		assertFetchError(t, err, ReasonMalformed)
	})

	t.Run("server unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		client := NewClient(&config.ProviderConfig{
			BaseURL:           server.URL,
			Timeout:           time.Second,
			RequestsPerSecond: 100,
			Burst:             10,
		})

		_, err := client.GetEvents(ctx, "secret")
		assertFetchError(t, err, ReasonNetwork)
	})
}

func assertFetchError(t *testing.T, err error, reason FetchReason) *FetchError {
	t.Helper()

	require.Error(t, err)
	require.True(t, IsFetchError(err))

	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, reason, fetchErr.Reason)
	return fetchErr
}
