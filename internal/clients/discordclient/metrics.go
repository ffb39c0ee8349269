package discordclient

import (
	"context"
	"time"

	"github.com/votewatch/leaderboard-syncer/internal/observability/metrics"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

type discordClientWithMetrics struct {
	discord DiscordInterface
}

func NewDiscordClientWithMetrics(discord DiscordInterface) *discordClientWithMetrics {
	return &discordClientWithMetrics{discord: discord}
}

func (d *discordClientWithMetrics) SendMessage(ctx context.Context, channelID string, msg *types.Message) (string, error) {
	return runDiscordClientMethodWithMetrics("SendMessage", func() (string, error) {
		return d.discord.SendMessage(ctx, channelID, msg)
	})
}

func (d *discordClientWithMetrics) EditMessage(ctx context.Context, channelID, messageID string, msg *types.Message) error {
	_, err := runDiscordClientMethodWithMetrics("EditMessage", func() (struct{}, error) {
		return struct{}{}, d.discord.EditMessage(ctx, channelID, messageID, msg)
	})
	return err
}

func (d *discordClientWithMetrics) MessageExists(ctx context.Context, channelID, messageID string) (bool, error) {
	return runDiscordClientMethodWithMetrics("MessageExists", func() (bool, error) {
		return d.discord.MessageExists(ctx, channelID, messageID)
	})
}

func runDiscordClientMethodWithMetrics[T any](method string, f func() (T, error)) (T, error) {
	startTime := time.Now()
	result, err := f()
	duration := time.Since(startTime)

	metrics.RecordDiscordClientLatency(duration, method, err != nil)
	return result, err
}
