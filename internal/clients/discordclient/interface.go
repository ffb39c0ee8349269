package discordclient

import (
	"context"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

//go:generate mockery --name=DiscordInterface --output=../../../tests/mocks --outpkg=mocks --filename=mock_discord_client.go
type DiscordInterface interface {
	// SendMessage posts msg to the channel and returns the new message id
	SendMessage(ctx context.Context, channelID string, msg *types.Message) (string, error)
	// EditMessage returns ErrMessageNotFound when the message no longer exists
	EditMessage(ctx context.Context, channelID, messageID string, msg *types.Message) error
	// MessageExists returns (false, nil) only when discord confirms the message is
	// gone. Any other failure is returned as an error.
	MessageExists(ctx context.Context, channelID, messageID string) (bool, error)
}
