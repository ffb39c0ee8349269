package discordclient

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

const maxDescriptionLength = 4096

// session is the subset of *discordgo.Session the client needs
type session interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditComplex(m *discordgo.MessageEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessage(channelID, messageID string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Client struct {
	session session
	cfg     *config.DiscordConfig
	now     func() time.Time
}

// Session is the gateway connection behind the client. It is owned by the
// caller of New and must be closed on shutdown.
type Session struct {
	*discordgo.Session
}

// New opens the discord session. Opening is retried because the gateway may be
// briefly unavailable while the process starts, later calls are not retried.
func New(ctx context.Context, cfg *config.DiscordConfig) (*Client, *Session, error) {
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	err = retry.Do(
		dg.Open,
		retry.Context(ctx),
		retry.Attempts(cfg.OpenRetryTimes),
		retry.Delay(cfg.OpenRetryInterval),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			log.Ctx(ctx).Warn().
				Err(err).
				Uint("attempt", n+1).
				Uint("max_attempts", cfg.OpenRetryTimes).
				Msg("failed to open discord session, retrying")
		}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open discord session: %w", err)
	}

	return newClient(dg, cfg), &Session{Session: dg}, nil
}

func newClient(s session, cfg *config.DiscordConfig) *Client {
	return &Client{
		session: s,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (c *Client) SendMessage(ctx context.Context, channelID string, msg *types.Message) (string, error) {
	sent, err := c.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{c.embed(msg)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}

	return sent.ID, nil
}

func (c *Client) EditMessage(ctx context.Context, channelID, messageID string, msg *types.Message) error {
	edit := discordgo.NewMessageEdit(channelID, messageID).SetEmbed(c.embed(msg))

	_, err := c.session.ChannelMessageEditComplex(edit, discordgo.WithContext(ctx))
	if err != nil {
		if IsNotFound(err) {
			return fmt.Errorf("%w: %s/%s", ErrMessageNotFound, channelID, messageID)
		}
		return fmt.Errorf("failed to edit message %s in channel %s: %w", messageID, channelID, err)
	}

	return nil
}

func (c *Client) MessageExists(ctx context.Context, channelID, messageID string) (bool, error) {
	_, err := c.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}

	return false, fmt.Errorf("failed to fetch message %s in channel %s: %w", messageID, channelID, err)
}

func (c *Client) embed(msg *types.Message) *discordgo.MessageEmbed {
	description := msg.Body
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength-3] + "..."
	}

	return &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: description,
		Color:       c.cfg.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: msg.Footer},
		Timestamp:   c.now().UTC().Format(time.RFC3339),
	}
}
