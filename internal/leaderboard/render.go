package leaderboard

import (
	"fmt"
	"strings"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

const (
	// EmptyPlaceholder replaces the list when nobody voted in the period
	EmptyPlaceholder = "No votes have been recorded yet this month."
	defaultTitle     = "Vote Leaderboard"
)

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
	">", `\>`,
)

// Render builds the message body for the records. At most maxEntries rows are
// listed, a non-positive maxEntries lists all of them.
func Render(entityLabel, period string, records []types.LeaderboardRecord, maxEntries int) *types.Message {
	title := entityLabel
	if title == "" {
		title = defaultTitle
	}

	msg := &types.Message{
		Title:  title,
		Footer: fmt.Sprintf("Voting period %s", period),
	}

	if len(records) == 0 {
		msg.Body = EmptyPlaceholder
		return msg
	}

	shown := records
	if maxEntries > 0 && len(records) > maxEntries {
		shown = records[:maxEntries]
	}

	lines := make([]string, 0, len(shown)+1)
	for i, record := range shown {
		lines = append(lines, fmt.Sprintf("`%d.` **%s** - %s (last vote: %s)",
			i+1,
			markdownEscaper.Replace(record.Nickname),
			votes(record.VoteCount),
			record.LastActivityDisplay,
		))
	}
	if hidden := len(records) - len(shown); hidden > 0 {
		lines = append(lines, fmt.Sprintf("...and %d more", hidden))
	}

	msg.Body = strings.Join(lines, "\n")
	return msg
}

func votes(count uint64) string {
	if count == 1 {
		return "1 vote"
	}
	return fmt.Sprintf("%d votes", count)
}
