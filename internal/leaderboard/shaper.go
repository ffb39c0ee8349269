package leaderboard

import (
	"sort"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

// Normalizer turns a provider timestamp into its display form.
type Normalizer interface {
	Normalize(source string) string
}

// Shape joins standings with the latest vote of each voter and orders the result
// by vote count, highest first. Voters with equal counts keep their standings
// order. The result only depends on the inputs, which keeps fingerprints stable.
func Shape(standings []types.VoterStanding, events []types.VoteEvent, normalizer Normalizer) []types.LeaderboardRecord {
	latest := latestEvents(events)

	records := make([]types.LeaderboardRecord, 0, len(standings))
	for _, standing := range standings {
		display := types.UnknownActivity
		if event, ok := latest[standing.Nickname]; ok {
			display = normalizer.Normalize(event.OccurredAt)
		}

		records = append(records, types.LeaderboardRecord{
			Nickname:            standing.Nickname,
			VoteCount:           standing.VoteCount,
			LastActivityDisplay: display,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].VoteCount > records[j].VoteCount
	})

	return records
}

// latestEvents picks the event with the highest ordinal per nickname. Equal
// ordinals are resolved on the raw timestamp so the choice does not depend on
// the order the provider returned the log in.
func latestEvents(events []types.VoteEvent) map[string]types.VoteEvent {
	latest := make(map[string]types.VoteEvent, len(events))
	for _, event := range events {
		current, ok := latest[event.Nickname]
		switch {
		case !ok:
		case event.EpochOrdinal > current.EpochOrdinal:
		case event.EpochOrdinal == current.EpochOrdinal && event.OccurredAt < current.OccurredAt:
		default:
			continue
		}
		latest[event.Nickname] = event
	}
	return latest
}
