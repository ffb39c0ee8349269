package testutil

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

// RandomAlphaNum generates random alphanumeric string
// in case length <= 0 it returns an error
func RandomAlphaNum(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("length must be greater than 0")
	}

	return gofakeit.Password(true, true, true, false, false, length), nil
}

// RandomStandings returns n voters with unique nicknames and unique vote counts
func RandomStandings(f *gofakeit.Faker, n int) []types.VoterStanding {
	seen := make(map[string]struct{}, n)
	standings := make([]types.VoterStanding, 0, n)
	for len(standings) < n {
		nickname := f.Username()
		if _, ok := seen[nickname]; ok {
			continue
		}
		seen[nickname] = struct{}{}

		standings = append(standings, types.VoterStanding{
			Nickname:  nickname,
			VoteCount: uint64(len(standings)*7 + f.Number(0, 6)),
		})
	}
	return standings
}

// RandomEvents returns perVoter votes for every standing, formatted the way the
// vote site formats them
func RandomEvents(f *gofakeit.Faker, standings []types.VoterStanding, perVoter int) []types.VoteEvent {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	events := make([]types.VoteEvent, 0, len(standings)*perVoter)
	for _, standing := range standings {
		for range perVoter {
			at := f.DateRange(start, end).Truncate(time.Minute)
			events = append(events, types.VoteEvent{
				Nickname:     standing.Nickname,
				OccurredAt:   SourceTimestamp(at),
				EpochOrdinal: at.Unix(),
			})
		}
	}
	return events
}

// SourceTimestamp formats t like "October 23rd, 2024 05:23 PM EST"
func SourceTimestamp(t time.Time) string {
	est := t.In(time.FixedZone("EST", -5*60*60))
	return fmt.Sprintf("%s %d%s, %s EST",
		est.Format("January"),
		est.Day(),
		ordinalSuffix(est.Day()),
		est.Format("2006 03:04 PM"),
	)
}

func ordinalSuffix(day int) string {
	switch {
	case day >= 11 && day <= 13:
		return "th"
	case day%10 == 1:
		return "st"
	case day%10 == 2:
		return "nd"
	case day%10 == 3:
		return "rd"
	default:
		return "th"
	}
}
