package types

// UnknownActivity is displayed when a voter has no matching vote in the event log.
const UnknownActivity = "Unknown"

// VoterStanding is one voter's position in the current reporting window.
type VoterStanding struct {
	Nickname  string
	VoteCount uint64
}

// VoteEvent is a single entry of the provider's raw vote log.
type VoteEvent struct {
	Nickname string
	// OccurredAt is kept exactly as the provider formats it
	OccurredAt string
	// EpochOrdinal only has to be sortable, it is not guaranteed to be a unix time
	EpochOrdinal int64
}

// LeaderboardRecord is the shaped unit that gets published. Rank is positional.
type LeaderboardRecord struct {
	Nickname            string
	VoteCount           uint64
	LastActivityDisplay string
}

// Standings is the validated result of the standings query.
type Standings struct {
	EntityLabel string
	Period      string
	Entries     []VoterStanding
}

// Events is the validated result of the vote log query.
type Events struct {
	Entries []VoteEvent
}
