package types

// Message is the rendered leaderboard, independent of the transport formatting.
type Message struct {
	Title  string
	Body   string
	Footer string
}
