package providerclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// flexInt accepts both 12 and "12", the vote site is not consistent about it
type flexInt int64

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", data, err)
	}
	*n = flexInt(v)
	return nil
}

type votersResponse struct {
	Name   string `json:"name"`
	Month  string `json:"month"`
	Voters []struct {
		Nickname string  `json:"nickname"`
		Votes    flexInt `json:"votes"`
	} `json:"voters"`
}

type votesResponse struct {
	Votes []struct {
		Nickname  string  `json:"nickname"`
		Date      string  `json:"date"`
		Timestamp flexInt `json:"timestamp"`
	} `json:"votes"`
}
