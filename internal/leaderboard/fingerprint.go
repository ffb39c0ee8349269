package leaderboard

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strconv"

	"github.com/votewatch/leaderboard-syncer/internal/types"
)

const fingerprintBytes = 16

// Fingerprint reduces the shaped records to a short token used for change
// detection only. Fields are length prefixed so that no two different record
// sequences serialize to the same bytes.
func Fingerprint(records []types.LeaderboardRecord) string {
	h := sha256.New()
	var size [binary.MaxVarintLen64]byte

	write := func(field string) {
		n := binary.PutUvarint(size[:], uint64(len(field)))
		h.Write(size[:n])
		h.Write([]byte(field))
	}

	write(strconv.Itoa(len(records)))
	for _, record := range records {
		write(record.Nickname)
		write(strconv.FormatUint(record.VoteCount, 10))
		write(record.LastActivityDisplay)
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:fingerprintBytes])
}
