package timezone

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/votewatch/leaderboard-syncer/internal/config"
	"github.com/votewatch/leaderboard-syncer/internal/types"
)

// InvalidDate replaces timestamps that could not be parsed.
const InvalidDate = "Invalid date"

// DisplayLayout is the layout of every normalized timestamp, without the zone label.
const DisplayLayout = "Jan 02, 2006 03:04 PM"

var ordinalSuffix = regexp.MustCompile(`(?i)\b(\d{1,2})(st|nd|rd|th)\b`)

// sourceLayouts are tried in order after labels and ordinal suffixes are removed
var sourceLayouts = []string{
	"January 2, 2006 03:04 PM",
	"January 2, 2006 3:04 PM",
	"Jan 2, 2006 03:04 PM",
	"Jan 2, 2006 3:04 PM",
	"January 2, 2006 15:04",
	"January 2, 2006",
}

// Normalizer converts provider timestamps from a fixed source offset into a fixed
// target offset. Offsets are static, daylight saving is not applied.
type Normalizer struct {
	source      *time.Location
	target      *time.Location
	targetLabel string
}

func New(cfg config.TimezoneConfig) *Normalizer {
	return &Normalizer{
		source:      time.FixedZone(cfg.SourceLabel, int(cfg.SourceOffset.Seconds())),
		target:      time.FixedZone(cfg.TargetLabel, int(cfg.TargetOffset.Seconds())),
		targetLabel: cfg.TargetLabel,
	}
}

// Normalize never fails: empty and unknown input is passed through as
// types.UnknownActivity and garbage becomes InvalidDate.
func (n *Normalizer) Normalize(source string) string {
	source = strings.TrimSpace(source)
	if source == "" || source == types.UnknownActivity {
		return types.UnknownActivity
	}

	t, ok := n.parse(source)
	if !ok {
		return InvalidDate
	}

	return n.Format(t)
}

// Format renders an instant in the target zone using DisplayLayout.
func (n *Normalizer) Format(t time.Time) string {
	return t.In(n.target).Format(DisplayLayout) + " " + n.targetLabel
}

// ParseDisplay is the inverse of Format.
func (n *Normalizer) ParseDisplay(display string) (time.Time, error) {
	value := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(display), n.targetLabel))
	return time.ParseInLocation(DisplayLayout, value, n.target)
}

func (n *Normalizer) parse(source string) (time.Time, bool) {
	fields := strings.Fields(source)
	if len(fields) > 1 && isZoneLabel(fields[len(fields)-1]) {
		fields = fields[:len(fields)-1]
	}
	cleaned := ordinalSuffix.ReplaceAllString(strings.Join(fields, " "), "$1")

	for _, layout := range sourceLayouts {
		t, err := time.ParseInLocation(layout, cleaned, n.source)
		if err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// isZoneLabel reports whether the token looks like "EST", "UTC" or "GMT", as
// opposed to the meridiem of a 12-hour clock
func isZoneLabel(token string) bool {
	upper := strings.ToUpper(token)
	if upper == "AM" || upper == "PM" {
		return false
	}
	if len(token) < 2 || len(token) > 5 {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
