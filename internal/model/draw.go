package model

import (
	"sort"
	"time"
)

// Draw is one observed lottery result for one game/edition on one date.
// A Draw is built once per scraped card and never mutated afterwards.
type Draw struct {
	Provider   string   `json:"provider"`
	Game       string   `json:"game"`
	Edition    *string  `json:"edition"`
	Date       string   `json:"date"` // YYYY-MM-DD in the provider's local zone
	Numbers    []string `json:"numbers"`
	ProviderID string   `json:"provider_id"`
	GameID     string   `json:"game_id"`

	// Optional refinements; supplementary to Date, never a substitute.
	Time     *string `json:"time"`      // "HH:MM" provider-local
	DateTime *string `json:"date_time"` // ISO-8601 with offset
}

// NewDraw builds a Draw, deriving provider_id/game_id via Slugify and
// normalizing numbers via FormatNumbers.
func NewDraw(provider, game string, edition *string, date string, numbers []string) Draw {
	return Draw{
		Provider:   provider,
		ProviderID: Slugify(provider),
		Game:       game,
		GameID:     Slugify(game),
		Edition:    edition,
		Date:       date,
		Numbers:    FormatNumbers(numbers),
	}
}

// Payload is the published artifact for one run.
type Payload struct {
	Source      string `json:"source"`
	LastUpdated string `json:"last_updated"`
	Draws       []Draw `json:"draws"`
}

// NowISO renders the payload timestamp: UTC, RFC 3339, "Z" suffix.
func NowISO(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}

// sortKey is the canonical ordering tuple. Absent edition/time compare as
// the empty string, so a draw without an edition orders before its
// editioned siblings.
func (d Draw) sortKey() [5]string {
	return [5]string{d.ProviderID, d.GameID, strOrEmpty(d.Edition), d.Date, strOrEmpty(d.Time)}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// SortDraws orders draws by (provider_id, game_id, edition, date, time)
// ascending. The ordering is what keeps diffs between runs minimal.
func SortDraws(draws []Draw) {
	sort.SliceStable(draws, func(i, j int) bool {
		a, b := draws[i].sortKey(), draws[j].sortKey()
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
}
