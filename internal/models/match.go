package models

// Match is one fixture, used to group and label events. Per-game stats are
// always recomputed from the event log filtered to the match, never stored.
type Match struct {
	MatchID  string `json:"match_id"`
	Opponent string `json:"opponent"`
	Venue    Venue  `json:"venue"`
	Date     string `json:"date"` // ISO 8601, sortable lexicographically
}

// Venue is home or away.
type Venue string

const (
	VenueHome Venue = "home"
	VenueAway Venue = "away"
)
