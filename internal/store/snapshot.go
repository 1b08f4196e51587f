// Package store loads the ingestion pipeline's JSON artifacts into an
// immutable in-memory snapshot and keeps it fresh via scheduled reloads.
package store

import (
	"sort"
	"time"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
	"github.com/JacobBurge13/sounders-depth-chart/internal/stats"
)

// Snapshot is one immutable load of the roster, season stats, event log and
// match index. Percentiles are computed against the snapshot's own roster
// set, so a new roster always means a new snapshot; nothing here is mutated
// after Load returns.
type Snapshot struct {
	Version  string    `json:"version"`
	LoadedAt time.Time `json:"loaded_at"`

	Players []*models.PlayerSeasonStats
	Events  []models.Event
	Matches []models.Match
	Roster  map[models.TeamContext][]models.RosterEntry

	playerByID   map[string]*models.PlayerSeasonStats
	playerByName map[string]*models.PlayerSeasonStats
	matchByID    map[string]*models.Match
}

func (s *Snapshot) index() {
	s.playerByID = make(map[string]*models.PlayerSeasonStats, len(s.Players))
	s.playerByName = make(map[string]*models.PlayerSeasonStats, len(s.Players))
	for _, p := range s.Players {
		s.playerByID[p.PlayerID] = p
		s.playerByName[p.Name] = p
	}
	s.matchByID = make(map[string]*models.Match, len(s.Matches))
	for i := range s.Matches {
		s.matchByID[s.Matches[i].MatchID] = &s.Matches[i]
	}
}

// PlayerByID returns the player with the given id.
func (s *Snapshot) PlayerByID(id string) (*models.PlayerSeasonStats, bool) {
	p, ok := s.playerByID[id]
	return p, ok
}

// PlayerByName returns the player with the given exact name. Identity
// resolution happens upstream; there is deliberately no fuzzy matching here.
func (s *Snapshot) PlayerByName(name string) (*models.PlayerSeasonStats, bool) {
	p, ok := s.playerByName[name]
	return p, ok
}

// MatchByID returns the match with the given id.
func (s *Snapshot) MatchByID(id string) (*models.Match, bool) {
	m, ok := s.matchByID[id]
	return m, ok
}

// MatchesForPlayer lists the matches a player appeared in, newest first.
func (s *Snapshot) MatchesForPlayer(playerID string) []models.Match {
	seen := make(map[string]struct{})
	var matches []models.Match
	for _, e := range s.Events {
		if e.PlayerID != playerID || e.MatchID == "" {
			continue
		}
		if _, dup := seen[e.MatchID]; dup {
			continue
		}
		seen[e.MatchID] = struct{}{}
		if m, ok := s.matchByID[e.MatchID]; ok {
			matches = append(matches, *m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date > matches[j].Date
	})
	return matches
}

// AggregateStats reduces the snapshot's event log for one player, optionally
// scoped to a match. Nil means no matching events.
func (s *Snapshot) AggregateStats(playerID, matchID string) *models.GameStats {
	return stats.Aggregate(s.Events, playerID, matchID)
}

// RosterFor returns the roster entries for a team context.
func (s *Snapshot) RosterFor(team models.TeamContext) []models.RosterEntry {
	return s.Roster[team]
}
