package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
	"github.com/JacobBurge13/sounders-depth-chart/internal/stats"
)

// Artifact file names the ingestion pipeline writes into the data directory.
const (
	playersFile = "players.json"
	eventsFile  = "events.json"
	matchesFile = "matches.json"
	rosterFile  = "roster.json"
)

// rosterTable is the on-disk roster shape: per team context, player name to
// classification.
type rosterTable map[models.TeamContext]map[string]models.RosterEntry

// Load reads the four JSON artifacts from dir and assembles an immutable
// snapshot: legacy event-type spellings are normalized, total actions
// derived, percentiles computed against the loaded roster set and lookup
// indexes built. A missing or structurally invalid players or events file is
// fatal; the match index and roster table may be absent (the dashboard then
// runs without fixture labels or roster classification).
func Load(dir string) (*Snapshot, error) {
	snap := &Snapshot{
		Version:  uuid.NewString(),
		LoadedAt: time.Now().UTC(),
		Roster:   make(map[models.TeamContext][]models.RosterEntry),
	}

	if err := readJSON(filepath.Join(dir, playersFile), &snap.Players); err != nil {
		return nil, fmt.Errorf("loading players: %w", err)
	}
	if err := readJSON(filepath.Join(dir, eventsFile), &snap.Events); err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}
	if err := readJSON(filepath.Join(dir, matchesFile), &snap.Matches); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading matches: %w", err)
		}
	}

	var roster rosterTable
	if err := readJSON(filepath.Join(dir, rosterFile), &roster); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading roster: %w", err)
		}
	}
	for team, byName := range roster {
		entries := make([]models.RosterEntry, 0, len(byName))
		for name, entry := range byName {
			entry.Name = name
			if entry.Designation == "" {
				entry.Designation = models.DesignationSEN
			}
			entries = append(entries, entry)
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
		snap.Roster[team] = entries
	}

	normalizeEvents(snap.Events)
	stats.ComputePercentiles(snap.Players)
	snap.index()

	return snap, nil
}

func readJSON(path string, dest interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return nil
}

// normalizeEvents maps legacy provider spellings onto the closed event-type
// enum. The upstream feed historically labeled missed shots "MissedShots".
func normalizeEvents(events []models.Event) {
	for i := range events {
		if events[i].Type == "MissedShots" {
			events[i].Type = models.EventMissedShot
		}
	}
}
