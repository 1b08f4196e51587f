package stats

import (
	"sort"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
)

// CountAssists credits assists by ordered traversal of each match's events:
// for every event flagged as a shot assist, the next shot-class event in the
// same match is inspected, and if that shot is an assisted goal the assist
// goes to the shot-assist's player. Intervening non-shot events (from any
// player) are skipped over, so this is a heuristic rather than ground truth.
//
// With a non-empty matchID only that match is reconciled. The returned map
// holds counts per player id; players with no assists are absent.
func CountAssists(events []models.Event, matchID string) map[string]int {
	byMatch := make(map[string][]models.Event)
	for _, e := range events {
		if matchID != "" && e.MatchID != matchID {
			continue
		}
		byMatch[e.MatchID] = append(byMatch[e.MatchID], e)
	}

	assists := make(map[string]int)
	for _, matchEvents := range byMatch {
		// Non-decreasing (minute, second) order; stable so same-second
		// events keep source order.
		sort.SliceStable(matchEvents, func(i, j int) bool {
			if matchEvents[i].Minute != matchEvents[j].Minute {
				return matchEvents[i].Minute < matchEvents[j].Minute
			}
			return matchEvents[i].Second < matchEvents[j].Second
		})

		for i, e := range matchEvents {
			if !e.IsShotAssist {
				continue
			}
			for j := i + 1; j < len(matchEvents); j++ {
				next := matchEvents[j]
				if !next.Type.IsShotClass() {
					continue
				}
				if (next.Type == models.EventGoal || next.IsGoal) && next.IsAssisted {
					assists[e.PlayerID]++
				}
				break // only the next shot counts
			}
		}
	}

	return assists
}
