// Package stats reduces the immutable event log into per-player stat records
// and annotates roster-wide percentile ranks.
package stats

import (
	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
)

// Aggregate reduces the event collection into a GameStats record for one
// player, optionally restricted to a single match. It is a pure function of
// its inputs. A nil result means the player has no matching events, which is
// distinct from a record full of zeros: it lets the caller tell "didn't play"
// apart from "played but did nothing".
//
// With an empty matchID the reduction spans the full season; GP then counts
// the distinct matches the player appears in, while GS and Mins stay zero
// because they are not derivable from events. The per-game path reports the
// conventional gp=1, gs=1, mins=90.
func Aggregate(events []models.Event, playerID, matchID string) *models.GameStats {
	var own []models.Event
	for _, e := range events {
		if e.PlayerID != playerID {
			continue
		}
		if matchID != "" && e.MatchID != matchID {
			continue
		}
		own = append(own, e)
	}
	if len(own) == 0 {
		return nil
	}

	gs := &models.GameStats{}
	seenMatches := make(map[string]struct{})

	for _, e := range own {
		seenMatches[e.MatchID] = struct{}{}

		if e.IsShot {
			gs.Shots++
			gs.XG += e.ShotXG()
			gs.PVShooting += e.PV()
			if !e.IsBlocked && (e.Type == models.EventSavedShot || e.Type == models.EventGoal) {
				gs.ShotsOnTarget++
			}
		}
		if e.IsGoal {
			gs.Goals++
		}

		switch e.Type {
		case models.EventPass:
			gs.TotalPasses++
			gs.XGAssisted += e.PassXGAssisted()
			gs.PVPassing += e.PV()
			if e.Outcome == models.OutcomeSuccessful {
				gs.Passes++
			}
			if e.IsKeyPass {
				gs.KeyPasses++
			}
			if e.IsProgressivePass {
				gs.ProgressivePasses++
			}
			if e.IsFinalThirdPass {
				gs.FinalThirdPasses++
			}
			if e.IsDeepPass {
				gs.DeepPasses++
			}

		case models.EventCarry:
			gs.Carries++
			gs.PVCarrying += e.PV()
			if e.IsProgressiveCarry {
				gs.ProgressiveCarries++
			}
			if e.IsFinalThirdCarry {
				gs.FinalThirdCarries++
			}
			if e.IsDeepCarry {
				gs.DeepCarries++
			}

		case models.EventReception:
			gs.Receptions++
			gs.PVReceiving += e.PV()
			// Reception zones are coordinate thresholds, not flags. The
			// thresholds are exact values in the 0-100 frame.
			if e.X != nil && *e.X >= FinalThirdX {
				gs.FinalThirdReceptions++
			}
			if e.X != nil && *e.X >= DeepZoneX {
				gs.DeepReceptions++
			}

		case models.EventTackle:
			gs.Tackles++
			gs.PVDefending += e.PV()
		case models.EventInterception:
			gs.Interceptions++
			gs.PVDefending += e.PV()
		case models.EventClearance:
			gs.Clearances++
			gs.PVDefending += e.PV()
		case models.EventBallRecovery:
			gs.BallRecoveries++
			gs.PVDefending += e.PV()
		}
	}

	gs.DefensiveActions = gs.Tackles + gs.Interceptions + gs.Clearances + gs.BallRecoveries
	gs.PVTotal = gs.PVPassing + gs.PVCarrying + gs.PVReceiving + gs.PVDefending + gs.PVShooting

	// Assists need the teammates' events too, so they are reconciled over
	// the full collection rather than the player's own slice.
	gs.Assists = CountAssists(events, matchID)[playerID]

	if matchID != "" {
		gs.GP = 1
		gs.GS = 1
		gs.Mins = 90
	} else {
		gs.GP = len(seenMatches)
	}

	return gs
}

// Zone thresholds in the normalized 0-100 pitch frame.
const (
	FinalThirdX = 66.67
	DeepZoneX   = 83.33
)
