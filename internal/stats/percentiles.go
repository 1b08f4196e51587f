package stats

import (
	"math"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
)

// statGetters maps each percentiled stat name to its accessor. The set is
// closed: a new stat is a new entry here plus a slot in the ordered lists
// below.
var statGetters = map[string]func(p *models.PlayerSeasonStats) float64{
	"goals":                  func(p *models.PlayerSeasonStats) float64 { return float64(p.Goals) },
	"assists":                func(p *models.PlayerSeasonStats) float64 { return float64(p.Assists) },
	"shots":                  func(p *models.PlayerSeasonStats) float64 { return float64(p.Shots) },
	"shots_on_target":        func(p *models.PlayerSeasonStats) float64 { return float64(p.ShotsOnTarget) },
	"passes":                 func(p *models.PlayerSeasonStats) float64 { return float64(p.Passes) },
	"total_passes":           func(p *models.PlayerSeasonStats) float64 { return float64(p.TotalPasses) },
	"key_passes":             func(p *models.PlayerSeasonStats) float64 { return float64(p.KeyPasses) },
	"defensive_actions":      func(p *models.PlayerSeasonStats) float64 { return float64(p.DefensiveActions) },
	"tackles":                func(p *models.PlayerSeasonStats) float64 { return float64(p.Tackles) },
	"interceptions":          func(p *models.PlayerSeasonStats) float64 { return float64(p.Interceptions) },
	"clearances":             func(p *models.PlayerSeasonStats) float64 { return float64(p.Clearances) },
	"ball_recoveries":        func(p *models.PlayerSeasonStats) float64 { return float64(p.BallRecoveries) },
	"carries":                func(p *models.PlayerSeasonStats) float64 { return float64(p.Carries) },
	"pv_total":               func(p *models.PlayerSeasonStats) float64 { return p.PVTotal },
	"pv_passing":             func(p *models.PlayerSeasonStats) float64 { return p.PVPassing },
	"pv_receiving":           func(p *models.PlayerSeasonStats) float64 { return p.PVReceiving },
	"pv_carrying":            func(p *models.PlayerSeasonStats) float64 { return p.PVCarrying },
	"pv_shooting":            func(p *models.PlayerSeasonStats) float64 { return p.PVShooting },
	"pv_defending":           func(p *models.PlayerSeasonStats) float64 { return p.PVDefending },
	"matches":                func(p *models.PlayerSeasonStats) float64 { return float64(p.Matches) },
	"mins":                   func(p *models.PlayerSeasonStats) float64 { return p.Mins },
	"gp":                     func(p *models.PlayerSeasonStats) float64 { return float64(p.GP) },
	"gs":                     func(p *models.PlayerSeasonStats) float64 { return float64(p.GS) },
	"progressive_passes":     func(p *models.PlayerSeasonStats) float64 { return float64(p.ProgressivePasses) },
	"final_third_passes":     func(p *models.PlayerSeasonStats) float64 { return float64(p.FinalThirdPasses) },
	"deep_passes":            func(p *models.PlayerSeasonStats) float64 { return float64(p.DeepPasses) },
	"xg_assisted":            func(p *models.PlayerSeasonStats) float64 { return p.XGAssisted },
	"final_third_carries":    func(p *models.PlayerSeasonStats) float64 { return float64(p.FinalThirdCarries) },
	"deep_carries":           func(p *models.PlayerSeasonStats) float64 { return float64(p.DeepCarries) },
	"progressive_carries":    func(p *models.PlayerSeasonStats) float64 { return float64(p.ProgressiveCarries) },
	"receptions":             func(p *models.PlayerSeasonStats) float64 { return float64(p.Receptions) },
	"final_third_receptions": func(p *models.PlayerSeasonStats) float64 { return float64(p.FinalThirdReceptions) },
	"deep_receptions":        func(p *models.PlayerSeasonStats) float64 { return float64(p.DeepReceptions) },
	"total_actions":          func(p *models.PlayerSeasonStats) float64 { return float64(p.TotalActions) },
	"total_xg":               func(p *models.PlayerSeasonStats) float64 { return p.TotalXG },
}

// RawPercentileStats is the fixed, ordered list of raw-count stats that get a
// percentile field.
var RawPercentileStats = []string{
	"goals", "assists", "shots", "shots_on_target", "passes", "total_passes",
	"key_passes", "defensive_actions", "tackles", "interceptions", "clearances",
	"ball_recoveries", "carries", "pv_total", "pv_passing", "pv_receiving",
	"pv_carrying", "pv_shooting", "pv_defending", "matches", "mins", "gp", "gs",
	"progressive_passes", "final_third_passes", "deep_passes", "xg_assisted",
	"final_third_carries", "deep_carries", "progressive_carries",
	"receptions", "final_third_receptions", "deep_receptions", "total_actions",
	"total_xg",
}

// Per90PercentileStats is the fixed list of stats that additionally get a
// per-90-minutes percentile.
var Per90PercentileStats = []string{
	"pv_total", "pv_passing", "pv_carrying", "pv_receiving", "pv_defending", "pv_shooting",
	"passes", "total_passes", "key_passes", "progressive_passes", "final_third_passes", "deep_passes",
	"carries", "final_third_carries", "deep_carries", "progressive_carries",
	"receptions", "final_third_receptions", "deep_receptions",
	"shots", "shots_on_target", "goals",
	"defensive_actions", "tackles", "interceptions", "clearances", "ball_recoveries",
	"xg_assisted", "total_actions", "total_xg",
}

// MinMinutesForPer90 is the playing-time floor for per-90 normalization.
// Players below it keep a per-90 value of 0 but stay in the distribution,
// so they still weigh down everyone else's relative rank.
const MinMinutesForPer90 = 90

// ComputePercentiles annotates every player with percentile ranks for the
// fixed raw and per-90 stat lists, relative to the given roster set. It must
// be rerun whenever the roster set changes; percentile maps from a previous
// run are discarded, which makes repeated application idempotent. Stats whose
// values are all zero across the roster are skipped entirely.
//
// TotalActions is derived here before ranking because it is itself one of the
// percentiled stats.
func ComputePercentiles(players []*models.PlayerSeasonStats) []*models.PlayerSeasonStats {
	for _, p := range players {
		p.TotalActions = p.Passes + p.Carries + p.DefensiveActions
		p.Percentiles = make(map[string]int)
		p.Per90Percentiles = make(map[string]int)
	}
	if len(players) == 0 {
		return players
	}

	for _, stat := range RawPercentileStats {
		get := statGetters[stat]
		values := make([]float64, len(players))
		for i, p := range players {
			values[i] = get(p)
		}
		if allZero(values) {
			continue
		}
		for i, p := range players {
			p.Percentiles[stat] = percentileOfScore(values, values[i])
		}
	}

	for _, stat := range Per90PercentileStats {
		get := statGetters[stat]
		values := make([]float64, len(players))
		for i, p := range players {
			if p.Mins >= MinMinutesForPer90 {
				values[i] = get(p) / (p.Mins / 90)
			}
		}
		if allZero(values) {
			continue
		}
		for i, p := range players {
			p.Per90Percentiles[stat] = percentileOfScore(values, values[i])
		}
	}

	return players
}

// percentileOfScore returns the rank-convention percentile of score within
// values: the share of values less than or equal to score, scaled to 0-100
// and rounded. Ties share the percentile of their rank position; nothing is
// interpolated.
func percentileOfScore(values []float64, score float64) int {
	n := 0
	for _, v := range values {
		if v <= score {
			n++
		}
	}
	return int(math.Round(100 * float64(n) / float64(len(values))))
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}
