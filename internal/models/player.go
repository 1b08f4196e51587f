package models

// PlayerSeasonStats is one player's cumulative season record as deposited by
// the ingestion pipeline, plus fields derived at load time (TotalActions and
// the percentile maps). Minutes, games played and total xG are ground truth
// from the external stats provider, not derived from the event log.
type PlayerSeasonStats struct {
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Position    string  `json:"position,omitempty"`
	Age         int     `json:"age,omitempty"`
	ShirtNo     int     `json:"shirt_no,omitempty"`
	Nationality string  `json:"nationality,omitempty"`
	BaseSalary  float64 `json:"base_salary,omitempty"`
	PhotoURL    string  `json:"photo_url,omitempty"`

	Mins    float64 `json:"mins"`
	GP      int     `json:"gp"`
	GS      int     `json:"gs"`
	Matches int     `json:"matches"`

	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	Shots         int `json:"shots"`
	ShotsOnTarget int `json:"shots_on_target"`

	Passes            int     `json:"passes"`
	TotalPasses       int     `json:"total_passes"`
	KeyPasses         int     `json:"key_passes"`
	ProgressivePasses int     `json:"progressive_passes"`
	FinalThirdPasses  int     `json:"final_third_passes"`
	DeepPasses        int     `json:"deep_passes"`
	XGAssisted        float64 `json:"xg_assisted"`

	Carries            int `json:"carries"`
	ProgressiveCarries int `json:"progressive_carries"`
	FinalThirdCarries  int `json:"final_third_carries"`
	DeepCarries        int `json:"deep_carries"`

	Receptions           int `json:"receptions"`
	FinalThirdReceptions int `json:"final_third_receptions"`
	DeepReceptions       int `json:"deep_receptions"`

	Tackles          int `json:"tackles"`
	Interceptions    int `json:"interceptions"`
	Clearances       int `json:"clearances"`
	BallRecoveries   int `json:"ball_recoveries"`
	DefensiveActions int `json:"defensive_actions"`

	PVTotal     float64 `json:"pv_total"`
	PVPassing   float64 `json:"pv_passing"`
	PVCarrying  float64 `json:"pv_carrying"`
	PVReceiving float64 `json:"pv_receiving"`
	PVDefending float64 `json:"pv_defending"`
	PVShooting  float64 `json:"pv_shooting"`

	TotalXG float64 `json:"total_xg"`

	// TotalActions = passes + carries + defensive actions, derived before
	// the percentile pass runs.
	TotalActions int `json:"total_actions"`

	// Percentiles and Per90Percentiles are relative to the roster snapshot
	// the player was loaded with. Keyed by stat name, values 0-100.
	Percentiles      map[string]int `json:"percentiles,omitempty"`
	Per90Percentiles map[string]int `json:"per90_percentiles,omitempty"`
}

// GameStats is the output of the event aggregator: either one match's stats
// for a player, or (when no match filter is applied) the season reduction of
// the event log. GS and Mins cannot be derived from events; the per-game
// path reports the 1-start/90-minute convention.
type GameStats struct {
	GP   int     `json:"gp"`
	GS   int     `json:"gs"`
	Mins float64 `json:"mins"`

	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shots_on_target"`
	XG            float64 `json:"xg"`

	Passes            int     `json:"passes"`
	TotalPasses       int     `json:"total_passes"`
	KeyPasses         int     `json:"key_passes"`
	ProgressivePasses int     `json:"progressive_passes"`
	FinalThirdPasses  int     `json:"final_third_passes"`
	DeepPasses        int     `json:"deep_passes"`
	XGAssisted        float64 `json:"xg_assisted"`

	Carries            int `json:"carries"`
	ProgressiveCarries int `json:"progressive_carries"`
	FinalThirdCarries  int `json:"final_third_carries"`
	DeepCarries        int `json:"deep_carries"`

	Receptions           int `json:"receptions"`
	FinalThirdReceptions int `json:"final_third_receptions"`
	DeepReceptions       int `json:"deep_receptions"`

	Tackles          int `json:"tackles"`
	Interceptions    int `json:"interceptions"`
	Clearances       int `json:"clearances"`
	BallRecoveries   int `json:"ball_recoveries"`
	DefensiveActions int `json:"defensive_actions"`

	PVTotal     float64 `json:"pv_total"`
	PVPassing   float64 `json:"pv_passing"`
	PVCarrying  float64 `json:"pv_carrying"`
	PVReceiving float64 `json:"pv_receiving"`
	PVDefending float64 `json:"pv_defending"`
	PVShooting  float64 `json:"pv_shooting"`
}
