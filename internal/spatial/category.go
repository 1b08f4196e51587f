// Package spatial filters the event log into the point and trajectory sets
// behind the heat-map and trajectory views.
package spatial

import (
	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
	"github.com/JacobBurge13/sounders-depth-chart/internal/stats"
)

// Category is one of the closed set of event groupings a view can request:
// the coarse per-tab modes plus the finer stat-click categories.
type Category string

const (
	// Coarse tab modes.
	CategoryOverview  Category = "Overview"
	CategoryPass      Category = "Pass"
	CategoryCarry     Category = "Carry"
	CategoryReception Category = "Reception"
	CategoryShot      Category = "Shot"
	CategoryDefensive Category = "Defensive"

	// Stat-click categories.
	CategoryAllPasses            Category = "all_passes"
	CategoryKeyPasses            Category = "key_passes"
	CategoryAssists              Category = "assists"
	CategoryProgressivePasses    Category = "progressive_passes"
	CategoryFinalThirdPasses     Category = "final_third_passes"
	CategoryDeepPasses           Category = "deep_passes"
	CategoryAllCarries           Category = "all_carries"
	CategoryProgressiveCarries   Category = "progressive_carries"
	CategoryFinalThirdCarries    Category = "final_third_carries"
	CategoryDeepCarries          Category = "deep_carries"
	CategoryAllReceptions        Category = "all_receptions"
	CategoryFinalThirdReceptions Category = "final_third_receptions"
	CategoryDeepReceptions       Category = "deep_receptions"
	CategoryAllShots             Category = "all_shots"
	CategoryShotsOnTarget        Category = "shots_on_target"
	CategoryGoals                Category = "goals"
	CategoryAllDefensive         Category = "all_defensive"
	CategoryTackles              Category = "tackles"
	CategoryInterceptions        Category = "interceptions"
	CategoryClearances           Category = "clearances"
	CategoryRecoveries           Category = "recoveries"
)

// categorySpec carries a category's event-type set, extra predicate, and
// trajectory capability as data. Adding a category means adding a spec here,
// not another string comparison somewhere else.
type categorySpec struct {
	types      []models.EventType
	match      func(e *models.Event) bool
	trajectory bool
	title      string
}

func anyEvent(*models.Event) bool { return true }

var categorySpecs = map[Category]categorySpec{
	CategoryOverview:  {types: models.AllEventTypes, match: anyEvent, title: "All Actions"},
	CategoryPass:      {types: []models.EventType{models.EventPass}, match: anyEvent, trajectory: true, title: "Passes"},
	CategoryCarry:     {types: []models.EventType{models.EventCarry}, match: anyEvent, trajectory: true, title: "Carries"},
	CategoryReception: {types: []models.EventType{models.EventReception}, match: anyEvent, title: "Receptions"},
	CategoryShot:      {types: models.ShotEventTypes, match: anyEvent, title: "Shots"},
	CategoryDefensive: {types: models.DefensiveEventTypes, match: anyEvent, title: "Defensive Actions"},

	CategoryAllPasses: {types: []models.EventType{models.EventPass}, match: anyEvent, trajectory: true, title: "All Passes"},
	CategoryKeyPasses: {types: []models.EventType{models.EventPass},
		match: func(e *models.Event) bool { return e.IsKeyPass }, trajectory: true, title: "Key Passes"},
	// No per-event assist flag exists; key passes are the closest proxy.
	CategoryAssists: {types: []models.EventType{models.EventPass},
		match: func(e *models.Event) bool { return e.IsKeyPass }, trajectory: true, title: "Assists"},
	CategoryProgressivePasses: {types: []models.EventType{models.EventPass},
		match: func(e *models.Event) bool { return e.IsProgressivePass }, trajectory: true, title: "Progressive Passes"},
	CategoryFinalThirdPasses: {types: []models.EventType{models.EventPass},
		match: func(e *models.Event) bool { return e.IsFinalThirdPass }, trajectory: true, title: "Final Third Passes"},
	CategoryDeepPasses: {types: []models.EventType{models.EventPass},
		match: func(e *models.Event) bool { return e.IsDeepPass }, trajectory: true, title: "Deep Passes"},

	CategoryAllCarries: {types: []models.EventType{models.EventCarry}, match: anyEvent, trajectory: true, title: "Carries"},
	CategoryProgressiveCarries: {types: []models.EventType{models.EventCarry},
		match: func(e *models.Event) bool { return e.IsProgressiveCarry }, trajectory: true, title: "Progressive Carries"},
	CategoryFinalThirdCarries: {types: []models.EventType{models.EventCarry},
		match: func(e *models.Event) bool { return e.IsFinalThirdCarry }, trajectory: true, title: "Final Third Carries"},
	CategoryDeepCarries: {types: []models.EventType{models.EventCarry},
		match: func(e *models.Event) bool { return e.IsDeepCarry }, trajectory: true, title: "Deep Carries"},

	CategoryAllReceptions: {types: []models.EventType{models.EventReception}, match: anyEvent, title: "Receptions"},
	CategoryFinalThirdReceptions: {types: []models.EventType{models.EventReception},
		match: func(e *models.Event) bool { return e.X != nil && *e.X >= stats.FinalThirdX }, title: "Final Third Receptions"},
	CategoryDeepReceptions: {types: []models.EventType{models.EventReception},
		match: func(e *models.Event) bool { return e.X != nil && *e.X >= stats.DeepZoneX }, title: "Deep Receptions"},

	CategoryAllShots:      {types: models.ShotEventTypes, match: anyEvent, title: "All Shots"},
	CategoryShotsOnTarget: {types: []models.EventType{models.EventSavedShot, models.EventGoal}, match: anyEvent, title: "Shots on Target"},
	CategoryGoals:         {types: []models.EventType{models.EventGoal}, match: anyEvent, title: "Goals"},

	CategoryAllDefensive:  {types: models.DefensiveEventTypes, match: anyEvent, title: "Defensive Actions"},
	CategoryTackles:       {types: []models.EventType{models.EventTackle}, match: anyEvent, title: "Tackles"},
	CategoryInterceptions: {types: []models.EventType{models.EventInterception}, match: anyEvent, title: "Interceptions"},
	CategoryClearances:    {types: []models.EventType{models.EventClearance}, match: anyEvent, title: "Clearances"},
	CategoryRecoveries:    {types: []models.EventType{models.EventBallRecovery}, match: anyEvent, title: "Ball Recoveries"},
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categorySpecs[c]
	return ok
}

// Trajectory reports whether the category pairs origins with destinations.
func (c Category) Trajectory() bool {
	return categorySpecs[c].trajectory
}

// Title is the category's display label.
func (c Category) Title() string {
	return categorySpecs[c].title
}

func (s categorySpec) hasType(t models.EventType) bool {
	for _, want := range s.types {
		if t == want {
			return true
		}
	}
	return false
}
