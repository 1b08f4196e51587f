package models

// EventType identifies one kind of on-pitch action.
type EventType string

const (
	EventPass         EventType = "Pass"
	EventCarry        EventType = "Carry"
	EventReception    EventType = "Reception"
	EventShot         EventType = "Shot"
	EventMissedShot   EventType = "MissedShot"
	EventSavedShot    EventType = "SavedShot"
	EventShotOnPost   EventType = "ShotOnPost"
	EventGoal         EventType = "Goal"
	EventTackle       EventType = "Tackle"
	EventInterception EventType = "Interception"
	EventClearance    EventType = "Clearance"
	EventBallRecovery EventType = "BallRecovery"
)

// AllEventTypes lists every recognized event type.
var AllEventTypes = []EventType{
	EventPass, EventCarry, EventReception,
	EventShot, EventMissedShot, EventSavedShot, EventShotOnPost, EventGoal,
	EventTackle, EventInterception, EventClearance, EventBallRecovery,
}

// ShotEventTypes are the shot-class types, including goals.
var ShotEventTypes = []EventType{
	EventShot, EventMissedShot, EventSavedShot, EventShotOnPost, EventGoal,
}

// DefensiveEventTypes are the four defensive-action types.
var DefensiveEventTypes = []EventType{
	EventTackle, EventInterception, EventClearance, EventBallRecovery,
}

// IsShotClass reports whether the type belongs to the shot-class family.
func (t EventType) IsShotClass() bool {
	switch t {
	case EventShot, EventMissedShot, EventSavedShot, EventShotOnPost, EventGoal:
		return true
	}
	return false
}

// IsDefensive reports whether the type is a defensive action.
func (t EventType) IsDefensive() bool {
	switch t {
	case EventTackle, EventInterception, EventClearance, EventBallRecovery:
		return true
	}
	return false
}

// Outcome is the recorded result of an event. Unknown outcomes are the
// empty string.
type Outcome string

const (
	OutcomeSuccessful   Outcome = "Successful"
	OutcomeUnsuccessful Outcome = "Unsuccessful"
	OutcomeUnknown      Outcome = ""
)

// Event is one observed on-pitch action. Coordinates live in a normalized
// 0-100 pitch frame; destination coordinates are present only for
// trajectory-class types (Pass, Carry). Events are immutable after load.
type Event struct {
	PlayerID string    `json:"player_id"`
	MatchID  string    `json:"match_id"`
	Type     EventType `json:"type"`
	Outcome  Outcome   `json:"outcome,omitempty"`

	Minute int `json:"minute"`
	Second int `json:"second"`

	X    *float64 `json:"x"`
	Y    *float64 `json:"y"`
	EndX *float64 `json:"end_x,omitempty"`
	EndY *float64 `json:"end_y,omitempty"`

	IsKeyPass          bool `json:"is_keypass,omitempty"`
	IsGoal             bool `json:"is_goal,omitempty"`
	IsShot             bool `json:"is_shot,omitempty"`
	IsBlocked          bool `json:"is_blocked,omitempty"`
	IsProgressivePass  bool `json:"is_progressive_pass,omitempty"`
	IsFinalThirdPass   bool `json:"is_final_third_pass,omitempty"`
	IsDeepPass         bool `json:"is_deep_pass,omitempty"`
	IsProgressiveCarry bool `json:"is_progressive_carry,omitempty"`
	IsFinalThirdCarry  bool `json:"is_final_third_carry,omitempty"`
	IsDeepCarry        bool `json:"is_deep_carry,omitempty"`
	IsAssisted         bool `json:"is_assisted,omitempty"`
	IsShotAssist       bool `json:"is_shotassist,omitempty"`

	PVAdded    *float64 `json:"pv_added,omitempty"`
	XG         *float64 `json:"xg,omitempty"`
	XGAssisted *float64 `json:"xg_assisted,omitempty"`
}

// HasOrigin reports whether both origin coordinates are present.
func (e *Event) HasOrigin() bool {
	return e.X != nil && e.Y != nil
}

// HasDestination reports whether both destination coordinates are present.
func (e *Event) HasDestination() bool {
	return e.EndX != nil && e.EndY != nil
}

// PV returns the possession-value contribution, treating missing values as 0.
func (e *Event) PV() float64 {
	if e.PVAdded == nil {
		return 0
	}
	return *e.PVAdded
}

// ShotXG returns the xG of a shot event, treating missing values as 0.
func (e *Event) ShotXG() float64 {
	if e.XG == nil {
		return 0
	}
	return *e.XG
}

// PassXGAssisted returns the xG assisted of a pass, treating missing values as 0.
func (e *Event) PassXGAssisted() float64 {
	if e.XGAssisted == nil {
		return 0
	}
	return *e.XGAssisted
}
