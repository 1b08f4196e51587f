package spatial

import (
	"errors"
	"fmt"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
)

// ErrNoData reports that a valid query matched no events. Callers render a
// "no data" message instead of an empty plot, so this is distinct from an
// empty-but-valid result and from an unknown id.
var ErrNoData = errors.New("no matching events")

// LocationMode selects which end of a trajectory-class event is plotted.
// It only changes behavior for Pass/Carry categories.
type LocationMode string

const (
	ModeOrigin      LocationMode = "origin"
	ModeDestination LocationMode = "destination"
)

// Point is one plotted location in the 0-100 frame.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trajectory is one origin/destination pair. Successful mirrors the event
// outcome so the renderer can grey out failed actions.
type Trajectory struct {
	Start      Point `json:"start"`
	End        Point `json:"end"`
	Successful bool  `json:"successful"`
}

// Result is the filtered event subset for one spatial query. Events, Points
// and Trajectories all preserve source order: overlapping points render with
// density-dependent transparency, so a given view must reproduce the same
// ordering across re-renders.
type Result struct {
	Category     Category       `json:"category"`
	Title        string         `json:"title"`
	Mode         LocationMode   `json:"mode"`
	Events       []models.Event `json:"events"`
	Points       []Point        `json:"points"`
	Trajectories []Trajectory   `json:"trajectories,omitempty"`
}

// Query filters the event collection for one player and category, optionally
// restricted to a match.
//
// Events missing origin coordinates never qualify. Missing destination
// coordinates exclude an event only in destination mode; in origin mode the
// event still contributes its origin point and is merely skipped from the
// trajectory pairs.
func Query(events []models.Event, playerID string, category Category, mode LocationMode, matchID string) (*Result, error) {
	spec, ok := categorySpecs[category]
	if !ok {
		return nil, fmt.Errorf("unknown spatial category %q", category)
	}
	if mode == "" {
		mode = ModeOrigin
	}
	if mode != ModeOrigin && mode != ModeDestination {
		return nil, fmt.Errorf("unknown location mode %q", mode)
	}
	if mode == ModeDestination && !spec.trajectory {
		// Destination is meaningless for point-only categories.
		mode = ModeOrigin
	}

	res := &Result{Category: category, Title: spec.title, Mode: mode}

	for i := range events {
		e := &events[i]
		if e.PlayerID != playerID || !spec.hasType(e.Type) || !spec.match(e) {
			continue
		}
		if matchID != "" && e.MatchID != matchID {
			continue
		}
		if !e.HasOrigin() {
			continue
		}
		if mode == ModeDestination && !e.HasDestination() {
			continue
		}

		res.Events = append(res.Events, *e)
		if mode == ModeDestination {
			res.Points = append(res.Points, Point{X: *e.EndX, Y: *e.EndY})
		} else {
			res.Points = append(res.Points, Point{X: *e.X, Y: *e.Y})
		}
		if spec.trajectory && e.HasDestination() {
			res.Trajectories = append(res.Trajectories, Trajectory{
				Start:      Point{X: *e.X, Y: *e.Y},
				End:        Point{X: *e.EndX, Y: *e.EndY},
				Successful: e.Outcome != models.OutcomeUnsuccessful,
			})
		}
	}

	if len(res.Events) == 0 {
		return nil, ErrNoData
	}

	return res, nil
}
