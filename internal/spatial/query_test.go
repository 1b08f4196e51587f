package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
)

func fp(v float64) *float64 { return &v }

func pass(player, match string, x, y float64, end ...float64) models.Event {
	e := models.Event{
		Type:     models.EventPass,
		PlayerID: player,
		MatchID:  match,
		X:        fp(x),
		Y:        fp(y),
		Outcome:  models.OutcomeSuccessful,
	}
	if len(end) == 2 {
		e.EndX = fp(end[0])
		e.EndY = fp(end[1])
	}
	return e
}

func TestQueryOriginIncludesEndlessEvents(t *testing.T) {
	events := []models.Event{
		pass("p1", "m1", 10, 20, 50, 60),
		pass("p1", "m1", 30, 40), // no end coordinates recorded
	}

	res, err := Query(events, "p1", CategoryPass, ModeOrigin, "")
	require.NoError(t, err)

	assert.Len(t, res.Events, 2)
	assert.Equal(t, []Point{{X: 10, Y: 20}, {X: 30, Y: 40}}, res.Points)
	assert.Len(t, res.Trajectories, 1, "only events with both ends pair into trajectories")
	assert.Equal(t, Point{X: 50, Y: 60}, res.Trajectories[0].End)
}

func TestQueryDestinationExcludesEndlessEvents(t *testing.T) {
	events := []models.Event{
		pass("p1", "m1", 10, 20, 50, 60),
		pass("p1", "m1", 30, 40),
	}

	res, err := Query(events, "p1", CategoryPass, ModeDestination, "")
	require.NoError(t, err)

	assert.Len(t, res.Events, 1)
	assert.Equal(t, []Point{{X: 50, Y: 60}}, res.Points, "destination mode plots end coordinates")
}

func TestQueryDestinationFallsBackForPointCategories(t *testing.T) {
	events := []models.Event{
		{Type: models.EventReception, PlayerID: "p1", MatchID: "m1", X: fp(70), Y: fp(30)},
	}

	res, err := Query(events, "p1", CategoryReception, ModeDestination, "")
	require.NoError(t, err)

	assert.Equal(t, ModeOrigin, res.Mode, "receptions have no destination end")
	assert.Equal(t, []Point{{X: 70, Y: 30}}, res.Points)
	assert.Empty(t, res.Trajectories)
}

func TestQueryEmptyModeDefaultsToOrigin(t *testing.T) {
	events := []models.Event{pass("p1", "m1", 10, 20, 50, 60)}

	res, err := Query(events, "p1", CategoryPass, "", "")
	require.NoError(t, err)
	assert.Equal(t, ModeOrigin, res.Mode)
}

func TestQueryNoMatchingEvents(t *testing.T) {
	events := []models.Event{pass("p1", "m1", 10, 20, 50, 60)}

	_, err := Query(events, "p1", CategoryShot, ModeOrigin, "")
	assert.ErrorIs(t, err, ErrNoData)

	_, err = Query(events, "p2", CategoryPass, ModeOrigin, "")
	assert.ErrorIs(t, err, ErrNoData, "another player's events never leak in")

	_, err = Query(events, "p1", CategoryPass, ModeOrigin, "m2")
	assert.ErrorIs(t, err, ErrNoData, "match filter applies before the empty check")
}

func TestQueryUnknownCategoryAndMode(t *testing.T) {
	events := []models.Event{pass("p1", "m1", 10, 20, 50, 60)}

	_, err := Query(events, "p1", Category("heatmap"), ModeOrigin, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)

	_, err = Query(events, "p1", CategoryPass, LocationMode("middle"), "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestQuerySkipsEventsWithoutOrigin(t *testing.T) {
	events := []models.Event{
		{Type: models.EventPass, PlayerID: "p1", MatchID: "m1", EndX: fp(50), EndY: fp(60)},
		pass("p1", "m1", 10, 20),
	}

	res, err := Query(events, "p1", CategoryPass, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 1)
	assert.Equal(t, Point{X: 10, Y: 20}, res.Points[0])
}

func TestQueryPreservesSourceOrder(t *testing.T) {
	events := []models.Event{
		pass("p1", "m1", 1, 1, 2, 2),
		pass("p1", "m2", 3, 3, 4, 4),
		pass("p1", "m1", 5, 5, 6, 6),
	}

	res, err := Query(events, "p1", CategoryPass, ModeOrigin, "")
	require.NoError(t, err)

	want := []Point{{X: 1, Y: 1}, {X: 3, Y: 3}, {X: 5, Y: 5}}
	assert.Equal(t, want, res.Points, "render order must match the source event order")
}

func TestQueryFlagCategories(t *testing.T) {
	key := pass("p1", "m1", 10, 20, 80, 40)
	key.IsKeyPass = true
	prog := pass("p1", "m1", 30, 30, 60, 30)
	prog.IsProgressivePass = true
	plain := pass("p1", "m1", 5, 5, 15, 15)
	events := []models.Event{key, prog, plain}

	res, err := Query(events, "p1", CategoryKeyPasses, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 1)
	assert.True(t, res.Events[0].IsKeyPass)

	res, err = Query(events, "p1", CategoryProgressivePasses, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 1)

	res, err = Query(events, "p1", CategoryAllPasses, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 3)
}

func TestQueryReceptionZones(t *testing.T) {
	rec := func(x float64) models.Event {
		return models.Event{Type: models.EventReception, PlayerID: "p1", MatchID: "m1", X: fp(x), Y: fp(50)}
	}
	events := []models.Event{rec(10), rec(70), rec(90)}

	res, err := Query(events, "p1", CategoryAllReceptions, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 3)

	res, err = Query(events, "p1", CategoryFinalThirdReceptions, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 2)

	res, err = Query(events, "p1", CategoryDeepReceptions, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 1)
	assert.Equal(t, Point{X: 90, Y: 50}, res.Points[0])
}

func TestQueryShotsOnTargetSubset(t *testing.T) {
	shot := func(typ models.EventType) models.Event {
		return models.Event{Type: typ, PlayerID: "p1", MatchID: "m1", X: fp(88), Y: fp(50)}
	}
	events := []models.Event{
		shot(models.EventShot),
		shot(models.EventMissedShot),
		shot(models.EventSavedShot),
		shot(models.EventGoal),
		shot(models.EventShotOnPost),
	}

	res, err := Query(events, "p1", CategoryAllShots, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 5)

	res, err = Query(events, "p1", CategoryShotsOnTarget, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 2, "only saved shots and goals are on target")

	res, err = Query(events, "p1", CategoryGoals, ModeOrigin, "")
	require.NoError(t, err)
	assert.Len(t, res.Events, 1)
}

func TestQueryUnsuccessfulTrajectories(t *testing.T) {
	good := pass("p1", "m1", 10, 10, 20, 20)
	bad := pass("p1", "m1", 30, 30, 40, 40)
	bad.Outcome = models.OutcomeUnsuccessful

	res, err := Query([]models.Event{good, bad}, "p1", CategoryPass, ModeOrigin, "")
	require.NoError(t, err)
	require.Len(t, res.Trajectories, 2)
	assert.True(t, res.Trajectories[0].Successful)
	assert.False(t, res.Trajectories[1].Successful)
}

func TestCategoryMetadata(t *testing.T) {
	assert.True(t, CategoryPass.Valid())
	assert.True(t, CategoryRecoveries.Valid())
	assert.False(t, Category("sprints").Valid())

	assert.True(t, CategoryPass.Trajectory())
	assert.True(t, CategoryAllCarries.Trajectory())
	assert.False(t, CategoryShot.Trajectory())
	assert.False(t, CategoryAllReceptions.Trajectory())

	assert.Equal(t, "All Actions", CategoryOverview.Title())
	assert.Equal(t, "Shots on Target", CategoryShotsOnTarget.Title())
}
