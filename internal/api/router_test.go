package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/config"
)

const testSecret = "test-secret"

const routerPlayers = `[
	{"player_id": "p1", "name": "Jordan Morris", "mins": 900, "gp": 10, "goals": 5, "passes": 200},
	{"player_id": "p2", "name": "Benchwarmer", "mins": 0, "gp": 0, "goals": 0, "passes": 0}
]`

const routerEvents = `[
	{"player_id": "p1", "match_id": "m1", "type": "Pass", "minute": 3, "x": 40, "y": 50, "end_x": 55, "end_y": 50, "outcome": "Successful"},
	{"player_id": "p1", "match_id": "m1", "type": "Pass", "minute": 8, "x": 60, "y": 40, "outcome": "Successful"},
	{"player_id": "p1", "match_id": "m1", "type": "Goal", "minute": 70, "x": 90, "y": 50, "is_goal": true}
]`

const routerMatches = `[
	{"match_id": "m1", "opponent": "Portland", "venue": "home", "date": "2026-03-08"}
]`

const routerRoster = `{
	"first_team": {
		"Jordan Morris": {"designation": "DP"},
		"Benchwarmer": {"supplemental": true}
	}
}`

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	files := map[string]string{
		"players.json": routerPlayers,
		"events.json":  routerEvents,
		"matches.json": routerMatches,
		"roster.json":  routerRoster,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	st := store.New(dir, logger)
	require.NoError(t, st.Load())

	cfg := &config.Config{JWTSecret: testSecret, InternationalSlotCap: 4}

	router := gin.New()
	SetupRoutes(router.Group("/api/v1"), st, nil, cfg)
	return router, st
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestListPlayers(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var players []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &players))
	assert.Len(t, players, 2)
	assert.Contains(t, players[0], "percentiles", "season rows carry their percentile maps")
}

func TestListPlayersTeamFilter(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players?team=first_team", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var players []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &players))
	assert.Len(t, players, 2, "both fixture players sit on the first-team roster")

	w, env = doRequest(t, router, http.MethodGet, "/api/v1/players?team=reserves", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &players))
	assert.Empty(t, players)

	w, env = doRequest(t, router, http.MethodGet, "/api/v1/players?team=loan_army", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestGetPlayerNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetPlayerStats(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players/p1/stats?match_id=m1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var gs map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &gs))
	assert.Equal(t, float64(1), gs["goals"])
	assert.Equal(t, float64(90), gs["mins"], "per-game stats use the 90-minute convention")
}

func TestGetPlayerStatsNoData(t *testing.T) {
	router, _ := newTestServer(t)

	// p2 exists on the roster but has no events.
	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players/p2/stats", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NO_DATA", env.Error.Code, "zero events is NO_DATA, not NOT_FOUND")
}

func TestGetPlayerStatsUnknownMatch(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players/p1/stats?match_id=m9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetPlayerMatches(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players/p1/matches", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var matches []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "Portland", matches[0]["opponent"])

	_, env = doRequest(t, router, http.MethodGet, "/api/v1/players/p2/matches", nil)
	var empty []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &empty))
	assert.NotNil(t, empty, "an empty list serializes as [], not null")
	assert.Empty(t, empty)
}

func TestGetPlayerSpatial(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players/p1/spatial?category=Pass&mode=destination", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Mode   string                   `json:"mode"`
		Points []map[string]float64     `json:"points"`
		Events []map[string]interface{} `json:"events"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "destination", result.Mode)
	require.Len(t, result.Points, 1, "the end-less pass drops out of destination mode")
	assert.Equal(t, float64(55), result.Points[0]["x"])
}

func TestGetPlayerSpatialValidation(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/players/p1/spatial?category=zigzags", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	w, env = doRequest(t, router, http.MethodGet, "/api/v1/players/p1/spatial?category=Defensive", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_DATA", env.Error.Code, "a valid category with no events is NO_DATA")
}

func TestGetRosterCounts(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/roster/counts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var counts map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &counts))
	assert.Equal(t, float64(2), counts["total_on_roster"])
	assert.Equal(t, float64(1), counts["dp_spots"])
	assert.Equal(t, float64(4), counts["open_international"])
}

func TestGetRosterWithFilter(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/roster?filter=dp", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var entries []struct {
		Name    string `json:"name"`
		Matched bool   `json:"matched"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &entries))
	require.Len(t, entries, 2, "filtering annotates, never removes")
	for _, e := range entries {
		if e.Name == "Jordan Morris" {
			assert.True(t, e.Matched)
		} else {
			assert.False(t, e.Matched)
		}
	}
}

func TestGetRosterValidation(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/roster?team=loan_army", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	w, env = doRequest(t, router, http.MethodGet, "/api/v1/roster?filter=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestListAndGetMatches(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/v1/matches", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var matches []map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &matches))
	assert.Len(t, matches, 1)

	w, _ = doRequest(t, router, http.MethodGet, "/api/v1/matches/m1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, router, http.MethodGet, "/api/v1/matches/m9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestAdminReloadRequiresAuth(t *testing.T) {
	router, _ := newTestServer(t)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/admin/reload", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/api/v1/admin/reload",
		map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminReloadSwapsSnapshot(t *testing.T) {
	router, st := newTestServer(t)
	before := st.Current().Version

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "ops",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w, env := doRequest(t, router, http.MethodPost, "/api/v1/admin/reload",
		map[string]string{"Authorization": "Bearer " + token})
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, env.Success)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.NotEqual(t, before, body["version"])
	assert.Equal(t, body["version"], st.Current().Version)
}
