package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
	"github.com/JacobBurge13/sounders-depth-chart/internal/services"
	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/utils"
)

type PlayerHandler struct {
	store *store.Store
	cache *services.CacheService
}

func NewPlayerHandler(st *store.Store, cache *services.CacheService) *PlayerHandler {
	return &PlayerHandler{store: st, cache: cache}
}

// ListPlayers returns players with season stats and percentiles, optionally
// restricted to one team context's roster.
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	snap := h.store.Current()

	team := c.Query("team")
	if team == "" {
		utils.SendSuccess(c, snap.Players)
		return
	}
	tc := models.TeamContext(team)
	if tc != models.TeamFirst && tc != models.TeamReserves {
		utils.SendValidationError(c, "Unknown team", team)
		return
	}

	onRoster := make(map[string]struct{})
	for _, e := range snap.RosterFor(tc) {
		onRoster[e.Name] = struct{}{}
	}
	players := make([]*models.PlayerSeasonStats, 0, len(onRoster))
	for _, p := range snap.Players {
		if _, ok := onRoster[p.Name]; ok {
			players = append(players, p)
		}
	}
	utils.SendSuccess(c, players)
}

// GetPlayer returns one player by id.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	snap := h.store.Current()
	player, ok := snap.PlayerByID(c.Param("id"))
	if !ok {
		utils.SendNotFound(c, "Player not found")
		return
	}
	utils.SendSuccess(c, player)
}

// GetPlayerStats returns event-derived stats for a player, scoped to one
// match when match_id is given. A player with no matching events gets a
// NO_DATA response so the dashboard can distinguish "didn't play" from
// "played but had zero actions".
func (h *PlayerHandler) GetPlayerStats(c *gin.Context) {
	snap := h.store.Current()
	playerID := c.Param("id")
	if _, ok := snap.PlayerByID(playerID); !ok {
		utils.SendNotFound(c, "Player not found")
		return
	}

	matchID := c.Query("match_id")
	if matchID != "" {
		if _, ok := snap.MatchByID(matchID); !ok {
			utils.SendNotFound(c, "Match not found")
			return
		}
	}

	ctx := c.Request.Context()
	cacheKey := services.GameStatsCacheKey(snap.Version, playerID, matchID)
	var cached models.GameStats
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		utils.SendSuccess(c, &cached)
		return
	}

	gameStats := snap.AggregateStats(playerID, matchID)
	if gameStats == nil {
		utils.SendNoData(c, "No events for this player")
		return
	}

	h.cache.Set(ctx, cacheKey, gameStats, 10*time.Minute)
	utils.SendSuccess(c, gameStats)
}

// GetPlayerMatches lists the matches a player appeared in, newest first.
func (h *PlayerHandler) GetPlayerMatches(c *gin.Context) {
	snap := h.store.Current()
	playerID := c.Param("id")
	if _, ok := snap.PlayerByID(playerID); !ok {
		utils.SendNotFound(c, "Player not found")
		return
	}
	matches := snap.MatchesForPlayer(playerID)
	if matches == nil {
		matches = []models.Match{}
	}
	utils.SendSuccess(c, matches)
}
