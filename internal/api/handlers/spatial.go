package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JacobBurge13/sounders-depth-chart/internal/services"
	"github.com/JacobBurge13/sounders-depth-chart/internal/spatial"
	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/utils"
)

type SpatialHandler struct {
	store *store.Store
	cache *services.CacheService
}

func NewSpatialHandler(st *store.Store, cache *services.CacheService) *SpatialHandler {
	return &SpatialHandler{store: st, cache: cache}
}

// GetPlayerSpatial returns the point/trajectory set for one player and
// action category. Query parameters: category (required), mode
// (origin|destination, default origin), match_id (optional).
func (h *SpatialHandler) GetPlayerSpatial(c *gin.Context) {
	snap := h.store.Current()
	playerID := c.Param("id")
	if _, ok := snap.PlayerByID(playerID); !ok {
		utils.SendNotFound(c, "Player not found")
		return
	}

	category := spatial.Category(c.DefaultQuery("category", string(spatial.CategoryOverview)))
	if !category.Valid() {
		utils.SendValidationError(c, "Unknown category", string(category))
		return
	}
	mode := spatial.LocationMode(c.DefaultQuery("mode", string(spatial.ModeOrigin)))
	matchID := c.Query("match_id")
	if matchID != "" {
		if _, ok := snap.MatchByID(matchID); !ok {
			utils.SendNotFound(c, "Match not found")
			return
		}
	}

	ctx := c.Request.Context()
	cacheKey := services.SpatialCacheKey(snap.Version, playerID, string(category), string(mode), matchID)
	var cached spatial.Result
	if err := h.cache.Get(ctx, cacheKey, &cached); err == nil {
		utils.SendSuccess(c, &cached)
		return
	}

	result, err := spatial.Query(snap.Events, playerID, category, mode, matchID)
	if err != nil {
		if errors.Is(err, spatial.ErrNoData) {
			utils.SendNoData(c, "No "+category.Title()+" data available")
			return
		}
		utils.SendValidationError(c, "Invalid spatial query", err.Error())
		return
	}

	h.cache.Set(ctx, cacheKey, result, 10*time.Minute)
	utils.SendSuccess(c, result)
}
