package api

import (
	"github.com/gin-gonic/gin"

	"github.com/JacobBurge13/sounders-depth-chart/internal/api/handlers"
	"github.com/JacobBurge13/sounders-depth-chart/internal/api/middleware"
	"github.com/JacobBurge13/sounders-depth-chart/internal/services"
	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/config"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(group *gin.RouterGroup, st *store.Store, cache *services.CacheService, cfg *config.Config) {
	playerHandler := handlers.NewPlayerHandler(st, cache)
	spatialHandler := handlers.NewSpatialHandler(st, cache)
	rosterHandler := handlers.NewRosterHandler(st, cfg.InternationalSlotCap)
	matchHandler := handlers.NewMatchHandler(st)
	adminHandler := handlers.NewAdminHandler(st)

	// Player endpoints
	group.GET("/players", playerHandler.ListPlayers)
	group.GET("/players/:id", playerHandler.GetPlayer)
	group.GET("/players/:id/stats", playerHandler.GetPlayerStats)
	group.GET("/players/:id/matches", playerHandler.GetPlayerMatches)
	group.GET("/players/:id/spatial", spatialHandler.GetPlayerSpatial)

	// Match endpoints
	group.GET("/matches", matchHandler.ListMatches)
	group.GET("/matches/:id", matchHandler.GetMatch)

	// Roster endpoints
	group.GET("/roster", rosterHandler.GetRoster)
	group.GET("/roster/counts", rosterHandler.GetCounts)

	// Admin endpoints
	admin := group.Group("/admin")
	admin.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		admin.POST("/reload", adminHandler.ReloadSnapshot)
	}
}
