package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/utils"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health reports service status and the active snapshot.
func (h *HealthHandler) Health(c *gin.Context) {
	snap := h.store.Current()
	utils.SendSuccess(c, gin.H{
		"status":           "ok",
		"time":             time.Now().UTC(),
		"snapshot_version": snap.Version,
		"snapshot_loaded":  snap.LoadedAt,
		"players":          len(snap.Players),
		"events":           len(snap.Events),
	})
}
