package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/utils"
)

type AdminHandler struct {
	store *store.Store
}

func NewAdminHandler(st *store.Store) *AdminHandler {
	return &AdminHandler{store: st}
}

// ReloadSnapshot forces a fresh load of the data artifacts, for use after
// the ingestion pipeline rewrites them out of schedule.
func (h *AdminHandler) ReloadSnapshot(c *gin.Context) {
	snap, err := h.store.Reload()
	if err != nil {
		utils.SendInternalError(c, "Snapshot reload failed")
		return
	}
	utils.SendSuccess(c, gin.H{
		"version":   snap.Version,
		"loaded_at": snap.LoadedAt,
		"players":   len(snap.Players),
		"events":    len(snap.Events),
		"matches":   len(snap.Matches),
	})
}
