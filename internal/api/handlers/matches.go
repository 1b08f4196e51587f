package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/utils"
)

type MatchHandler struct {
	store *store.Store
}

func NewMatchHandler(st *store.Store) *MatchHandler {
	return &MatchHandler{store: st}
}

// ListMatches returns the full match index.
func (h *MatchHandler) ListMatches(c *gin.Context) {
	utils.SendSuccess(c, h.store.Current().Matches)
}

// GetMatch returns one match by id.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	match, ok := h.store.Current().MatchByID(c.Param("id"))
	if !ok {
		utils.SendNotFound(c, "Match not found")
		return
	}
	utils.SendSuccess(c, match)
}
