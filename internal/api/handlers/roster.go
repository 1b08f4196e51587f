package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JacobBurge13/sounders-depth-chart/internal/models"
	"github.com/JacobBurge13/sounders-depth-chart/internal/roster"
	"github.com/JacobBurge13/sounders-depth-chart/internal/store"
	"github.com/JacobBurge13/sounders-depth-chart/pkg/utils"
)

type RosterHandler struct {
	store            *store.Store
	internationalCap int
}

func NewRosterHandler(st *store.Store, internationalCap int) *RosterHandler {
	return &RosterHandler{store: st, internationalCap: internationalCap}
}

func teamContext(c *gin.Context) (models.TeamContext, bool) {
	team := models.TeamContext(c.DefaultQuery("team", string(models.TeamFirst)))
	if team != models.TeamFirst && team != models.TeamReserves {
		return "", false
	}
	return team, true
}

// GetCounts returns the roster-slot legend counts for a team context.
func (h *RosterHandler) GetCounts(c *gin.Context) {
	team, ok := teamContext(c)
	if !ok {
		utils.SendValidationError(c, "Unknown team", c.Query("team"))
		return
	}
	entries := h.store.Current().RosterFor(team)
	utils.SendSuccess(c, roster.CalculateCounts(entries, h.internationalCap))
}

type rosterEntryView struct {
	models.RosterEntry
	// Matched mirrors the legend filter: entries that miss the active
	// filter are de-emphasized, not removed.
	Matched bool `json:"matched"`
}

// GetRoster returns roster entries for a team context, each annotated with
// whether it matches the requested legend filter.
func (h *RosterHandler) GetRoster(c *gin.Context) {
	team, ok := teamContext(c)
	if !ok {
		utils.SendValidationError(c, "Unknown team", c.Query("team"))
		return
	}
	filter := roster.FilterKey(c.Query("filter"))
	if !filter.Valid() {
		utils.SendValidationError(c, "Unknown filter", c.Query("filter"))
		return
	}

	entries := h.store.Current().RosterFor(team)
	views := make([]rosterEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, rosterEntryView{
			RosterEntry: e,
			Matched:     roster.MatchesFilter(e, filter),
		})
	}
	utils.SendSuccess(c, views)
}
