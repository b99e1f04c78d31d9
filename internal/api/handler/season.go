package handler

import (
	"fmt"
	"net/http"

	"github.com/albapepper/wer-standings/internal/cache"
	"github.com/albapepper/wer-standings/internal/league"
)

// ScheduleResponse lists schedule rows.
type ScheduleResponse struct {
	Games      []league.GameRecord `json:"games"`
	HideLocked bool                `json:"hide_locked"`
	Total      int                 `json:"total"`
}

// StandingsResponse is a ranked table.
type StandingsResponse struct {
	Standings []league.TeamStanding `json:"standings"`
	Version   uint64                `json:"version"`
}

// GetSchedule returns the season's schedule rows.
// @Summary Get schedule
// @Description Returns every schedule row, or only the editable ones with hide_locked=true.
// @Tags season
// @Produce json
// @Param hide_locked query bool false "Hide rows whose result is fixed"
// @Success 200 {object} ScheduleResponse
// @Router /schedule [get]
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	hide := queryBool(r, "hide_locked")
	key := fmt.Sprintf("season:schedule:%t", hide)
	h.writeCached(w, r, key, cache.TTLSeason, cache.TTLSeason, func() interface{} {
		return ScheduleResponse{
			Games:      filterLocked(h.season.Games, hide),
			HideLocked: hide,
			Total:      len(h.season.Games),
		}
	})
}

// GetStandings returns the published table with any locked corrections
// folded in.
// @Summary Get standings
// @Description Returns the preseason table projected with results fixed by the override table, ranked by points, bonus points, road wins.
// @Tags season
// @Produce json
// @Success 200 {object} StandingsResponse
// @Router /standings [get]
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "season:standings", cache.TTLSeason, cache.TTLSeason, func() interface{} {
		return StandingsResponse{Standings: h.projected}
	})
}

func filterLocked(games []league.GameRecord, hide bool) []league.GameRecord {
	out := make([]league.GameRecord, 0, len(games))
	for _, g := range games {
		if hide && g.Locked {
			continue
		}
		out = append(out, g)
	}
	return out
}
