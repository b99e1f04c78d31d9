package handler

import (
	"net/http"

	"github.com/albapepper/wer-standings/internal/cache"
)

// TeamEntry is one team with its fixture counts.
type TeamEntry struct {
	Team      string `json:"team"`
	HomeGames int    `json:"home_games"`
	AwayGames int    `json:"away_games"`
	Remaining int    `json:"remaining"`
}

// TeamsResponse lists every team in the season.
type TeamsResponse struct {
	Teams []TeamEntry `json:"teams"`
}

// GetTeams returns the season's teams for frontend pickers and filters.
// Teams appear in preseason table order, followed by any team that only
// appears in the schedule.
// @Summary Get teams
// @Description Returns every team with home, away and remaining game counts.
// @Tags season
// @Produce json
// @Success 200 {object} TeamsResponse
// @Router /teams [get]
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "season:teams", cache.TTLSeason, cache.TTLSeason, func() interface{} {
		return TeamsResponse{Teams: h.teamEntries()}
	})
}

func (h *Handler) teamEntries() []TeamEntry {
	index := make(map[string]int)
	var out []TeamEntry
	entry := func(team string) *TeamEntry {
		i, ok := index[team]
		if !ok {
			i = len(out)
			index[team] = i
			out = append(out, TeamEntry{Team: team})
		}
		return &out[i]
	}

	for _, team := range h.season.Teams() {
		entry(team)
	}
	for _, g := range h.season.Games {
		entry(g.HomeTeam)
		entry(g.AwayTeam)
		home, away := entry(g.HomeTeam), entry(g.AwayTeam)
		home.HomeGames++
		away.AwayGames++
		if !g.Happened && !g.Locked {
			home.Remaining++
			away.Remaining++
		}
	}
	return out
}
