package handler

import (
	"net/http"

	"github.com/albapepper/wer-standings/internal/live"
	"github.com/albapepper/wer-standings/internal/scenario"
)

// Live streams the scenario's standings over a websocket. The current
// snapshot is sent on connect, then one message per edit.
// @Summary Live standings
// @Description Websocket. Messages are {"type":"standings","payload":Snapshot}; send {"type":"ping"} for a pong.
// @Tags scenarios
// @Param id path string true "Scenario ID"
// @Success 101
// @Failure 404 {object} respond.ErrorResponse
// @Router /scenarios/{id}/live [get]
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	initial := func() *live.Message {
		return &live.Message{Type: scenario.MessageStandings, Payload: sc.Snapshot()}
	}
	if err := h.hub.ServeWS(w, r, sc.ID, initial); err != nil {
		// The upgrader has already written the HTTP error.
		h.logger.Warn("Live upgrade failed", "scenario", sc.ID, "error", err)
	}
}
