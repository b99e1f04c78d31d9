package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/wer-standings/internal/api/respond"
	"github.com/albapepper/wer-standings/internal/cache"
	"github.com/albapepper/wer-standings/internal/dataset"
	"github.com/albapepper/wer-standings/internal/league"
	"github.com/albapepper/wer-standings/internal/scenario"
	"github.com/albapepper/wer-standings/internal/schedule"
)

// ScoreInput is the body of a score edit. Value may be a string or a
// number; anything that is not a non-negative whole number counts as 0.
type ScoreInput struct {
	Value dataset.Cell `json:"value" swaggertype:"string" example:"20"`
}

// ResultInput is the body of a whole-result edit.
type ResultInput struct {
	HomeScore    dataset.Cell `json:"home_score" swaggertype:"string" example:"24"`
	AwayScore    dataset.Cell `json:"away_score" swaggertype:"string" example:"17"`
	HomeTryPoint bool         `json:"home_try_point"`
	AwayTryPoint bool         `json:"away_try_point"`
}

// CreateScenario starts a fresh editable copy of the schedule.
// @Summary Create scenario
// @Description Creates a per-viewer copy of the schedule. Edits to it recompute the standings immediately.
// @Tags scenarios
// @Produce json
// @Success 201 {object} scenario.Snapshot
// @Router /scenarios [post]
func (h *Handler) CreateScenario(w http.ResponseWriter, r *http.Request) {
	sc, err := h.scenarios.Create()
	if err != nil {
		h.logger.Error("Create scenario", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to create scenario")
		return
	}
	w.Header().Set("Location", "/api/v1/scenarios/"+sc.ID)
	respond.WriteJSONObject(w, http.StatusCreated, sc.Snapshot())
}

// GetScenario returns the scenario's games and standings.
// @Summary Get scenario
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} scenario.Snapshot
// @Failure 404 {object} respond.ErrorResponse
// @Router /scenarios/{id} [get]
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, sc.Snapshot())
}

// DeleteScenario drops a scenario and disconnects its live clients.
// @Summary Delete scenario
// @Tags scenarios
// @Param id path string true "Scenario ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /scenarios/{id} [delete]
func (h *Handler) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.scenarios.Delete(id); err != nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No scenario "+id)
		return
	}
	h.Forget(id)
	w.WriteHeader(http.StatusNoContent)
}

// Forget releases everything held for a scenario that no longer exists.
func (h *Handler) Forget(id string) {
	h.cache.DeletePrefix(scenarioCachePrefix(id))
	if n := h.hub.Count(id); n > 0 {
		h.logger.Debug("Closing live viewers", "scenario", id, "viewers", n)
	}
	h.hub.CloseScenario(id)
}

// GetScenarioSchedule returns the scenario's rows.
// @Summary Get scenario schedule
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Param hide_locked query bool false "Hide rows whose result is fixed"
// @Success 200 {object} ScheduleResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /scenarios/{id}/schedule [get]
func (h *Handler) GetScenarioSchedule(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	hide := queryBool(r, "hide_locked")
	respond.WriteJSONObject(w, http.StatusOK, ScheduleResponse{
		Games:      sc.Board.Rows(hide),
		HideLocked: hide,
		Total:      sc.Board.Len(),
	})
}

// GetScenarioStandings returns the scenario's current table.
// @Summary Get scenario standings
// @Description Standings recomputed from the baseline and every edited result. Supports If-None-Match.
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} StandingsResponse
// @Success 304
// @Failure 404 {object} respond.ErrorResponse
// @Router /scenarios/{id}/standings [get]
func (h *Handler) GetScenarioStandings(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	snap := sc.Snapshot()
	key := fmt.Sprintf("%s%d:standings", scenarioCachePrefix(sc.ID), snap.Version)
	h.writeCached(w, r, key, cache.TTLScenario, 0, func() interface{} {
		return StandingsResponse{Standings: snap.Standings, Version: snap.Version}
	})
}

// SetScore sets one side's score for a game.
// @Summary Set score
// @Description Sets the home or away score of an unlocked game. Blank or malformed values count as 0.
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param row path int true "Schedule row"
// @Param side path string true "Side" Enums(home, away)
// @Param body body ScoreInput true "Score"
// @Success 200 {object} scenario.Snapshot
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /scenarios/{id}/games/{row}/score/{side} [put]
func (h *Handler) SetScore(w http.ResponseWriter, r *http.Request) {
	sc, row, side, ok := h.editTarget(w, r)
	if !ok {
		return
	}
	var in ScoreInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "BAD_BODY", "Body must be {\"value\": ...}", err.Error())
		return
	}
	_, err := sc.Board.SetScore(row, side, string(in.Value))
	h.writeEdit(w, sc, err)
}

// SetResult replaces a game's scores and try flags in one edit.
// @Summary Set result
// @Description Replaces both scores and both try bonus flags of an unlocked game. Malformed scores count as 0.
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param row path int true "Schedule row"
// @Param body body ResultInput true "Result"
// @Success 200 {object} scenario.Snapshot
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /scenarios/{id}/games/{row} [put]
func (h *Handler) SetResult(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "BAD_ROW", "row must be an integer")
		return
	}
	var in ResultInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteErrorDetail(w, http.StatusBadRequest, "BAD_BODY", "Body must be a result object", err.Error())
		return
	}
	_, err = sc.Board.UpdateAt(row, league.GameRecord{
		HomeScore:    schedule.ParseScore(string(in.HomeScore)),
		AwayScore:    schedule.ParseScore(string(in.AwayScore)),
		HomeTryPoint: in.HomeTryPoint,
		AwayTryPoint: in.AwayTryPoint,
	})
	h.writeEdit(w, sc, err)
}

// ToggleBonus flips one side's try bonus flag for a game.
// @Summary Toggle try bonus
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Param row path int true "Schedule row"
// @Param side path string true "Side" Enums(home, away)
// @Success 200 {object} scenario.Snapshot
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /scenarios/{id}/games/{row}/bonus/{side} [post]
func (h *Handler) ToggleBonus(w http.ResponseWriter, r *http.Request) {
	sc, row, side, ok := h.editTarget(w, r)
	if !ok {
		return
	}
	_, err := sc.Board.ToggleBonusPoint(row, side)
	h.writeEdit(w, sc, err)
}

// ResetScenario discards every edit.
// @Summary Reset scenario
// @Tags scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} scenario.Snapshot
// @Failure 404 {object} respond.ErrorResponse
// @Router /scenarios/{id}/reset [post]
func (h *Handler) ResetScenario(w http.ResponseWriter, r *http.Request) {
	sc, ok := h.lookup(w, r)
	if !ok {
		return
	}
	sc.Board.Reset()
	respond.WriteJSONObject(w, http.StatusOK, sc.Snapshot())
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*scenario.Scenario, bool) {
	id := chi.URLParam(r, "id")
	sc, err := h.scenarios.Get(id)
	if err != nil {
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No scenario "+id)
		return nil, false
	}
	return sc, true
}

func (h *Handler) editTarget(w http.ResponseWriter, r *http.Request) (*scenario.Scenario, int, league.Side, bool) {
	sc, ok := h.lookup(w, r)
	if !ok {
		return nil, 0, "", false
	}
	row, err := strconv.Atoi(chi.URLParam(r, "row"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "BAD_ROW", "row must be an integer")
		return nil, 0, "", false
	}
	side, err := league.ParseSide(chi.URLParam(r, "side"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "BAD_SIDE", "side must be home or away")
		return nil, 0, "", false
	}
	return sc, row, side, true
}

func (h *Handler) writeEdit(w http.ResponseWriter, sc *scenario.Scenario, err error) {
	switch {
	case errors.Is(err, schedule.ErrRowOutOfRange):
		respond.WriteErrorDetail(w, http.StatusNotFound, "ROW_NOT_FOUND", "No such schedule row", err.Error())
	case errors.Is(err, schedule.ErrLocked):
		respond.WriteErrorDetail(w, http.StatusConflict, "ROW_LOCKED", "This result is fixed and cannot be edited", err.Error())
	case err != nil:
		h.logger.Error("Edit scenario", "scenario", sc.ID, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Edit failed")
	default:
		respond.WriteJSONObject(w, http.StatusOK, sc.Snapshot())
	}
}

func scenarioCachePrefix(id string) string {
	return "scenario:" + id + ":"
}
