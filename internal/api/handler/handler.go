// Package handler provides HTTP handlers for all API endpoints.
// Handlers read the loaded season and per-viewer scenarios directly; there
// is no service layer.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/wer-standings/internal/api/respond"
	"github.com/albapepper/wer-standings/internal/cache"
	"github.com/albapepper/wer-standings/internal/config"
	"github.com/albapepper/wer-standings/internal/dataset"
	"github.com/albapepper/wer-standings/internal/league"
	"github.com/albapepper/wer-standings/internal/live"
	"github.com/albapepper/wer-standings/internal/scenario"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	season    *dataset.Season
	rules     league.Rules
	projected []league.TeamStanding
	scenarios *scenario.Store
	cache     *cache.Cache
	hub       *live.Hub
	cfg       *config.Config
	logger    *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(season *dataset.Season, scenarios *scenario.Store, c *cache.Cache, hub *live.Hub, cfg *config.Config, logger *slog.Logger) *Handler {
	rules := cfg.Rules()
	return &Handler{
		season:    season,
		rules:     rules,
		projected: league.Compute(season.Baseline, season.Games, rules),
		scenarios: scenarios,
		cache:     c,
		hub:       hub,
		cfg:       cfg,
		logger:    logger,
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the scoring rules in effect.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "WER Standings API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"rules": map[string]int{
			"win_points":          h.rules.WinPoints,
			"losing_bonus_margin": h.rules.LosingBonusMargin,
			"losing_bonus_points": h.rules.LosingBonusPoints,
			"try_bonus_points":    h.rules.TryBonusPoints,
		},
		"teams": len(h.season.Baseline),
		"games": len(h.season.Games),
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status, timestamp and live scenario count.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"scenarios": h.scenarios.Len(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"enabled":   h.cache.Enabled(),
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// writeCached serves key from the cache, building and storing the body on
// a miss. clientTTL is what the response tells clients; the cache entry
// itself lives for cacheTTL.
func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, key string, cacheTTL, clientTTL time.Duration, build func() interface{}) {
	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
			respond.WriteNotModified(w, etag)
			return
		}
		respond.WriteJSON(w, data, etag, clientTTL, true)
		return
	}

	data, err := json.Marshal(build())
	if err != nil {
		h.logger.Error("Marshal response", "key", key, "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL", "Failed to encode response")
		return
	}
	etag := h.cache.Set(key, data, cacheTTL)
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return
	}
	respond.WriteJSON(w, data, etag, clientTTL, false)
}

func queryBool(r *http.Request, name string) bool {
	switch r.URL.Query().Get(name) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
