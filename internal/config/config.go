// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/wer.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/albapepper/wer-standings/internal/league"
)

// --------------------------------------------------------------------------
// Source pages for the dataset refresh
// --------------------------------------------------------------------------

const (
	DefaultStandingsURL = "https://www.womenseliterugby.us/standings"
	DefaultScheduleURL  = "https://www.womenseliterugby.us/2025-schedule"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool

	// Datasets; empty means the bundled copy
	ScheduleFile  string
	StandingsFile string
	OverridesFile string

	// Scoring
	LosingBonusMargin int

	// Scenarios
	ScenarioTTL time.Duration

	// Dataset refresh
	StandingsURL string
	ScheduleURL  string
	FetchCache   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:4321",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		ScheduleFile:  envOr("SCHEDULE_FILE", ""),
		StandingsFile: envOr("STANDINGS_FILE", ""),
		OverridesFile: envOr("OVERRIDES_FILE", ""),

		LosingBonusMargin: envInt("LOSING_BONUS_MARGIN", league.DefaultRules().LosingBonusMargin),

		ScenarioTTL: time.Duration(envInt("SCENARIO_TTL_MINUTES", 120)) * time.Minute,

		StandingsURL: envOr("STANDINGS_URL", DefaultStandingsURL),
		ScheduleURL:  envOr("SCHEDULE_URL", DefaultScheduleURL),
		FetchCache:   time.Duration(envInt("FETCH_CACHE_MINUTES", 10)) * time.Minute,
	}

	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return nil, fmt.Errorf("API_PORT %d out of range", cfg.APIPort)
	}
	if cfg.LosingBonusMargin < 0 {
		return nil, fmt.Errorf("LOSING_BONUS_MARGIN must not be negative, got %d", cfg.LosingBonusMargin)
	}
	if cfg.RateLimitEnabled && (cfg.RateLimitRequests <= 0 || cfg.RateLimitWindow <= 0) {
		return nil, fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive when rate limiting is enabled")
	}
	if cfg.IsProduction() && slices.Contains(cfg.CORSAllowOrigins, "*") {
		return nil, fmt.Errorf("CORS_ALLOW_ORIGINS must list origins explicitly in production")
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Rules returns the table rules with configured overrides applied.
func (c *Config) Rules() league.Rules {
	r := league.DefaultRules()
	r.LosingBonusMargin = c.LosingBonusMargin
	return r
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
