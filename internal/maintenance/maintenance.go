// Package maintenance runs periodic background tasks as Go tickers.
package maintenance

import (
	"context"
	"log/slog"
	"time"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	EvictInterval  time.Duration // Idle scenario eviction
	ReportInterval time.Duration // Scenario and cache counters
}

// DefaultConfig sweeps a few times per scenario TTL, never more than once
// a minute.
func DefaultConfig(scenarioTTL time.Duration) Config {
	evict := scenarioTTL / 4
	if evict < time.Minute {
		evict = time.Minute
	}
	return Config{
		EvictInterval:  evict,
		ReportInterval: 15 * time.Minute,
	}
}

// Scenarios is the part of the scenario store maintenance drives.
type Scenarios interface {
	EvictIdle() []string
	Len() int
}

// Stats reports cache counters.
type Stats interface {
	Stats() map[string]interface{}
}

// Deps are the services the tasks act on. Forget is called with each
// evicted scenario id and may be nil.
type Deps struct {
	Scenarios Scenarios
	Forget    func(id string)
	Cache     Stats
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, deps Deps, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"evict", cfg.EvictInterval,
		"report", cfg.ReportInterval)

	tickers := make([]*time.Ticker, 0, 2)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	if cfg.EvictInterval > 0 {
		t := time.NewTicker(cfg.EvictInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { evict(deps) })
	}

	if cfg.ReportInterval > 0 {
		t := time.NewTicker(cfg.ReportInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { report(deps, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

// evict drops idle scenarios and releases what was held for them.
func evict(deps Deps) []string {
	ids := deps.Scenarios.EvictIdle()
	if deps.Forget != nil {
		for _, id := range ids {
			deps.Forget(id)
		}
	}
	return ids
}

func report(deps Deps, logger *slog.Logger) {
	args := []any{"scenarios", deps.Scenarios.Len()}
	if deps.Cache != nil {
		args = append(args, "cache", deps.Cache.Stats())
	}
	logger.Info("Maintenance report", args...)
}
