// Package scenario keeps the per-viewer editing state: a schedule board and
// the standings recomputed from it after every edit.
package scenario

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/albapepper/wer-standings/internal/dataset"
	"github.com/albapepper/wer-standings/internal/league"
	"github.com/albapepper/wer-standings/internal/schedule"
)

// ErrNotFound is returned for unknown or expired scenario ids.
var ErrNotFound = errors.New("scenario not found")

// MessageStandings is the message type published after each recompute.
const MessageStandings = "standings"

// Publisher receives recomputed standings for live subscribers.
type Publisher interface {
	Publish(scenarioID, messageType string, payload interface{})
}

// Snapshot is a consistent view of one scenario.
type Snapshot struct {
	ID        string                `json:"id"`
	Version   uint64                `json:"version"`
	Games     []league.GameRecord   `json:"games"`
	Standings []league.TeamStanding `json:"standings"`
	Movement  []league.Movement     `json:"movement"`
}

// Scenario is one viewer's hypothetical season.
type Scenario struct {
	ID    string
	Board *schedule.Board

	projected []league.TeamStanding // table with no edits, for movement

	mu        sync.RWMutex
	games     []league.GameRecord
	standings []league.TeamStanding
	version   uint64
	lastSeen  time.Time
}

// Standings returns the latest computed table.
func (s *Scenario) Standings() []league.TeamStanding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]league.TeamStanding(nil), s.standings...)
}

// Version is the board version the current standings were computed from.
func (s *Scenario) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns games and standings as of the same board version.
func (s *Scenario) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Scenario) snapshotLocked() Snapshot {
	standings := append([]league.TeamStanding(nil), s.standings...)
	return Snapshot{
		ID:        s.ID,
		Version:   s.version,
		Games:     append([]league.GameRecord(nil), s.games...),
		Standings: standings,
		Movement:  league.Delta(s.projected, standings),
	}
}

// Store holds live scenarios and expires idle ones.
type Store struct {
	season    *dataset.Season
	rules     league.Rules
	ttl       time.Duration
	publisher Publisher
	logger    *slog.Logger
	now       func() time.Time

	mu        sync.Mutex
	scenarios map[string]*Scenario
}

// NewStore creates a store seeded from season. publisher may be nil.
func NewStore(season *dataset.Season, rules league.Rules, ttl time.Duration, publisher Publisher, logger *slog.Logger) *Store {
	return &Store{
		season:    season,
		rules:     rules,
		ttl:       ttl,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
		scenarios: make(map[string]*Scenario),
	}
}

// Create starts a scenario from the season's schedule.
func (st *Store) Create() (*Scenario, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}

	sc := &Scenario{
		ID:       id,
		Board:    schedule.NewBoard(st.season.Games),
		lastSeen: st.now(),
	}
	sc.games = sc.Board.Games()
	sc.standings = league.Compute(st.season.Baseline, sc.games, st.rules)
	sc.projected = sc.standings

	sc.Board.Subscribe(func(games []league.GameRecord) {
		st.recompute(sc, games)
	})

	st.mu.Lock()
	st.scenarios[id] = sc
	n := len(st.scenarios)
	st.mu.Unlock()

	st.logger.Info("Scenario created", "id", id, "active", n)
	return sc, nil
}

// Board notifications arrive in version order, so each recompute simply
// replaces the previous table.
func (st *Store) recompute(sc *Scenario, games []league.GameRecord) {
	table := league.Compute(st.season.Baseline, games, st.rules)

	sc.mu.Lock()
	sc.games = games
	sc.standings = table
	sc.version++
	sc.lastSeen = st.now()
	snap := sc.snapshotLocked()
	sc.mu.Unlock()

	if st.publisher != nil {
		st.publisher.Publish(sc.ID, MessageStandings, snap)
	}
}

// Get returns a scenario and marks it as recently used.
func (st *Store) Get(id string) (*Scenario, error) {
	st.mu.Lock()
	sc, ok := st.scenarios[id]
	st.mu.Unlock()
	if !ok {
		return nil, ErrNotFound
	}
	sc.mu.Lock()
	sc.lastSeen = st.now()
	sc.mu.Unlock()
	return sc, nil
}

// Delete drops a scenario.
func (st *Store) Delete(id string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.scenarios[id]; !ok {
		return ErrNotFound
	}
	delete(st.scenarios, id)
	return nil
}

// Len is the number of live scenarios.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.scenarios)
}

// EvictIdle removes scenarios unused for longer than the TTL.
func (st *Store) EvictIdle() []string {
	cutoff := st.now().Add(-st.ttl)

	st.mu.Lock()
	var evicted []string
	for id, sc := range st.scenarios {
		sc.mu.RLock()
		idle := sc.lastSeen.Before(cutoff)
		sc.mu.RUnlock()
		if idle {
			delete(st.scenarios, id)
			evicted = append(evicted, id)
		}
	}
	remaining := len(st.scenarios)
	st.mu.Unlock()

	if len(evicted) > 0 {
		st.logger.Info("Evicted idle scenarios", "count", len(evicted), "active", remaining)
	}
	return evicted
}

func newID() (string, error) {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
