// Package schedule holds the editable game list behind one schedule view.
//
// A Board never mutates a slice it has handed out: every edit builds a new
// list with the changed record swapped in, then passes the full list to the
// subscribers.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/albapepper/wer-standings/internal/league"
)

var (
	// ErrRowOutOfRange is returned for an index outside the schedule.
	ErrRowOutOfRange = errors.New("schedule row out of range")
	// ErrLocked is returned when editing a row whose result is fixed.
	ErrLocked = errors.New("schedule row is locked")
)

// Listener receives the complete game list after every change.
type Listener func(games []league.GameRecord)

// Board is the game list for one schedule view. Safe for concurrent use.
// Edits are applied and announced one at a time, so listeners see lists in
// version order. A listener must not edit the board it listens to.
type Board struct {
	writeMu   sync.Mutex
	mu        sync.RWMutex
	initial   []league.GameRecord
	games     []league.GameRecord
	version   uint64
	listeners map[int]Listener
	nextID    int
}

// NewBoard copies games as the starting state.
func NewBoard(games []league.GameRecord) *Board {
	initial := append([]league.GameRecord(nil), games...)
	return &Board{
		initial:   initial,
		games:     initial,
		listeners: make(map[int]Listener),
	}
}

// Games returns a copy of the current list.
func (b *Board) Games() []league.GameRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]league.GameRecord(nil), b.games...)
}

// Rows returns the rows to display. hideLocked drops rows with a fixed
// result; it does not change the list the standings are computed from.
func (b *Board) Rows(hideLocked bool) []league.GameRecord {
	games := b.Games()
	if !hideLocked {
		return games
	}
	out := games[:0]
	for _, g := range games {
		if !g.Locked {
			out = append(out, g)
		}
	}
	return out
}

// Len is the number of rows.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.games)
}

// Version counts the edits applied so far.
func (b *Board) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Subscribe registers fn for change notifications. The returned func
// removes it.
func (b *Board) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.listeners, id)
		b.mu.Unlock()
	}
}

// ParseScore reads a score input. Blank, malformed or negative input is 0.
func ParseScore(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// SetScore sets one side's score from raw input and returns the new list.
func (b *Board) SetScore(row int, side league.Side, raw string) ([]league.GameRecord, error) {
	score := ParseScore(raw)
	return b.edit(row, func(g league.GameRecord) league.GameRecord {
		return g.WithScore(side, score)
	})
}

// ToggleBonusPoint flips one side's try bonus flag and returns the new list.
func (b *Board) ToggleBonusPoint(row int, side league.Side) ([]league.GameRecord, error) {
	return b.edit(row, func(g league.GameRecord) league.GameRecord {
		return g.WithTryPointToggled(side)
	})
}

// UpdateAt replaces the record at row. The replacement keeps the row's
// identity (teams, date, lock state) and only its result fields are taken.
func (b *Board) UpdateAt(row int, next league.GameRecord) ([]league.GameRecord, error) {
	return b.edit(row, func(g league.GameRecord) league.GameRecord {
		g.HomeScore, g.AwayScore = next.HomeScore, next.AwayScore
		g.HomeTryPoint, g.AwayTryPoint = next.HomeTryPoint, next.AwayTryPoint
		return g
	})
}

// Reset restores the starting state and notifies subscribers.
func (b *Board) Reset() []league.GameRecord {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	b.mu.Lock()
	b.games = b.initial
	b.version++
	snapshot, listeners := b.snapshotLocked()
	b.mu.Unlock()

	notify(listeners, snapshot)
	return snapshot
}

func (b *Board) edit(row int, fn func(league.GameRecord) league.GameRecord) ([]league.GameRecord, error) {
	b.writeMu.Lock()
	defer b.writeMu.Unlock()

	b.mu.Lock()
	if row < 0 || row >= len(b.games) {
		n := len(b.games)
		b.mu.Unlock()
		return nil, fmt.Errorf("row %d of %d: %w", row, n, ErrRowOutOfRange)
	}
	if b.games[row].Locked {
		b.mu.Unlock()
		return nil, fmt.Errorf("row %d: %w", row, ErrLocked)
	}

	next := make([]league.GameRecord, len(b.games))
	copy(next, b.games)
	next[row] = fn(next[row])
	b.games = next
	b.version++
	snapshot, listeners := b.snapshotLocked()
	b.mu.Unlock()

	notify(listeners, snapshot)
	return snapshot, nil
}

func (b *Board) snapshotLocked() ([]league.GameRecord, []Listener) {
	snapshot := append([]league.GameRecord(nil), b.games...)
	listeners := make([]Listener, 0, len(b.listeners))
	for id := 0; id < b.nextID; id++ {
		if fn, ok := b.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	return snapshot, listeners
}

// Listeners get their own copy so one cannot disturb another.
func notify(listeners []Listener, games []league.GameRecord) {
	for _, fn := range listeners {
		fn(append([]league.GameRecord(nil), games...))
	}
}
