// Package league holds the game and standings types and the standings fold
// used to project a table from hypothetical results.
package league

import (
	"fmt"
	"strings"
	"time"
)

// Side identifies the home or away half of a game.
type Side string

const (
	Home Side = "home"
	Away Side = "away"
)

// ParseSide accepts "home"/"away" in any case.
func ParseSide(s string) (Side, error) {
	switch Side(strings.ToLower(strings.TrimSpace(s))) {
	case Home:
		return Home, nil
	case Away:
		return Away, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// GameRecord is one scheduled matchup. Exactly one exists per schedule row.
type GameRecord struct {
	Row      int        `json:"row"`
	Date     string     `json:"date"`
	Kickoff  *time.Time `json:"kickoff,omitempty"`
	HomeTeam string     `json:"home_team"`
	AwayTeam string     `json:"away_team"`

	HomeScore    int  `json:"home_score"`
	AwayScore    int  `json:"away_score"`
	HomeTryPoint bool `json:"home_try_point"`
	AwayTryPoint bool `json:"away_try_point"`

	// Happened is set when the dataset already recorded a real result,
	// which the baseline table is assumed to include.
	Happened bool `json:"happened"`
	// Locked rows are shown read-only and refuse edits.
	Locked bool `json:"locked"`
}

// HasWinner reports whether the game is decided (ties count as no result).
func (g GameRecord) HasWinner() bool {
	return g.HomeScore != g.AwayScore
}

// HomeWins reports whether the home side scored more.
func (g GameRecord) HomeWins() bool {
	return g.HomeScore > g.AwayScore
}

// WithScore returns a copy with the given side's score replaced.
func (g GameRecord) WithScore(side Side, score int) GameRecord {
	if side == Away {
		g.AwayScore = score
	} else {
		g.HomeScore = score
	}
	return g
}

// WithTryPointToggled returns a copy with the given side's try flag flipped.
func (g GameRecord) WithTryPointToggled(side Side) GameRecord {
	if side == Away {
		g.AwayTryPoint = !g.AwayTryPoint
	} else {
		g.HomeTryPoint = !g.HomeTryPoint
	}
	return g
}

// ScoreLine renders "Home 20 - 15 Away".
func (g GameRecord) ScoreLine() string {
	return fmt.Sprintf("%s %d - %d %s", g.HomeTeam, g.HomeScore, g.AwayScore, g.AwayTeam)
}

// TeamStanding is one row of the table. All counters are derived by
// Compute; callers never patch them directly.
type TeamStanding struct {
	Team              string `json:"team"`
	GamesPlayed       int    `json:"gp"`
	Wins              int    `json:"w"`
	Losses            int    `json:"l"`
	PointsFor         int    `json:"pf"`
	PointsAgainst     int    `json:"pa"`
	PointDifferential int    `json:"diff"`
	RoadWins          int    `json:"road_wins"`
	BonusPoints       int    `json:"bp"`
	Points            int    `json:"points"`
}

// Rules are the competition's table points.
type Rules struct {
	WinPoints         int
	LosingBonusMargin int
	LosingBonusPoints int
	TryBonusPoints    int
}

// DefaultRules: 4 for a win, 1 for losing by 7 or fewer, 1 for four tries.
func DefaultRules() Rules {
	return Rules{
		WinPoints:         4,
		LosingBonusMargin: 7,
		LosingBonusPoints: 1,
		TryBonusPoints:    1,
	}
}
