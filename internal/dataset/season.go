// Package dataset loads the bundled schedule and preseason standings and
// normalizes their column-oriented JSON into row-structured records.
package dataset

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/albapepper/wer-standings/internal/league"
)

// NotPlayed is the score cell marker for a game without a result.
const NotPlayed = "-"

// Schedule columns.
const (
	ColDate      = "DATE"
	ColHome      = "HOME"
	ColHomeScore = "SCORE"
	ColAway      = "AWAY"
	ColAwayScore = "SCORE.1"
)

// Standings columns.
const (
	ColTeam          = "TEAM"
	ColGamesPlayed   = "GP"
	ColWins          = "W"
	ColLosses        = "L"
	ColPointsFor     = "PF"
	ColPointsAgainst = "PA"
	ColDifferential  = "+/-"
	ColRoadWins      = "Road Wins"
	ColBonusPoints   = "BP*"
	ColPoints        = "POINTS**"
)

// Bundled file names under assets/.
const (
	ScheduleFile  = "schedule.json"
	StandingsFile = "standings.json"
	OverridesFile = "overrides.json"
)

//go:embed assets/*.json
var assets embed.FS

// Season is the normalized dataset: one game per schedule row in row order,
// and the preseason table.
type Season struct {
	Games    []league.GameRecord
	Baseline []league.TeamStanding
}

// Teams lists baseline teams in table order.
func (s *Season) Teams() []string {
	out := make([]string, 0, len(s.Baseline))
	for _, b := range s.Baseline {
		out = append(out, b.Team)
	}
	return out
}

// LoadEmbedded parses the bundled datasets.
func LoadEmbedded() (*Season, error) {
	return LoadFiles("", "", "")
}

// LoadFiles parses datasets from disk. An empty path selects the bundled
// copy of that file.
func LoadFiles(schedulePath, standingsPath, overridesPath string) (*Season, error) {
	sched, err := readAsset(schedulePath, ScheduleFile)
	if err != nil {
		return nil, err
	}
	stand, err := readAsset(standingsPath, StandingsFile)
	if err != nil {
		return nil, err
	}
	over, err := readAsset(overridesPath, OverridesFile)
	if err != nil {
		return nil, err
	}
	return Parse(sched, stand, over)
}

func readAsset(path, bundled string) ([]byte, error) {
	if path == "" {
		b, err := assets.ReadFile("assets/" + bundled)
		if err != nil {
			return nil, fmt.Errorf("read bundled %s: %w", bundled, err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return b, nil
}

// Parse builds a Season from raw schedule, standings and overrides JSON.
// overrides may be empty.
func Parse(scheduleJSON, standingsJSON, overridesJSON []byte) (*Season, error) {
	var sched, stand Table
	if err := json.Unmarshal(scheduleJSON, &sched); err != nil {
		return nil, fmt.Errorf("parse schedule: %w", err)
	}
	if err := json.Unmarshal(standingsJSON, &stand); err != nil {
		return nil, fmt.Errorf("parse standings: %w", err)
	}

	games := GamesFromTable(&sched)
	if len(strings.TrimSpace(string(overridesJSON))) > 0 {
		overrides, err := ParseOverrides(overridesJSON)
		if err != nil {
			return nil, err
		}
		if games, err = overrides.Apply(games); err != nil {
			return nil, err
		}
	}

	return &Season{
		Games:    games,
		Baseline: BaselineFromTable(&stand),
	}, nil
}

// GamesFromTable derives one GameRecord per schedule row. A numeric result
// in both score cells marks the game as happened and locked.
func GamesFromTable(t *Table) []league.GameRecord {
	keys := t.RowKeys()
	games := make([]league.GameRecord, 0, len(keys))
	for i, k := range keys {
		g := league.GameRecord{
			Row:      i,
			Date:     strings.TrimSpace(string(t.Get(ColDate, k))),
			HomeTeam: strings.TrimSpace(string(t.Get(ColHome, k))),
			AwayTeam: strings.TrimSpace(string(t.Get(ColAway, k))),
		}
		g.Kickoff = ParseKickoff(g.Date)

		hs, hok := t.Get(ColHomeScore, k).Int()
		as, aok := t.Get(ColAwayScore, k).Int()
		if hok && aok {
			g.HomeScore, g.AwayScore = hs, as
			g.Happened, g.Locked = true, true
		}
		games = append(games, g)
	}
	return games
}

// ParseKickoff reads a schedule date in whatever format the source site
// uses. Unparseable dates yield nil.
func ParseKickoff(date string) *time.Time {
	if date == "" {
		return nil
	}
	ts, err := dateparse.ParseIn(date, time.UTC)
	if err != nil {
		return nil
	}
	return &ts
}

// BaselineFromTable reads the preseason table. Missing or malformed numbers
// read as zero; the differential falls back to PF-PA.
func BaselineFromTable(t *Table) []league.TeamStanding {
	hasDiff := t.HasColumn(ColDifferential)
	keys := t.RowKeys()
	out := make([]league.TeamStanding, 0, len(keys))
	for _, k := range keys {
		team := strings.TrimSpace(string(t.Get(ColTeam, k)))
		if team == "" {
			continue
		}
		num := func(col string) int {
			n, _ := t.Get(col, k).Int()
			return n
		}
		s := league.TeamStanding{
			Team:          team,
			GamesPlayed:   num(ColGamesPlayed),
			Wins:          num(ColWins),
			Losses:        num(ColLosses),
			PointsFor:     num(ColPointsFor),
			PointsAgainst: num(ColPointsAgainst),
			RoadWins:      num(ColRoadWins),
			BonusPoints:   num(ColBonusPoints),
			Points:        num(ColPoints),
		}
		if hasDiff {
			s.PointDifferential = num(ColDifferential)
		} else {
			s.PointDifferential = s.PointsFor - s.PointsAgainst
		}
		out = append(out, s)
	}
	return out
}

// ScheduleTable is the inverse of GamesFromTable, used when writing a
// schedule back out. Unlocked games are written as not played.
func ScheduleTable(games []league.GameRecord) *Table {
	records := make([][]string, 0, len(games))
	for _, g := range games {
		hs, as := NotPlayed, NotPlayed
		if g.Locked {
			hs, as = strconv.Itoa(g.HomeScore), strconv.Itoa(g.AwayScore)
		}
		records = append(records, []string{g.Date, g.HomeTeam, hs, g.AwayTeam, as})
	}
	return NewTable([]string{ColDate, ColHome, ColHomeScore, ColAway, ColAwayScore}, records)
}
