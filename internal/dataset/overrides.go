package dataset

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/albapepper/wer-standings/internal/league"
)

// Override corrects one schedule row after load. Unset fields keep the
// dataset's value. An overridden row is always locked.
type Override struct {
	HomeScore    *int   `json:"home_score,omitempty"`
	AwayScore    *int   `json:"away_score,omitempty"`
	HomeTryPoint *bool  `json:"home_try_point,omitempty"`
	AwayTryPoint *bool  `json:"away_try_point,omitempty"`
	Happened     *bool  `json:"happened,omitempty"`
	Note         string `json:"note,omitempty"`
}

// Overrides maps schedule row index to its correction.
type Overrides map[int]Override

// ParseOverrides decodes {"<row>": {...}}.
func ParseOverrides(data []byte) (Overrides, error) {
	var raw map[string]Override
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse overrides: %w", err)
	}
	out := make(Overrides, len(raw))
	for k, v := range raw {
		row, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("parse overrides: row key %q is not a number", k)
		}
		out[row] = v
	}
	return out, nil
}

// Apply returns a copy of games with every override applied. A row outside
// the schedule is an error.
func (o Overrides) Apply(games []league.GameRecord) ([]league.GameRecord, error) {
	out := append([]league.GameRecord(nil), games...)

	rows := make([]int, 0, len(o))
	for row := range o {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	for _, row := range rows {
		if row < 0 || row >= len(out) {
			return nil, fmt.Errorf("override for row %d: schedule has %d rows", row, len(out))
		}
		ov := o[row]
		g := out[row]
		if ov.HomeScore != nil {
			g.HomeScore = *ov.HomeScore
		}
		if ov.AwayScore != nil {
			g.AwayScore = *ov.AwayScore
		}
		if ov.HomeTryPoint != nil {
			g.HomeTryPoint = *ov.HomeTryPoint
		}
		if ov.AwayTryPoint != nil {
			g.AwayTryPoint = *ov.AwayTryPoint
		}
		if ov.Happened != nil {
			g.Happened = *ov.Happened
		}
		g.Locked = true
		out[row] = g
	}
	return out, nil
}
