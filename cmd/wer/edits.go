package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/albapepper/wer-standings/internal/league"
	"github.com/albapepper/wer-standings/internal/schedule"
)

// edit is one hypothetical change from the command line. Score edits carry
// the raw value so the board applies its own input rules.
type edit struct {
	row   int
	side  league.Side
	score *string
}

// parseEdits reads --score ROW:SIDE=N and --try ROW:SIDE values. Scores
// are applied before try toggles, each group in flag order.
func parseEdits(scores, tries []string) ([]edit, error) {
	out := make([]edit, 0, len(scores)+len(tries))
	for _, s := range scores {
		target, value, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("--score %q: want ROW:SIDE=N", s)
		}
		row, side, err := parseTarget(target)
		if err != nil {
			return nil, fmt.Errorf("--score %q: %w", s, err)
		}
		v := value
		out = append(out, edit{row: row, side: side, score: &v})
	}
	for _, s := range tries {
		row, side, err := parseTarget(s)
		if err != nil {
			return nil, fmt.Errorf("--try %q: %w", s, err)
		}
		out = append(out, edit{row: row, side: side})
	}
	return out, nil
}

func parseTarget(s string) (int, league.Side, error) {
	rowText, sideText, ok := strings.Cut(s, ":")
	if !ok {
		return 0, "", fmt.Errorf("want ROW:SIDE")
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return 0, "", fmt.Errorf("row %q is not a number", rowText)
	}
	side, err := league.ParseSide(strings.TrimSpace(sideText))
	if err != nil {
		return 0, "", err
	}
	return row, side, nil
}

func applyEdits(board *schedule.Board, edits []edit) error {
	for _, e := range edits {
		var err error
		if e.score != nil {
			_, err = board.SetScore(e.row, e.side, *e.score)
		} else {
			_, err = board.ToggleBonusPoint(e.row, e.side)
		}
		if err != nil {
			return fmt.Errorf("row %d %s: %w", e.row, e.side, err)
		}
	}
	return nil
}

// editedRows lists each row touched by edits once, in first-edit order.
func editedRows(edits []edit) []int {
	seen := make(map[int]bool, len(edits))
	var rows []int
	for _, e := range edits {
		if !seen[e.row] {
			seen[e.row] = true
			rows = append(rows, e.row)
		}
	}
	return rows
}
