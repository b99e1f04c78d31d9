package main

import (
	"fmt"
	"io"

	"github.com/albapepper/wer-standings/internal/league"
)

func printStandings(w io.Writer, label string, table []league.TeamStanding, moves []league.Movement) {
	fmt.Fprintln(w, label)
	fmt.Fprintf(w, "%2s %-20s %2s %2s %2s %4s %4s %4s %4s %3s %4s",
		"#", "Team", "GP", "W", "L", "PF", "PA", "+/-", "Road", "BP", "Pts")
	if moves != nil {
		fmt.Fprintf(w, " %6s", "Move")
	}
	for i, s := range table {
		fmt.Fprintf(w, "\n%2d %-20s %2d %2d %2d %4d %4d %+4d %4d %3d %4d",
			i+1,
			s.Team,
			s.GamesPlayed,
			s.Wins,
			s.Losses,
			s.PointsFor,
			s.PointsAgainst,
			s.PointDifferential,
			s.RoadWins,
			s.BonusPoints,
			s.Points,
		)
		if moves != nil && i < len(moves) {
			fmt.Fprintf(w, " %6s", movement(moves[i]))
		}
	}
	fmt.Fprintln(w)
}

// movement renders a position change as "^2", "v1" or "-", with the
// points gained appended when non-zero.
func movement(m league.Movement) string {
	var s string
	switch {
	case m.PrevPosition == 0:
		s = "new"
	case m.PrevPosition > m.Position:
		s = fmt.Sprintf("^%d", m.PrevPosition-m.Position)
	case m.PrevPosition < m.Position:
		s = fmt.Sprintf("v%d", m.Position-m.PrevPosition)
	default:
		s = "-"
	}
	if m.Points != 0 {
		s += fmt.Sprintf("%+d", m.Points)
	}
	return s
}

// printResults lists the hypothetical results behind a projected table.
func printResults(w io.Writer, games []league.GameRecord, rows []int) {
	fmt.Fprintln(w, "\nProjected results")
	for _, row := range rows {
		g := games[row]
		fmt.Fprintf(w, "%3d %s%s\n", row, g.ScoreLine(), bonusNote(g))
	}
}

func bonusNote(g league.GameRecord) string {
	switch {
	case g.HomeTryPoint && g.AwayTryPoint:
		return " (T: both)"
	case g.HomeTryPoint:
		return " (T: home)"
	case g.AwayTryPoint:
		return " (T: away)"
	}
	return ""
}

func printSchedule(w io.Writer, games []league.GameRecord) {
	fmt.Fprintf(w, "%3s %-16s %-20s %5s %5s %-20s %s",
		"Row", "Date", "Home", "", "", "Away", "Status")
	for _, g := range games {
		home, away := "-", "-"
		if g.Happened || g.Locked || g.HomeScore != 0 || g.AwayScore != 0 {
			home, away = fmt.Sprint(g.HomeScore), fmt.Sprint(g.AwayScore)
		}
		fmt.Fprintf(w, "\n%3d %-16s %-20s %5s %5s %-20s %s",
			g.Row,
			g.Date,
			g.HomeTeam+tryMark(g.HomeTryPoint),
			home,
			away,
			g.AwayTeam+tryMark(g.AwayTryPoint),
			status(g),
		)
	}
	fmt.Fprintln(w)
}

func tryMark(on bool) string {
	if on {
		return " (T)"
	}
	return ""
}

func status(g league.GameRecord) string {
	switch {
	case g.Happened:
		return "final"
	case g.Locked:
		return "fixed"
	case g.HasWinner():
		return "projected"
	}
	return "open"
}
