package league

import "sort"

// Compute folds the undecided-in-baseline games into a copy of the baseline
// and returns the ranked table.
//
// Only games with Happened == false and a winner are counted; results that
// already happened are assumed to be in the baseline. Teams that appear in a
// game but not in the baseline start from zero and are appended after the
// baseline teams in order of first appearance. Neither input is modified.
func Compute(baseline []TeamStanding, games []GameRecord, rules Rules) []TeamStanding {
	table := make([]TeamStanding, 0, len(baseline))
	index := make(map[string]int, len(baseline))
	for _, b := range baseline {
		if _, dup := index[b.Team]; dup {
			continue
		}
		index[b.Team] = len(table)
		table = append(table, b)
	}

	entry := func(team string) *TeamStanding {
		i, ok := index[team]
		if !ok {
			i = len(table)
			index[team] = i
			table = append(table, TeamStanding{Team: team})
		}
		return &table[i]
	}

	for _, g := range games {
		if g.Happened || !g.HasWinner() {
			continue
		}
		// Resolve both before taking pointers; entry may grow the slice.
		entry(g.HomeTeam)
		entry(g.AwayTeam)
		home, away := entry(g.HomeTeam), entry(g.AwayTeam)
		applyResult(home, away, g, rules)
	}

	Rank(table)
	return table
}

func applyResult(home, away *TeamStanding, g GameRecord, rules Rules) {
	home.GamesPlayed++
	away.GamesPlayed++

	home.PointsFor += g.HomeScore
	home.PointsAgainst += g.AwayScore
	away.PointsFor += g.AwayScore
	away.PointsAgainst += g.HomeScore

	diff := g.HomeScore - g.AwayScore
	home.PointDifferential += diff
	away.PointDifferential -= diff

	winner, loser := home, away
	if !g.HomeWins() {
		winner, loser = away, home
		away.RoadWins++
	}
	winner.Wins++
	winner.Points += rules.WinPoints
	loser.Losses++

	margin := diff
	if margin < 0 {
		margin = -margin
	}
	if margin <= rules.LosingBonusMargin {
		loser.BonusPoints += rules.LosingBonusPoints
		loser.Points += rules.LosingBonusPoints
	}

	if g.HomeTryPoint {
		home.BonusPoints += rules.TryBonusPoints
		home.Points += rules.TryBonusPoints
	}
	if g.AwayTryPoint {
		away.BonusPoints += rules.TryBonusPoints
		away.Points += rules.TryBonusPoints
	}
}

// Rank sorts a table in place: points, then bonus points, then road wins,
// all descending. Exact ties keep their input order.
func Rank(table []TeamStanding) {
	sort.SliceStable(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.BonusPoints != b.BonusPoints {
			return a.BonusPoints > b.BonusPoints
		}
		return a.RoadWins > b.RoadWins
	})
}

// Movement is how far a team moved between two computed tables.
type Movement struct {
	Team         string `json:"team"`
	Position     int    `json:"position"`
	PrevPosition int    `json:"prev_position"`
	Points       int    `json:"points_delta"`
	Wins         int    `json:"wins_delta"`
}

// Delta compares a projected table against the one it was projected from.
// Positions are 1-based; teams missing from prev get PrevPosition 0.
func Delta(prev, next []TeamStanding) []Movement {
	before := make(map[string]int, len(prev))
	for i, s := range prev {
		before[s.Team] = i
	}
	out := make([]Movement, 0, len(next))
	for i, s := range next {
		m := Movement{Team: s.Team, Position: i + 1, Points: s.Points, Wins: s.Wins}
		if j, ok := before[s.Team]; ok {
			m.PrevPosition = j + 1
			m.Points -= prev[j].Points
			m.Wins -= prev[j].Wins
		}
		out = append(out, m)
	}
	return out
}
