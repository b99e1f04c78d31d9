package league

import (
	"reflect"
	"testing"
)

func baselineFixture() []TeamStanding {
	return []TeamStanding{
		{Team: "Boston Banshees", GamesPlayed: 2, Wins: 2, Points: 9, BonusPoints: 1, PointsFor: 60, PointsAgainst: 20, PointDifferential: 40},
		{Team: "Denver Onyx", GamesPlayed: 2, Wins: 1, Losses: 1, Points: 5, BonusPoints: 1, RoadWins: 1},
		{Team: "Chicago Tempest", GamesPlayed: 2, Losses: 2, Points: 1, BonusPoints: 1},
	}
}

func findTeam(t *testing.T, table []TeamStanding, team string) TeamStanding {
	t.Helper()
	for _, s := range table {
		if s.Team == team {
			return s
		}
	}
	t.Fatalf("team %q not in table", team)
	return TeamStanding{}
}

func TestComputeNoGamesReturnsBaseline(t *testing.T) {
	base := baselineFixture()
	got := Compute(base, nil, DefaultRules())
	if !reflect.DeepEqual(got, base) {
		t.Errorf("Compute(no games) = %+v; want %+v", got, base)
	}
}

func TestComputeSkipsTiesAndHappenedGames(t *testing.T) {
	base := baselineFixture()
	games := []GameRecord{
		{HomeTeam: "Boston Banshees", AwayTeam: "Denver Onyx", HomeScore: 17, AwayScore: 17},
		{HomeTeam: "Chicago Tempest", AwayTeam: "Denver Onyx", HomeScore: 0, AwayScore: 0},
		{HomeTeam: "Chicago Tempest", AwayTeam: "Boston Banshees", HomeScore: 3, AwayScore: 50, Happened: true, Locked: true},
	}
	got := Compute(base, games, DefaultRules())
	if !reflect.DeepEqual(got, Compute(base, nil, DefaultRules())) {
		t.Errorf("ties and happened games changed the table: %+v", got)
	}
}

func TestComputeMarginBonus(t *testing.T) {
	cases := []struct {
		name       string
		home, away int
		wantHome   TeamStanding
		wantAway   TeamStanding
	}{
		{
			name: "narrow home win gives away a losing bonus",
			home: 20, away: 15,
			wantHome: TeamStanding{Team: "A", GamesPlayed: 1, Wins: 1, Points: 4, PointsFor: 20, PointsAgainst: 15, PointDifferential: 5},
			wantAway: TeamStanding{Team: "B", GamesPlayed: 1, Losses: 1, Points: 1, BonusPoints: 1, PointsFor: 15, PointsAgainst: 20, PointDifferential: -5},
		},
		{
			name: "wide home win gives no bonus",
			home: 30, away: 10,
			wantHome: TeamStanding{Team: "A", GamesPlayed: 1, Wins: 1, Points: 4, PointsFor: 30, PointsAgainst: 10, PointDifferential: 20},
			wantAway: TeamStanding{Team: "B", GamesPlayed: 1, Losses: 1, PointsFor: 10, PointsAgainst: 30, PointDifferential: -20},
		},
		{
			name: "margin of exactly seven still earns the bonus",
			home: 14, away: 21,
			wantHome: TeamStanding{Team: "A", GamesPlayed: 1, Losses: 1, Points: 1, BonusPoints: 1, PointsFor: 14, PointsAgainst: 21, PointDifferential: -7},
			wantAway: TeamStanding{Team: "B", GamesPlayed: 1, Wins: 1, Points: 4, RoadWins: 1, PointsFor: 21, PointsAgainst: 14, PointDifferential: 7},
		},
		{
			name: "away win by eight",
			home: 10, away: 18,
			wantHome: TeamStanding{Team: "A", GamesPlayed: 1, Losses: 1, PointsFor: 10, PointsAgainst: 18, PointDifferential: -8},
			wantAway: TeamStanding{Team: "B", GamesPlayed: 1, Wins: 1, Points: 4, RoadWins: 1, PointsFor: 18, PointsAgainst: 10, PointDifferential: 8},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			games := []GameRecord{{HomeTeam: "A", AwayTeam: "B", HomeScore: c.home, AwayScore: c.away}}
			got := Compute(nil, games, DefaultRules())
			if h := findTeam(t, got, "A"); h != c.wantHome {
				t.Errorf("home = %+v; want %+v", h, c.wantHome)
			}
			if a := findTeam(t, got, "B"); a != c.wantAway {
				t.Errorf("away = %+v; want %+v", a, c.wantAway)
			}
		})
	}
}

func TestComputeTryBonusIsPerSide(t *testing.T) {
	games := []GameRecord{
		{HomeTeam: "A", AwayTeam: "B", HomeScore: 40, AwayScore: 10, HomeTryPoint: true},
		{HomeTeam: "C", AwayTeam: "D", HomeScore: 40, AwayScore: 10, AwayTryPoint: true},
	}
	got := Compute(nil, games, DefaultRules())

	if a := findTeam(t, got, "A"); a.Points != 5 || a.BonusPoints != 1 {
		t.Errorf("A = %+v; want 5 points, 1 bp", a)
	}
	if b := findTeam(t, got, "B"); b.Points != 0 || b.BonusPoints != 0 {
		t.Errorf("B got the home side's try bonus: %+v", b)
	}
	if c := findTeam(t, got, "C"); c.Points != 4 || c.BonusPoints != 0 {
		t.Errorf("C got the away side's try bonus: %+v", c)
	}
	if d := findTeam(t, got, "D"); d.Points != 1 || d.BonusPoints != 1 {
		t.Errorf("D = %+v; want 1 point, 1 bp", d)
	}
}

func TestComputePointsEqualWinsPlusBonus(t *testing.T) {
	games := []GameRecord{
		{HomeTeam: "A", AwayTeam: "B", HomeScore: 22, AwayScore: 20, AwayTryPoint: true},
		{HomeTeam: "B", AwayTeam: "C", HomeScore: 5, AwayScore: 31, HomeTryPoint: true, AwayTryPoint: true},
		{HomeTeam: "C", AwayTeam: "A", HomeScore: 12, AwayScore: 15},
		{HomeTeam: "A", AwayTeam: "C", HomeScore: 9, AwayScore: 9},
	}
	for _, s := range Compute(nil, games, DefaultRules()) {
		if want := 4*s.Wins + s.BonusPoints; s.Points != want {
			t.Errorf("%s: points = %d; want 4*%d + %d = %d", s.Team, s.Points, s.Wins, s.BonusPoints, want)
		}
	}
}

func TestComputeUnknownTeamsStartAtZero(t *testing.T) {
	base := baselineFixture()
	games := []GameRecord{{HomeTeam: "Expansion", AwayTeam: "Boston Banshees", HomeScore: 10, AwayScore: 12}}
	got := Compute(base, games, DefaultRules())

	if len(got) != len(base)+1 {
		t.Fatalf("len = %d; want %d", len(got), len(base)+1)
	}
	exp := findTeam(t, got, "Expansion")
	want := TeamStanding{Team: "Expansion", GamesPlayed: 1, Losses: 1, Points: 1, BonusPoints: 1, PointsFor: 10, PointsAgainst: 12, PointDifferential: -2}
	if exp != want {
		t.Errorf("Expansion = %+v; want %+v", exp, want)
	}
	bos := findTeam(t, got, "Boston Banshees")
	if bos.Wins != 3 || bos.RoadWins != 1 || bos.Points != 13 {
		t.Errorf("Boston = %+v; want 3 wins, 1 road win, 13 points", bos)
	}
}

func TestComputeDoesNotMutateInputs(t *testing.T) {
	base := baselineFixture()
	games := []GameRecord{{HomeTeam: "Denver Onyx", AwayTeam: "Chicago Tempest", HomeScore: 30, AwayScore: 3}}
	baseCopy := append([]TeamStanding(nil), base...)
	gamesCopy := append([]GameRecord(nil), games...)

	Compute(base, games, DefaultRules())

	if !reflect.DeepEqual(base, baseCopy) {
		t.Errorf("baseline mutated: %+v", base)
	}
	if !reflect.DeepEqual(games, gamesCopy) {
		t.Errorf("games mutated: %+v", games)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	base := []TeamStanding{{Team: "A"}, {Team: "B"}, {Team: "C"}, {Team: "D"}}
	games := []GameRecord{
		{HomeTeam: "A", AwayTeam: "B", HomeScore: 10, AwayScore: 5},
		{HomeTeam: "C", AwayTeam: "D", HomeScore: 10, AwayScore: 5},
	}
	first := Compute(base, games, DefaultRules())
	for i := 0; i < 20; i++ {
		if got := Compute(base, games, DefaultRules()); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d = %+v; want %+v", i, got, first)
		}
	}
	// A and C tie on everything; baseline order decides.
	if first[0].Team != "A" || first[1].Team != "C" {
		t.Errorf("order = %v, %v; want A, C", first[0].Team, first[1].Team)
	}
}

func TestRank(t *testing.T) {
	cases := []struct {
		name  string
		table []TeamStanding
		want  []string
	}{
		{
			name: "points then bonus points",
			table: []TeamStanding{
				{Team: "eight-five", Points: 8, BonusPoints: 5},
				{Team: "ten-one", Points: 10, BonusPoints: 1},
				{Team: "ten-two", Points: 10, BonusPoints: 2},
			},
			want: []string{"ten-two", "ten-one", "eight-five"},
		},
		{
			name: "road wins break a bonus point tie",
			table: []TeamStanding{
				{Team: "home", Points: 9, BonusPoints: 1, RoadWins: 0},
				{Team: "road", Points: 9, BonusPoints: 1, RoadWins: 2},
			},
			want: []string{"road", "home"},
		},
		{
			name: "exact ties are stable",
			table: []TeamStanding{
				{Team: "first", Points: 4},
				{Team: "second", Points: 4},
				{Team: "third", Points: 4},
			},
			want: []string{"first", "second", "third"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			Rank(c.table)
			var got []string
			for _, s := range c.table {
				got = append(got, s.Team)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Rank = %v; want %v", got, c.want)
			}
		})
	}
}

func TestComputeCustomMargin(t *testing.T) {
	rules := DefaultRules()
	rules.LosingBonusMargin = 5
	games := []GameRecord{{HomeTeam: "A", AwayTeam: "B", HomeScore: 27, AwayScore: 21}}
	if b := findTeam(t, Compute(nil, games, rules), "B"); b.BonusPoints != 0 {
		t.Errorf("B = %+v; margin 6 > 5 should earn nothing", b)
	}
}

func TestDelta(t *testing.T) {
	prev := []TeamStanding{{Team: "A", Points: 10, Wins: 2}, {Team: "B", Points: 8, Wins: 2}}
	next := []TeamStanding{{Team: "B", Points: 12, Wins: 3}, {Team: "A", Points: 10, Wins: 2}, {Team: "C", Points: 1}}

	got := Delta(prev, next)
	want := []Movement{
		{Team: "B", Position: 1, PrevPosition: 2, Points: 4, Wins: 1},
		{Team: "A", Position: 2, PrevPosition: 1},
		{Team: "C", Position: 3, Points: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Delta = %+v; want %+v", got, want)
	}
}

func TestGameRecordEdits(t *testing.T) {
	g := GameRecord{HomeTeam: "A", AwayTeam: "B"}
	g2 := g.WithScore(Away, 12).WithTryPointToggled(Home)
	if g.AwayScore != 0 || g.HomeTryPoint {
		t.Errorf("original modified: %+v", g)
	}
	if g2.AwayScore != 12 || !g2.HomeTryPoint || g2.AwayTryPoint {
		t.Errorf("copy = %+v", g2)
	}
	if got := g2.ScoreLine(); got != "A 0 - 12 B" {
		t.Errorf("ScoreLine = %q", got)
	}
}

func TestParseSide(t *testing.T) {
	for in, want := range map[string]Side{"home": Home, "AWAY": Away, " Home ": Home} {
		got, err := ParseSide(in)
		if err != nil || got != want {
			t.Errorf("ParseSide(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseSide("neutral"); err == nil {
		t.Errorf("ParseSide(neutral) succeeded")
	}
}
