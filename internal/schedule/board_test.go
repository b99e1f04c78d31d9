package schedule

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/albapepper/wer-standings/internal/league"
)

func fixtureGames() []league.GameRecord {
	return []league.GameRecord{
		{Row: 0, HomeTeam: "Boston Banshees", AwayTeam: "New York Exiles", HomeScore: 27, AwayScore: 24, Happened: true, Locked: true},
		{Row: 1, HomeTeam: "Denver Onyx", AwayTeam: "Chicago Tempest"},
		{Row: 2, HomeTeam: "Bay Breakers", AwayTeam: "Twin Cities Gemini"},
	}
}

func TestParseScore(t *testing.T) {
	cases := map[string]int{
		"20":   20,
		" 7 ":  7,
		"":     0,
		"abc":  0,
		"-3":   0,
		"12.5": 0,
		"0":    0,
	}
	for in, want := range cases {
		if got := ParseScore(in); got != want {
			t.Errorf("ParseScore(%q) = %d; want %d", in, got, want)
		}
	}
}

func TestSetScoreTouchesOnlyThatRow(t *testing.T) {
	b := NewBoard(fixtureGames())
	before := b.Games()

	after, err := b.SetScore(1, league.Home, "20")
	if err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	if after[1].HomeScore != 20 || after[1].AwayScore != 0 {
		t.Errorf("row 1 = %+v", after[1])
	}
	for _, i := range []int{0, 2} {
		if !reflect.DeepEqual(after[i], before[i]) {
			t.Errorf("row %d changed: %+v -> %+v", i, before[i], after[i])
		}
	}
	if before[1].HomeScore != 0 {
		t.Errorf("earlier snapshot was mutated: %+v", before[1])
	}
	if !reflect.DeepEqual(b.Games(), after) {
		t.Errorf("Games() does not match returned list")
	}
}

func TestSetScoreInvalidInputIsZero(t *testing.T) {
	b := NewBoard(fixtureGames())
	if _, err := b.SetScore(2, league.Away, "15"); err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	games, err := b.SetScore(2, league.Away, "")
	if err != nil {
		t.Fatalf("SetScore: %v", err)
	}
	if games[2].AwayScore != 0 {
		t.Errorf("AwayScore = %d; want 0", games[2].AwayScore)
	}
}

func TestToggleBonusPoint(t *testing.T) {
	b := NewBoard(fixtureGames())
	games, err := b.ToggleBonusPoint(1, league.Away)
	if err != nil {
		t.Fatalf("ToggleBonusPoint: %v", err)
	}
	if !games[1].AwayTryPoint || games[1].HomeTryPoint {
		t.Errorf("after first toggle = %+v", games[1])
	}
	games, _ = b.ToggleBonusPoint(1, league.Away)
	if games[1].AwayTryPoint {
		t.Errorf("after second toggle = %+v", games[1])
	}
}

func TestEditErrors(t *testing.T) {
	b := NewBoard(fixtureGames())
	cases := []struct {
		name string
		row  int
		want error
	}{
		{"locked row", 0, ErrLocked},
		{"negative row", -1, ErrRowOutOfRange},
		{"past the end", 3, ErrRowOutOfRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := b.SetScore(c.row, league.Home, "5"); !errors.Is(err, c.want) {
				t.Errorf("SetScore err = %v; want %v", err, c.want)
			}
			if _, err := b.ToggleBonusPoint(c.row, league.Home); !errors.Is(err, c.want) {
				t.Errorf("ToggleBonusPoint err = %v; want %v", err, c.want)
			}
		})
	}
	if b.Version() != 0 {
		t.Errorf("Version = %d after failed edits; want 0", b.Version())
	}
}

func TestSubscribeReceivesFullList(t *testing.T) {
	b := NewBoard(fixtureGames())
	var got [][]league.GameRecord
	unsubscribe := b.Subscribe(func(games []league.GameRecord) {
		got = append(got, games)
	})

	b.SetScore(1, league.Home, "20")
	b.ToggleBonusPoint(2, league.Home)
	b.SetScore(0, league.Home, "1") // locked, no notification

	if len(got) != 2 {
		t.Fatalf("notifications = %d; want 2", len(got))
	}
	if len(got[1]) != 3 || got[1][1].HomeScore != 20 || !got[1][2].HomeTryPoint {
		t.Errorf("second notification = %+v", got[1])
	}

	unsubscribe()
	b.SetScore(1, league.Away, "3")
	if len(got) != 2 {
		t.Errorf("notified after unsubscribe")
	}
}

func TestListenerCopiesAreIndependent(t *testing.T) {
	b := NewBoard(fixtureGames())
	b.Subscribe(func(games []league.GameRecord) { games[1].HomeScore = 99 })
	var seen int
	b.Subscribe(func(games []league.GameRecord) { seen = games[1].HomeScore })

	b.SetScore(1, league.Home, "5")
	if seen != 5 {
		t.Errorf("second listener saw %d; want 5", seen)
	}
	if got := b.Games()[1].HomeScore; got != 5 {
		t.Errorf("board state = %d; want 5", got)
	}
}

func TestRowsHideLocked(t *testing.T) {
	b := NewBoard(fixtureGames())
	if got := len(b.Rows(false)); got != 3 {
		t.Errorf("Rows(false) = %d rows; want 3", got)
	}
	open := b.Rows(true)
	if len(open) != 2 || open[0].Row != 1 || open[1].Row != 2 {
		t.Errorf("Rows(true) = %+v", open)
	}
	if b.Len() != 3 {
		t.Errorf("hiding rows changed the board: Len = %d", b.Len())
	}
}

func TestUpdateAtKeepsIdentity(t *testing.T) {
	b := NewBoard(fixtureGames())
	games, err := b.UpdateAt(1, league.GameRecord{HomeTeam: "Someone Else", HomeScore: 10, AwayScore: 12, AwayTryPoint: true, Locked: true})
	if err != nil {
		t.Fatalf("UpdateAt: %v", err)
	}
	want := league.GameRecord{Row: 1, HomeTeam: "Denver Onyx", AwayTeam: "Chicago Tempest", HomeScore: 10, AwayScore: 12, AwayTryPoint: true}
	if !reflect.DeepEqual(games[1], want) {
		t.Errorf("row 1 = %+v; want %+v", games[1], want)
	}
}

func TestReset(t *testing.T) {
	b := NewBoard(fixtureGames())
	b.SetScore(1, league.Home, "20")
	var notified bool
	b.Subscribe(func([]league.GameRecord) { notified = true })

	games := b.Reset()
	if !reflect.DeepEqual(games, fixtureGames()) {
		t.Errorf("Reset = %+v", games)
	}
	if !notified {
		t.Errorf("Reset did not notify")
	}
	if b.Version() != 2 {
		t.Errorf("Version = %d; want 2", b.Version())
	}
}

func TestNewBoardCopiesInput(t *testing.T) {
	in := fixtureGames()
	b := NewBoard(in)
	in[1].HomeScore = 40
	if b.Games()[1].HomeScore != 0 {
		t.Errorf("board aliases its input")
	}
}

func TestConcurrentEditsAreSerialized(t *testing.T) {
	b := NewBoard(fixtureGames())
	var mu sync.Mutex
	var versions []int
	b.Subscribe(func(games []league.GameRecord) {
		mu.Lock()
		versions = append(versions, games[1].HomeScore)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.ToggleBonusPoint(2, league.Home)
		}()
	}
	wg.Wait()

	if b.Version() != 50 {
		t.Errorf("Version = %d; want 50", b.Version())
	}
	if len(versions) != 50 {
		t.Errorf("notifications = %d; want 50", len(versions))
	}
	if b.Games()[2].HomeTryPoint {
		t.Errorf("even number of toggles left the flag set")
	}
}
