package scrape

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/albapepper/wer-standings/internal/dataset"
)

const standingsPage = `<html><body>
<h1>Standings</h1>
<table>
  <thead><tr><th>TEAM</th><th>GP</th><th>W</th><th>L</th><th>PF</th><th>PA</th><th>Road Wins</th><th>BP*</th><th>POINTS**</th></tr></thead>
  <tbody>
    <tr><td>Boston Banshees</td><td>4</td><td>3</td><td>1</td><td>120</td><td>80</td><td>2</td><td>3</td><td>15</td></tr>
    <tr><td>Denver  Onyx</td><td>4</td><td>2</td><td>2</td><td>90</td><td>95</td><td>1</td><td>2</td><td>10</td></tr>
  </tbody>
</table>
<table><tr><td>second table is ignored</td></tr></table>
</body></html>`

const schedulePage = `<html><body>
<table>
  <tr><th>DATE</th><th>HOME</th><th>SCORE</th><th>AWAY</th><th>SCORE</th></tr>
  <tr><td>March 22, 2025</td><td>Boston Banshees</td><td>24</td><td>Denver Onyx</td><td>20</td></tr>
  <tr><td>April 5, 2025</td><td>Denver Onyx</td><td>-</td><td>Boston Banshees</td><td>-</td></tr>
</table>
</body></html>`

func newTestSite(t *testing.T) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/standings", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(standingsPage))
	})
	mux.HandleFunc("/2025-schedule", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(schedulePage))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte("<html><body><p>nothing</p></body></html>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestHeaderNames(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"unique", []string{"A", "B"}, []string{"A", "B"}},
		{"score pair", []string{"DATE", "HOME", "SCORE", "AWAY", "SCORE"}, []string{"DATE", "HOME", "SCORE", "AWAY", "SCORE.1"}},
		{"three repeats", []string{"X", "X", "X"}, []string{"X", "X.1", "X.2"}},
		{"blank", []string{"A", ""}, []string{"A", "Unnamed: 1"}},
		{"suffix already present", []string{"X", "X.1", "X"}, []string{"X", "X.1", "X.2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HeaderNames(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("HeaderNames(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFirstTable(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		columns []string
		rows    int
	}{
		{"thead", standingsPage, []string{"TEAM", "GP", "W", "L", "PF", "PA", "Road Wins", "BP*", "POINTS**"}, 2},
		{"th header row", schedulePage, []string{"DATE", "HOME", "SCORE", "AWAY", "SCORE.1"}, 2},
		{"colspan", `<table><tr><th colspan="2">X</th><th>Y</th></tr><tr><td>1</td><td>2</td><td>3</td></tr></table>`, []string{"X", "X.1", "Y"}, 1},
		{"no header", `<table><tr><td>a</td><td>b</td></tr></table>`, []string{"Unnamed: 0", "Unnamed: 1"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := goquery.NewDocumentFromReader(strings.NewReader(tt.html))
			if err != nil {
				t.Fatal(err)
			}
			tbl, err := FirstTable(doc)
			if err != nil {
				t.Fatalf("FirstTable: %v", err)
			}
			if !reflect.DeepEqual(tbl.Columns, tt.columns) {
				t.Errorf("columns = %v, want %v", tbl.Columns, tt.columns)
			}
			if tbl.Len() != tt.rows {
				t.Errorf("rows = %d, want %d", tbl.Len(), tt.rows)
			}
		})
	}
}

func TestFirstTableNormalizesWhitespace(t *testing.T) {
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader(standingsPage))
	tbl, err := FirstTable(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got := tbl.Get("TEAM", "1"); got != "Denver Onyx" {
		t.Errorf("TEAM[1] = %q, want %q", got, "Denver Onyx")
	}
}

func TestFirstTableMissing(t *testing.T) {
	doc, _ := goquery.NewDocumentFromReader(strings.NewReader("<p>no tables</p>"))
	if _, err := FirstTable(doc); !errors.Is(err, ErrNoTable) {
		t.Errorf("err = %v, want ErrNoTable", err)
	}
}

func TestFetchCachesPages(t *testing.T) {
	srv, hits := newTestSite(t)
	c := NewClient(10*time.Minute, 600, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := c.Fetch(ctx, srv.URL+"/standings", srv.URL+"/2025-schedule")
		if err != nil {
			t.Fatalf("Fetch #%d: %v", i+1, err)
		}
		if res.Standings.Len() != 2 || res.Schedule.Len() != 2 {
			t.Fatalf("Fetch #%d: rows = %d/%d, want 2/2", i+1, res.Standings.Len(), res.Schedule.Len())
		}
	}
	// no-store from the origin is overridden, so the second fetch is served
	// from cache.
	if n := atomic.LoadInt32(hits); n != 2 {
		t.Errorf("origin hits = %d, want 2", n)
	}
}

func TestFetchErrors(t *testing.T) {
	srv, _ := newTestSite(t)
	c := NewClient(time.Minute, 600, nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		standings string
		schedule  string
	}{
		{"not found", srv.URL + "/missing", srv.URL + "/2025-schedule"},
		{"no table", srv.URL + "/standings", srv.URL + "/empty"},
		{"missing columns", srv.URL + "/2025-schedule", srv.URL + "/standings"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Fetch(ctx, tt.standings, tt.schedule); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestWriteFilesLoadsAsSeason(t *testing.T) {
	srv, _ := newTestSite(t)
	c := NewClient(time.Minute, 600, nil)
	res, err := c.Fetch(context.Background(), srv.URL+"/standings", srv.URL+"/2025-schedule")
	if err != nil {
		t.Fatal(err)
	}

	dir := filepath.Join(t.TempDir(), "assets")
	written, err := res.WriteFiles(dir)
	if err != nil {
		t.Fatalf("WriteFiles: %v", err)
	}
	if len(written) != 2 {
		t.Fatalf("written = %v, want 2 files", written)
	}

	raw, err := os.ReadFile(filepath.Join(dir, dataset.ScheduleFile))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"SCORE.1":{"0":20,"1":"-"}`) {
		t.Errorf("schedule.json = %s", raw)
	}

	season, err := dataset.LoadFiles(filepath.Join(dir, dataset.ScheduleFile), filepath.Join(dir, dataset.StandingsFile), "")
	if err != nil {
		t.Fatalf("LoadFiles: %v", err)
	}
	if len(season.Games) != 2 {
		t.Fatalf("games = %d, want 2", len(season.Games))
	}
	g := season.Games[0]
	if !g.Happened || g.HomeScore != 24 || g.AwayScore != 20 {
		t.Errorf("game 0 = %+v", g)
	}
	if season.Games[1].Happened {
		t.Error("game 1 should not have happened")
	}
	if len(season.Baseline) != 2 || season.Baseline[0].Team != "Boston Banshees" || season.Baseline[0].Points != 15 {
		t.Errorf("baseline = %+v", season.Baseline)
	}
}
