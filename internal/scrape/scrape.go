package scrape

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"github.com/albapepper/wer-standings/internal/dataset"
)

// ErrNoTable means a page has no <table>.
var ErrNoTable = errors.New("no table found")

// Required columns per page. A refresh that loses any of these would
// produce datasets the loader cannot use.
var (
	scheduleColumns  = []string{dataset.ColDate, dataset.ColHome, dataset.ColHomeScore, dataset.ColAway, dataset.ColAwayScore}
	standingsColumns = []string{dataset.ColTeam}
)

// Result holds both refreshed tables.
type Result struct {
	Standings *dataset.Table
	Schedule  *dataset.Table
}

// Fetch downloads and parses both pages concurrently.
func (c *Client) Fetch(ctx context.Context, standingsURL, scheduleURL string) (*Result, error) {
	var res Result
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := c.fetchTable(ctx, standingsURL, standingsColumns)
		if err != nil {
			return fmt.Errorf("standings: %w", err)
		}
		res.Standings = t
		return nil
	})
	g.Go(func() error {
		t, err := c.fetchTable(ctx, scheduleURL, scheduleColumns)
		if err != nil {
			return fmt.Errorf("schedule: %w", err)
		}
		res.Schedule = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) fetchTable(ctx context.Context, url string, required []string) (*dataset.Table, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	t, err := FirstTable(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	for _, col := range required {
		if !t.HasColumn(col) {
			return nil, fmt.Errorf("%s: missing column %q (have %v)", url, col, t.Columns)
		}
	}
	c.logger.Info("Parsed table", "url", url, "columns", len(t.Columns), "rows", t.Len())
	return t, nil
}

// FirstTable reads the document's first <table>. The header is the last
// <thead> row, or the leading rows made only of <th> cells when there is
// no <thead>. Cells spanning several columns are repeated.
func FirstTable(doc *goquery.Document) (*dataset.Table, error) {
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	var headerRows, bodyRows []*goquery.Selection
	if thead := table.ChildrenFiltered("thead"); thead.Length() > 0 {
		thead.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			headerRows = append(headerRows, tr)
		})
		table.ChildrenFiltered("tbody, tfoot").ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
			bodyRows = append(bodyRows, tr)
		})
	} else {
		inHeader := true
		table.ChildrenFiltered("tbody").ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
			if inHeader && tr.Children().Length() > 0 && tr.ChildrenFiltered("td").Length() == 0 {
				headerRows = append(headerRows, tr)
				return
			}
			inHeader = false
			bodyRows = append(bodyRows, tr)
		})
	}

	var headers []string
	if len(headerRows) > 0 {
		headers = rowCells(headerRows[len(headerRows)-1])
	}

	records := make([][]string, 0, len(bodyRows))
	width := len(headers)
	for _, tr := range bodyRows {
		rec := rowCells(tr)
		if len(rec) == 0 {
			continue
		}
		records = append(records, rec)
		if len(rec) > width {
			width = len(rec)
		}
	}

	for len(headers) < width {
		headers = append(headers, "")
	}
	return dataset.NewTable(HeaderNames(headers), records), nil
}

func rowCells(tr *goquery.Selection) []string {
	var out []string
	tr.ChildrenFiltered("th, td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.Join(strings.Fields(cell.Text()), " ")
		span := 1
		if v, ok := cell.Attr("colspan"); ok {
			if n, err := strconv.Atoi(v); err == nil && n > 1 {
				span = n
			}
		}
		for i := 0; i < span; i++ {
			out = append(out, text)
		}
	})
	return out
}

// HeaderNames makes column names unique the way the bundled datasets name
// them: blanks become "Unnamed: N" and repeats get ".1", ".2" suffixes
// (SCORE, SCORE.1).
func HeaderNames(raw []string) []string {
	out := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	dupes := make(map[string]int)
	for i, h := range raw {
		if h == "" {
			h = "Unnamed: " + strconv.Itoa(i)
		}
		name := h
		for used[name] {
			dupes[h]++
			name = h + "." + strconv.Itoa(dupes[h])
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// WriteFiles writes standings.json and schedule.json into dir.
func (r *Result) WriteFiles(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	files := []struct {
		name  string
		table *dataset.Table
	}{
		{dataset.StandingsFile, r.Standings},
		{dataset.ScheduleFile, r.Schedule},
	}
	var written []string
	for _, f := range files {
		data, err := json.Marshal(f.table)
		if err != nil {
			return written, fmt.Errorf("encode %s: %w", f.name, err)
		}
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
