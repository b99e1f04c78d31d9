package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Cell is one table value as text. Numbers keep their JSON spelling and
// null decodes to the empty string.
type Cell string

// UnmarshalJSON accepts strings, numbers, booleans and null.
func (c *Cell) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*c = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Cell(s)
	default:
		*c = Cell(data)
	}
	return nil
}

// Int parses the cell as a whole number. Float spellings ("24.0") are
// truncated. ok is false for blanks, sentinels, junk, NaN and values outside
// the int range.
func (c Cell) Int() (n int, ok bool) {
	s := strings.TrimSpace(string(c))
	if s == "" || s == NotPlayed {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f >= minIntFloat && f < maxIntFloat {
		return int(f), true
	}
	return 0, false
}

// Bounds for float-to-int truncation. maxIntFloat is one past math.MaxInt.
const (
	minIntFloat = float64(math.MinInt)
	maxIntFloat = -float64(math.MinInt)
)

// Table is a pandas DataFrame serialized with the default "columns"
// orientation: column name -> row key -> value. Column order is kept.
type Table struct {
	Columns []string
	cells   map[string]map[string]Cell
}

// NewTable builds a table from header names and row-major records.
// Short records are padded with blanks.
func NewTable(headers []string, records [][]string) *Table {
	t := &Table{cells: make(map[string]map[string]Cell, len(headers))}
	for _, h := range headers {
		t.Columns = append(t.Columns, h)
		t.cells[h] = make(map[string]Cell, len(records))
	}
	for i, rec := range records {
		key := strconv.Itoa(i)
		for j, h := range headers {
			var v string
			if j < len(rec) {
				v = rec[j]
			}
			t.cells[h][key] = Cell(v)
		}
	}
	return t
}

// UnmarshalJSON decodes the column-oriented object, preserving the order
// columns appear in the document.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read table: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("read table: expected object, got %v", tok)
	}

	t.Columns = nil
	t.cells = make(map[string]map[string]Cell)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read column name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("read column name: unexpected %v", tok)
		}
		var col map[string]Cell
		if err := dec.Decode(&col); err != nil {
			return fmt.Errorf("read column %q: %w", name, err)
		}
		if _, dup := t.cells[name]; !dup {
			t.Columns = append(t.Columns, name)
		}
		t.cells[name] = col
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read table: %w", err)
	}
	return nil
}

// MarshalJSON writes the same shape pandas' DataFrame.to_json() produces.
func (t *Table) MarshalJSON() ([]byte, error) {
	keys := t.RowKeys()
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range t.Columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		writeJSONString(&buf, name)
		buf.WriteString(":{")
		col := t.cells[name]
		n := 0
		for _, k := range keys {
			v, ok := col[k]
			if !ok {
				continue
			}
			if n > 0 {
				buf.WriteByte(',')
			}
			n++
			writeJSONString(&buf, k)
			buf.WriteByte(':')
			writeCell(&buf, v)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSONString(buf *bytes.Buffer, s string) {
	b, _ := json.Marshal(s)
	buf.Write(b)
}

// Numeric cells are written as JSON numbers so the output matches what
// pandas emits for integer columns.
func writeCell(buf *bytes.Buffer, c Cell) {
	s := string(c)
	if s == "" {
		buf.WriteString("null")
		return
	}
	if _, err := strconv.Atoi(s); err == nil {
		buf.WriteString(s)
		return
	}
	writeJSONString(buf, s)
}

// RowKeys returns every row key present in any column, ordered
// numerically. Non-numeric keys sort after numeric ones, lexically.
func (t *Table) RowKeys() []string {
	seen := make(map[string]struct{})
	for _, col := range t.cells {
		for k := range col {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aErr := strconv.Atoi(keys[i])
		b, bErr := strconv.Atoi(keys[j])
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		}
		return keys[i] < keys[j]
	})
	return keys
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cells[name]
	return ok
}

// Get returns a cell, blank when the column or row is absent.
func (t *Table) Get(column, rowKey string) Cell {
	return t.cells[column][rowKey]
}

// Len is the number of rows.
func (t *Table) Len() int {
	return len(t.RowKeys())
}
