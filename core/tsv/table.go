// core/tsv/table.go
package tsv

import (
	"bufio"
	"fmt"
	"strings"
)

// Table is a tab-delimited file loaded whole: the first line is the header,
// every following non-blank line is a row. Cells are kept as verbatim text;
// width checking is left to callers, which know their own layout.
type Table struct {
	Path    string
	Columns []string
	Rows    [][]string

	lines []int // 1-based file line per row, for error positions
}

// Indexed is a key-column view of a Table: each row's first cell is its key.
// Both header layouts found in the wild are handled, a corner cell naming
// the key column as well as the R-style header that omits it.
type Indexed struct {
	Path    string
	Columns []string
	Keys    []string
	Rows    [][]string

	lines []int
}

// Read loads a gzip (or plain) TSV file fully into memory.
func Read(path string) (*Table, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	// Distance matrices can put an entire row of a large square matrix on
	// one line; allow very long lines (64 MiB).
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)

	t := &Table{Path: path}
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if ln == 1 {
			t.Columns = strings.Split(line, "\t")
			continue
		}
		if line == "" {
			continue
		}
		t.Rows = append(t.Rows, strings.Split(line, "\t"))
		t.lines = append(t.lines, ln)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ln == 0 {
		return nil, fmt.Errorf("%s: empty table (no header line)", path)
	}
	return t, nil
}

// Line returns the 1-based file line of row i (the header is line 1).
func (t *Table) Line(i int) int {
	if i < 0 || i >= len(t.lines) {
		return 0
	}
	return t.lines[i]
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Indexed reinterprets the table as an index-keyed frame. The layout is
// decided from the first data row: rows as wide as the header carry a corner
// cell (data columns are header[1:]); rows one cell wider are R-style (data
// columns are the full header). Mixing widths is an error.
func (t *Table) Indexed() (*Indexed, error) {
	ix := &Indexed{Path: t.Path}
	if len(t.Rows) == 0 {
		if len(t.Columns) > 1 {
			ix.Columns = t.Columns[1:]
		}
		return ix, nil
	}

	var want int
	switch w := len(t.Rows[0]); w {
	case len(t.Columns):
		ix.Columns = t.Columns[1:]
		want = w
	case len(t.Columns) + 1:
		ix.Columns = t.Columns
		want = w
	default:
		return nil, fmt.Errorf("%s:%d: %d fields do not fit a %d-column header",
			t.Path, t.Line(0), w, len(t.Columns))
	}

	for i, row := range t.Rows {
		if len(row) != want {
			return nil, fmt.Errorf("%s:%d: expected %d fields, got %d",
				t.Path, t.Line(i), want, len(row))
		}
		ix.Keys = append(ix.Keys, row[0])
		ix.Rows = append(ix.Rows, row[1:])
		ix.lines = append(ix.lines, t.Line(i))
	}
	return ix, nil
}

// Line returns the 1-based file line of keyed row i.
func (x *Indexed) Line(i int) int {
	if i < 0 || i >= len(x.lines) {
		return 0
	}
	return x.lines[i]
}

// ColumnIndex returns the position of the named data column, or -1.
func (x *Indexed) ColumnIndex(name string) int {
	for i, c := range x.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
