// core/tipdist/tipdist.go
package tipdist

import (
	"hgtjoin-core/tsv"
)

// Matrix is a square tip-distance matrix: row labels come from the key
// column, column labels from the header. Cells stay verbatim text so values
// never go through a float parse/format round trip.
type Matrix struct {
	Path string
	cols map[string]int
	rows map[string][]string
}

// Load reads a tip-distance matrix (either header layout).
func Load(path string) (*Matrix, error) {
	raw, err := tsv.Read(path)
	if err != nil {
		return nil, err
	}
	ix, err := raw.Indexed()
	if err != nil {
		return nil, err
	}

	m := &Matrix{
		Path: path,
		cols: make(map[string]int, len(ix.Columns)),
		rows: make(map[string][]string, len(ix.Keys)),
	}
	for i, c := range ix.Columns {
		m.cols[c] = i
	}
	for i, k := range ix.Keys {
		m.rows[k] = ix.Rows[i]
	}
	return m, nil
}

// Len returns the number of matrix rows.
func (m *Matrix) Len() int { return len(m.rows) }

// Value returns the distance between two taxa, trying [i,j] and then [j,i].
// ok is false when neither direction is present or the cell is empty;
// a missing taxon is never an error, just an absent value.
func (m *Matrix) Value(i, j string) (string, bool) {
	if v, ok := m.cell(i, j); ok {
		return v, true
	}
	return m.cell(j, i)
}

func (m *Matrix) cell(row, col string) (string, bool) {
	r, ok := m.rows[row]
	if !ok {
		return "", false
	}
	c, ok := m.cols[col]
	if !ok || c >= len(r) || r[c] == "" {
		return "", false
	}
	return r[c], true
}
