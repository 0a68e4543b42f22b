// core/taxa/taxa.go
package taxa

import (
	"fmt"

	"hgtjoin-core/tsv"
)

// Levels is the fixed rank order used to find where two classifications
// first diverge. Comparisons always walk it coarsest-to-finest.
var Levels = []string{"Domain", "Phylum", "Class", "Order", "Family", "Genus", "Species", "Strain"}

// Table holds per-taxon rank vectors, aligned to Levels.
type Table struct {
	Path  string
	ranks map[string][]string
}

// Load reads a taxonomic breakdown table. The taxon identifier is the second
// column (the upstream mapfile keys its MAG IDs there); the eight rank
// columns are located by name and must all be present.
func Load(path string) (*Table, error) {
	raw, err := tsv.Read(path)
	if err != nil {
		return nil, err
	}
	if len(raw.Columns) < 2 {
		return nil, fmt.Errorf("%s: taxonomic table needs at least 2 columns, got %d", path, len(raw.Columns))
	}

	idx := make([]int, len(Levels))
	for i, lvl := range Levels {
		ci := raw.ColumnIndex(lvl)
		if ci < 0 {
			return nil, fmt.Errorf("%s: missing rank column %q", path, lvl)
		}
		idx[i] = ci
	}

	t := &Table{Path: path, ranks: make(map[string][]string, len(raw.Rows))}
	for r, row := range raw.Rows {
		if len(row) != len(raw.Columns) {
			return nil, fmt.Errorf("%s:%d: expected %d fields, got %d", path, raw.Line(r), len(raw.Columns), len(row))
		}
		id := row[1]
		if _, dup := t.ranks[id]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate taxon %q", path, raw.Line(r), id)
		}
		v := make([]string, len(Levels))
		for i, ci := range idx {
			v[i] = row[ci]
		}
		t.ranks[id] = v
	}
	return t, nil
}

// Len returns the number of taxa loaded.
func (t *Table) Len() int { return len(t.ranks) }

// Ranks returns the taxon's rank vector in Levels order.
func (t *Table) Ranks(taxon string) ([]string, bool) {
	v, ok := t.ranks[taxon]
	return v, ok
}

// FirstDivergence scans two rank vectors in Levels order and names the first
// rank where they differ. ok is false when the vectors never diverge.
func FirstDivergence(a, b []string) (string, bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return Levels[i], true
		}
	}
	return "", false
}
