// core/cooccur/cooccur.go
package cooccur

import (
	"fmt"

	"hgtjoin-core/pair"
	"hgtjoin-core/tsv"
)

// Table is a co-occurrence measure table indexed by the canonical unordered
// pair key built from each row's taxon_i and taxon_j cells. Rows whose
// canonical keys collide (the same pair present twice, which includes a key
// and its reverse) are kept but flagged; the collision only becomes fatal
// when that pair is actually processed.
type Table struct {
	Path    string
	Columns []string

	// LegacyRenamed is set when the legacy taxoni/taxonj header columns
	// were normalized to taxon_i/taxon_j.
	LegacyRenamed bool

	rows     map[string][]string
	conflict map[string]bool
}

// Load reads a co-occurrence table. When the first two header columns are
// exactly "taxoni" and "taxonj" they are renamed to "taxon_i"/"taxon_j";
// only those two positions are touched.
func Load(path string) (*Table, error) {
	raw, err := tsv.Read(path)
	if err != nil {
		return nil, err
	}

	t := &Table{
		Path:     path,
		Columns:  raw.Columns,
		rows:     make(map[string][]string, len(raw.Rows)),
		conflict: make(map[string]bool),
	}
	if len(t.Columns) >= 2 && t.Columns[0] == "taxoni" && t.Columns[1] == "taxonj" {
		t.Columns[0], t.Columns[1] = "taxon_i", "taxon_j"
		t.LegacyRenamed = true
	}

	iCol := t.MeasureIndex("taxon_i")
	jCol := t.MeasureIndex("taxon_j")
	if iCol < 0 || jCol < 0 {
		return nil, fmt.Errorf("%s: co-occurrence table must carry taxon_i and taxon_j columns", path)
	}

	for r, row := range raw.Rows {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%s:%d: expected %d fields, got %d", path, raw.Line(r), len(t.Columns), len(row))
		}
		key := pair.Canonical(row[iCol], row[jCol])
		if _, dup := t.rows[key]; dup {
			t.conflict[key] = true
			continue
		}
		t.rows[key] = row
	}
	return t, nil
}

// Len returns the number of distinct pairs indexed.
func (t *Table) Len() int { return len(t.rows) }

// HasMeasure reports whether the named column exists.
func (t *Table) HasMeasure(name string) bool { return t.MeasureIndex(name) >= 0 }

// MeasureIndex returns the column position of a measure, or -1.
func (t *Table) MeasureIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Row returns the cells stored under a canonical pair key.
func (t *Table) Row(canonical string) ([]string, bool) {
	row, ok := t.rows[canonical]
	return row, ok
}

// Conflicted reports whether more than one input row mapped to the
// canonical key.
func (t *Table) Conflicted(canonical string) bool { return t.conflict[canonical] }
