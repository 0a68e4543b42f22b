// core/hgt/hgt.go
package hgt

import (
	"fmt"

	"hgtjoin-core/pair"
	"hgtjoin-core/tsv"
)

// Entry is one HGT tally row: the ordered pair key it was filed under, the
// two taxon identifiers split out of that key, and the species / tally cells
// carried through verbatim.
type Entry struct {
	Key     string
	TaxonI  string
	TaxonJ  string
	Species string
	Count   string
}

// Table holds HGT pairwise tallies keyed by their taxa combo, preserving
// file order.
type Table struct {
	Path string

	keys []string
	rows map[string]Entry
}

// Load reads an HGT tally table. Every key is split up front, so a malformed
// taxa combo anywhere in the file fails the load before any pair is
// processed. The species and hgt_count columns are required.
func Load(path string) (*Table, error) {
	raw, err := tsv.Read(path)
	if err != nil {
		return nil, err
	}
	ix, err := raw.Indexed()
	if err != nil {
		return nil, err
	}

	speciesCol := ix.ColumnIndex("species")
	countCol := ix.ColumnIndex("hgt_count")
	if speciesCol < 0 || countCol < 0 {
		return nil, fmt.Errorf("%s: HGT table must carry species and hgt_count columns", path)
	}

	t := &Table{
		Path: path,
		keys: make([]string, 0, len(ix.Keys)),
		rows: make(map[string]Entry, len(ix.Keys)),
	}
	for i, key := range ix.Keys {
		if _, dup := t.rows[key]; dup {
			return nil, fmt.Errorf("%s:%d: duplicate taxa combo %q", path, ix.Line(i), key)
		}
		ti, tj, err := pair.Split(key)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, ix.Line(i), err)
		}
		row := ix.Rows[i]
		t.keys = append(t.keys, key)
		t.rows[key] = Entry{
			Key:     key,
			TaxonI:  ti,
			TaxonJ:  tj,
			Species: row[speciesCol],
			Count:   row[countCol],
		}
	}
	return t, nil
}

// Keys returns the taxa combos in file order.
func (t *Table) Keys() []string { return t.keys }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.keys) }

// Has reports whether a taxa combo is present.
func (t *Table) Has(key string) bool {
	_, ok := t.rows[key]
	return ok
}

// Entry returns the tally row filed under a taxa combo.
func (t *Table) Entry(key string) (Entry, bool) {
	e, ok := t.rows[key]
	return e, ok
}

// Taxa returns the set of all taxon identifiers named by any key.
func (t *Table) Taxa() map[string]bool {
	set := make(map[string]bool, 2*len(t.keys))
	for _, key := range t.keys {
		e := t.rows[key]
		set[e.TaxonI] = true
		set[e.TaxonJ] = true
	}
	return set
}
