// core/report/report.go
package report

import (
	"context"
	"fmt"

	"hgtjoin-core/cooccur"
	"hgtjoin-core/hgt"
	"hgtjoin-core/pair"
	"hgtjoin-core/taxa"
	"hgtjoin-core/tipdist"
)

// NA is the sentinel emitted for values that cannot be resolved.
const NA = "NA"

// Tables bundles the four loaded inputs of one join run.
type Tables struct {
	Cooccur *cooccur.Table
	TipDist *tipdist.Matrix
	Taxa    *taxa.Table
	HGT     *hgt.Table
}

// Row is one denormalized output record: an HGT pair joined against the
// distance, taxonomy, and co-occurrence tables.
type Row struct {
	Combo   string
	TaxonI  string
	TaxonJ  string
	TipDist string
	Species string
	Tallies string
	Cooccur []string // one value per measure, in Measures order
}

// Reporter walks the HGT table in file order, validates each pair against
// the other tables, and yields one Row per pair.
type Reporter struct {
	tables   Tables
	measures []string
	cols     []int
}

// New checks the requested measures against the co-occurrence table and
// builds a Reporter. An unknown measure fails here, before any output.
func New(t Tables, measures []string) (*Reporter, error) {
	if len(measures) == 0 {
		return nil, fmt.Errorf("no co-occurrence measures provided")
	}
	cols := make([]int, len(measures))
	for i, m := range measures {
		c := t.Cooccur.MeasureIndex(m)
		if c < 0 {
			return nil, fmt.Errorf("measure %q not found in co-occurrence table %s", m, t.Cooccur.Path)
		}
		cols[i] = c
	}
	return &Reporter{tables: t, measures: measures, cols: cols}, nil
}

// Measures returns the measure names in output order.
func (r *Reporter) Measures() []string { return r.measures }

// Rows streams the report in HGT file order, one emit call per pair. The
// first validation or emit error aborts the walk.
func (r *Reporter) Rows(ctx context.Context, emit func(Row) error) error {
	for _, key := range r.tables.HGT.Keys() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		row, err := r.row(key)
		if err != nil {
			return err
		}
		if err := emit(row); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reporter) row(key string) (Row, error) {
	e, _ := r.tables.HGT.Entry(key)
	taxonI, taxonJ := e.TaxonI, e.TaxonJ
	reverse := pair.Join(taxonJ, taxonI)

	dist, ok := r.tables.TipDist.Value(taxonI, taxonJ)
	if !ok {
		dist = NA
	}

	// Pairs must agree at every rank above strain.
	ranksI, ok := r.tables.Taxa.Ranks(taxonI)
	if !ok {
		return Row{}, &ConsistencyError{Key: key, Detail: "taxon " + taxonI + " not found in taxa table"}
	}
	ranksJ, ok := r.tables.Taxa.Ranks(taxonJ)
	if !ok {
		return Row{}, &ConsistencyError{Key: key, Detail: "taxon " + taxonJ + " not found in taxa table"}
	}
	if level, diverged := taxa.FirstDivergence(ranksI, ranksJ); !diverged || level != "Strain" {
		return Row{}, &ConsistencyError{Key: key, Detail: "taxa combo not at strain level"}
	}

	if r.tables.HGT.Has(reverse) {
		return Row{}, &ConsistencyError{Key: reverse, Detail: "reverse taxa combo found in HGT table"}
	}

	canonical := pair.Canonical(taxonI, taxonJ)
	values := make([]string, len(r.cols))
	cRow, ok := r.tables.Cooccur.Row(canonical)
	switch {
	case !ok:
		for i := range values {
			values[i] = NA
		}
	case key != canonical:
		return Row{}, &ConsistencyError{Key: reverse, Detail: "reverse taxa combo found in co-occurrence table"}
	case r.tables.Cooccur.Conflicted(canonical):
		return Row{}, &ConsistencyError{Key: key, Detail: "taxa combo duplicated in co-occurrence table"}
	default:
		for i, c := range r.cols {
			if v := cRow[c]; v != "" {
				values[i] = v
			} else {
				values[i] = NA
			}
		}
	}

	return Row{
		Combo:   key,
		TaxonI:  taxonI,
		TaxonJ:  taxonJ,
		TipDist: dist,
		Species: e.Species,
		Tallies: e.Count,
		Cooccur: values,
	}, nil
}
