// internal/output/json.go
package output

import (
	"io"

	"hgtjoin-core/report"
	"hgtjoin/internal/jsonutil"
	"hgtjoin/pkg/api"
)

// ToAPIRow converts a joined row to the stable wire schema (v1).
func ToAPIRow(r report.Row, measures []string) api.RowV1 {
	v := api.RowV1{
		TaxaCombo:  r.Combo,
		TaxonI:     r.TaxonI,
		TaxonJ:     r.TaxonJ,
		TipDist:    r.TipDist,
		Species:    r.Species,
		HGTTallies: r.Tallies,
		Cooccur:    make(map[string]string, len(measures)),
	}
	for i, m := range measures {
		if i < len(r.Cooccur) {
			v.Cooccur[m] = r.Cooccur[i]
		}
	}
	return v
}

func toAPIRows(rows []report.Row, measures []string) []api.RowV1 {
	out := make([]api.RowV1, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToAPIRow(r, measures))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 rows (pretty-indented).
func WriteJSON(w io.Writer, rows []report.Row, measures []string) error {
	return jsonutil.EncodePretty(w, toAPIRows(rows, measures))
}
