// internal/common/sort.go
package common

import (
	"sort"

	"hgtjoin-core/report"
)

// LessRow defines a stable order for joined rows (for --sort).
func LessRow(a, b report.Row) bool {
	if a.Combo != b.Combo {
		return a.Combo < b.Combo
	}
	if a.TaxonI != b.TaxonI {
		return a.TaxonI < b.TaxonI
	}
	return a.TaxonJ < b.TaxonJ
}

func SortRows(rows []report.Row) {
	sort.Slice(rows, func(i, j int) bool { return LessRow(rows[i], rows[j]) })
}
