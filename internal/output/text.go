// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strings"

	"hgtjoin-core/report"
)

// FormatRowTSV renders one joined row as a TSV line (no trailing newline).
func FormatRowTSV(r report.Row) string {
	fields := append([]string{r.Combo, r.TaxonI, r.TaxonJ, r.TipDist, r.Species, r.Tallies}, r.Cooccur...)
	return strings.Join(fields, "\t")
}

// WriteText prints buffered rows as TSV.
func WriteText(w io.Writer, rows []report.Row, header bool, measures []string) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := io.WriteString(bw, HeaderTSV(measures)+"\n"); err != nil {
			return err
		}
	}
	for _, r := range rows {
		if _, err := io.WriteString(bw, FormatRowTSV(r)+"\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// StreamText prints rows as TSV as they arrive.
func StreamText(w io.Writer, in <-chan report.Row, header bool, measures []string) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := io.WriteString(bw, HeaderTSV(measures)+"\n"); err != nil {
			return err
		}
	}
	for r := range in {
		if _, err := io.WriteString(bw, FormatRowTSV(r)+"\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
