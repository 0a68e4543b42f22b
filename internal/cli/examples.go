// internal/cli/examples.go
package cli

import (
	"errors"
	"fmt"
	"io"
)

// ErrExamplesRequested is returned by ParseArgs when --examples was given.
// Apps should catch this, print the examples, and exit 0.
var ErrExamplesRequested = errors.New("examples requested")

// PrintExamples prints a small quickstart followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # Join HGT tallies against one co-occurrence measure\n")
	_, _ = fmt.Fprintf(out, "  %s --cooccur_measure simpson --cooccur_tab cooccur.tsv.gz > joined.tsv\n\n", name)
	_, _ = fmt.Fprintf(out, "  # Multiple measures, explicit inputs, JSON Lines output\n")
	_, _ = fmt.Fprintf(out, "  %s --cooccur_measure simpson,jaccard \\\n", name)
	_, _ = fmt.Fprintf(out, "      --cooccur_tab cooccur.tsv.gz \\\n")
	_, _ = fmt.Fprintf(out, "      --tip_distances tip_dist.tsv.gz \\\n")
	_, _ = fmt.Fprintf(out, "      --taxa_tab MAG_taxa_breakdown.tsv.gz \\\n")
	_, _ = fmt.Fprintf(out, "      --hgt_tab pairwise_hgt_counts.tsv.gz \\\n")
	_, _ = fmt.Fprintf(out, "      -o jsonl > joined.jsonl\n")
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
