// internal/cli/flagset.go
package cli

import (
	"flag"
	"fmt"

	"hgtjoin/internal/version"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError and the grouped
// usage text installed. Callers route the output via fs.SetOutput.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – join per-pair HGT tallies with co-occurrence, tip distance, and taxonomy tables\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		fmt.Fprintf(out, "Usage:\n  %s --cooccur_measure MEASURE --cooccur_tab FILE [options] > joined.tsv\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --cooccur_measure string  Co-occurrence column(s) to report, comma-delimited [*]")
		fmt.Fprintln(out, "      --cooccur_tab file        Gzipped co-occurrence table starting with taxon_i and taxon_j [*]")
		fmt.Fprintf(out, "      --tip_distances file      Gzipped tip distance matrix [%s]\n", def("tip_distances"))
		fmt.Fprintf(out, "      --hgt_tab file            Gzipped HGT pairwise tallies [%s]\n", def("hgt_tab"))
		fmt.Fprintf(out, "      --taxa_tab file           Gzipped taxonomic breakdown [%s]\n", def("taxa_tab"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Sort rows by taxa combo instead of HGT file order [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --no-header             Suppress header line in text/TSV [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print usage examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
	return fs
}
