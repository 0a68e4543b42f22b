// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Default table locations on the analysis filesystem, overridable per run.
const (
	DefaultTipDistances = "/mfs/gdouglas/projects/ocean_mags/phylogenetic_analyses/tip_dist.tsv.gz"
	DefaultHGTTab       = "/mfs/gdouglas/projects/ocean_mags/water_mag_analysis/species_DTL_analyses/pairwise_hgt_counts.tsv.gz"
	DefaultTaxaTab      = "/mfs/gdouglas/projects/ocean_mags/mapfiles/MAG_taxa_breakdown.tsv.gz"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input tables
	CooccurMeasure string
	CooccurTab     string
	TipDistances   string
	HGTTab         string
	TaxaTab        string

	// Output
	Output string
	Sort   bool
	Header bool // true unless --no-header

	// Misc
	Quiet   bool
	Version bool
}

// Measures splits the comma-delimited --cooccur_measure value.
func (o Options) Measures() []string {
	if o.CooccurMeasure == "" {
		return nil
	}
	return strings.Split(o.CooccurMeasure, ",")
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples bool

	// Input tables
	fs.StringVar(&opt.CooccurMeasure, "cooccur_measure", "", "co-occurrence column(s) to report, comma-delimited [*]")
	fs.StringVar(&opt.CooccurTab, "cooccur_tab", "", "gzipped co-occurrence table starting with taxon_i and taxon_j [*]")
	fs.StringVar(&opt.TipDistances, "tip_distances", DefaultTipDistances, "gzipped tip distance matrix")
	fs.StringVar(&opt.HGTTab, "hgt_tab", DefaultHGTTab, "gzipped HGT pairwise tallies")
	fs.StringVar(&opt.TaxaTab, "taxa_tab", DefaultTaxaTab, "gzipped taxonomic breakdown")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json | jsonl [text]")
	fs.StringVar(&opt.Output, "o", "text", "alias of --output")
	fs.BoolVar(&opt.Sort, "sort", false, "sort rows by taxa combo [false]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")

	// Misc
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&examples, "examples", false, "print usage examples and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if examples {
		return opt, ErrExamplesRequested
	}
	opt.Header = !noHeader

	// Validation
	if opt.CooccurMeasure == "" {
		return opt, errors.New("--cooccur_measure is required")
	}
	for _, m := range opt.Measures() {
		if m == "" {
			return opt, errors.New("--cooccur_measure contains an empty measure name")
		}
	}
	if opt.CooccurTab == "" {
		return opt, errors.New("--cooccur_tab is required")
	}
	switch opt.Output {
	case "text", "json", "jsonl":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	return opt, nil
}
