package output

// Format names accepted by the writers.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// baseHeader holds the fixed leading columns of the TSV output; one
// cooccur_<measure> column per requested measure follows.
const baseHeader = "taxa_combo\ttaxon_i\ttaxon_j\ttip_dist\tspecies\tranger_hgt_tallies"

// HeaderTSV is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
func HeaderTSV(measures []string) string {
	h := baseHeader
	for _, m := range measures {
		h += "\tcooccur_" + m
	}
	return h
}
