package output

import "testing"

func TestHeaderTSV_Stable(t *testing.T) {
	const want = "taxa_combo\ttaxon_i\ttaxon_j\ttip_dist\tspecies\tranger_hgt_tallies\tcooccur_simpson"
	if got := HeaderTSV([]string{"simpson"}); got != want {
		t.Fatalf("HeaderTSV changed:\n got:  %q\n want: %q", got, want)
	}
}
