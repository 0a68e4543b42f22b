// pkg/api/rows_v1.go
package api

// RowV1 is the stable JSON/JSONL schema for joined pair rows.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Values are carried as the verbatim table text ("NA" when unresolved), so
// no float precision is invented on the way through.
type RowV1 struct {
	TaxaCombo  string            `json:"taxa_combo"`
	TaxonI     string            `json:"taxon_i"`
	TaxonJ     string            `json:"taxon_j"`
	TipDist    string            `json:"tip_dist"`
	Species    string            `json:"species"`
	HGTTallies string            `json:"ranger_hgt_tallies"`
	Cooccur    map[string]string `json:"cooccur"` // measure name → value
}
