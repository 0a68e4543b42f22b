// core/report/report_test.go
package report

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hgtjoin-core/cooccur"
	"hgtjoin-core/hgt"
	"hgtjoin-core/taxa"
	"hgtjoin-core/tipdist"
)

const (
	defaultCooccur = "taxon_i\ttaxon_j\tsimpson\nX\tY\t0.42\n"
	defaultTip     = "taxon\tX\tY\nX\t0\t0.13\nY\t0.13\t0\n"
	defaultHGT     = "taxa_combo\tspecies\thgt_count\nX,Y\tsp1\t5\n"

	taxaHeader = "classification\tMAG\tDomain\tPhylum\tClass\tOrder\tFamily\tGenus\tSpecies\tStrain"
)

func taxaRow(taxon, genus, strain string) string {
	return strings.Join([]string{
		"d__B;p__P;c__C;o__O;f__F;" + genus, taxon,
		"d__B", "p__P", "c__C", "o__O", "f__F", genus, "s__S", strain,
	}, "\t")
}

func defaultTaxa() string {
	return taxaHeader + "\n" +
		taxaRow("X", "g__G", "t__X") + "\n" +
		taxaRow("Y", "g__G", "t__Y") + "\n" +
		taxaRow("Z", "g__G", "t__Z") + "\n"
}

func writeGz(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func load(t *testing.T, cooccurTSV, tipTSV, taxaTSV, hgtTSV string) Tables {
	t.Helper()
	co, err := cooccur.Load(writeGz(t, "cooccur.tsv.gz", cooccurTSV))
	require.NoError(t, err)
	td, err := tipdist.Load(writeGz(t, "tip_dist.tsv.gz", tipTSV))
	require.NoError(t, err)
	tx, err := taxa.Load(writeGz(t, "taxa.tsv.gz", taxaTSV))
	require.NoError(t, err)
	hg, err := hgt.Load(writeGz(t, "hgt.tsv.gz", hgtTSV))
	require.NoError(t, err)
	return Tables{Cooccur: co, TipDist: td, Taxa: tx, HGT: hg}
}

func collect(r *Reporter) ([]Row, error) {
	var rows []Row
	err := r.Rows(context.Background(), func(row Row) error {
		rows = append(rows, row)
		return nil
	})
	return rows, err
}

func TestReportSinglePair(t *testing.T) {
	r, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), defaultHGT), []string{"simpson"})
	require.NoError(t, err)

	rows, err := collect(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, Row{
		Combo:   "X,Y",
		TaxonI:  "X",
		TaxonJ:  "Y",
		TipDist: "0.13",
		Species: "sp1",
		Tallies: "5",
		Cooccur: []string{"0.42"},
	}, rows[0])
}

func TestReportKeepsFileOrder(t *testing.T) {
	hgtTSV := "taxa_combo\tspecies\thgt_count\n" +
		"X,Z\tsp1\t2\n" +
		"X,Y\tsp1\t5\n"
	r, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), hgtTSV), []string{"simpson"})
	require.NoError(t, err)

	rows, err := collect(r)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "X,Z", rows[0].Combo)
	assert.Equal(t, "X,Y", rows[1].Combo)
}

func TestMissingTipDistanceIsNA(t *testing.T) {
	hgtTSV := "taxa_combo\tspecies\thgt_count\nX,Z\tsp1\t2\n"
	r, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), hgtTSV), []string{"simpson"})
	require.NoError(t, err)

	rows, err := collect(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, NA, rows[0].TipDist)
	assert.Equal(t, []string{NA}, rows[0].Cooccur, "pair absent from co-occurrence table")
}

func TestPairAboveStrainLevel(t *testing.T) {
	taxaTSV := taxaHeader + "\n" +
		taxaRow("X", "g__G", "t__X") + "\n" +
		taxaRow("Y", "g__H", "t__Y") + "\n"
	r, err := New(load(t, defaultCooccur, defaultTip, taxaTSV, defaultHGT), []string{"simpson"})
	require.NoError(t, err)

	rows, err := collect(r)
	assert.Empty(t, rows)

	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "X,Y", ce.Key)
	assert.Equal(t, "taxa combo not at strain level: X,Y", ce.Error())
}

func TestPairIdenticalAtAllLevels(t *testing.T) {
	// Two distinct taxa sharing even the strain label never diverge, which
	// is just as inconsistent as diverging too high.
	taxaTSV := taxaHeader + "\n" +
		taxaRow("X", "g__G", "t__X") + "\n" +
		taxaRow("Y", "g__G", "t__X") + "\n"
	r, err := New(load(t, defaultCooccur, defaultTip, taxaTSV, defaultHGT), []string{"simpson"})
	require.NoError(t, err)

	_, err = collect(r)
	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "taxa combo not at strain level", ce.Detail)
}

func TestTaxonMissingFromTaxaTable(t *testing.T) {
	taxaTSV := taxaHeader + "\n" + taxaRow("X", "g__G", "t__X") + "\n"
	r, err := New(load(t, defaultCooccur, defaultTip, taxaTSV, defaultHGT), []string{"simpson"})
	require.NoError(t, err)

	_, err = collect(r)
	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "X,Y", ce.Key)
	assert.Contains(t, ce.Detail, "taxon Y not found in taxa table")
}

func TestReversePairInHGTTable(t *testing.T) {
	hgtTSV := "taxa_combo\tspecies\thgt_count\n" +
		"X,Y\tsp1\t5\n" +
		"Y,X\tsp1\t2\n"
	r, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), hgtTSV), []string{"simpson"})
	require.NoError(t, err)

	rows, err := collect(r)
	assert.Empty(t, rows)

	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "Y,X", ce.Key, "error names the reverse combo")
	assert.Equal(t, "reverse taxa combo found in HGT table", ce.Detail)
}

func TestReversePairInCooccurTable(t *testing.T) {
	// The HGT key is in non-canonical order, so the co-occurrence hit sits
	// under the reverse (sorted) combo.
	hgtTSV := "taxa_combo\tspecies\thgt_count\nY,X\tsp1\t5\n"
	r, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), hgtTSV), []string{"simpson"})
	require.NoError(t, err)

	_, err = collect(r)
	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "X,Y", ce.Key)
	assert.Equal(t, "reverse taxa combo found in co-occurrence table", ce.Detail)
}

func TestDuplicatedCooccurPair(t *testing.T) {
	cooccurTSV := "taxon_i\ttaxon_j\tsimpson\n" +
		"X\tY\t0.42\n" +
		"Y\tX\t0.17\n"
	r, err := New(load(t, cooccurTSV, defaultTip, defaultTaxa(), defaultHGT), []string{"simpson"})
	require.NoError(t, err)

	_, err = collect(r)
	var ce *ConsistencyError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "X,Y", ce.Key)
	assert.Equal(t, "taxa combo duplicated in co-occurrence table", ce.Detail)
}

func TestEmptyMeasureCellIsNA(t *testing.T) {
	cooccurTSV := "taxon_i\ttaxon_j\tsimpson\tjaccard\nX\tY\t0.42\t\n"
	r, err := New(load(t, cooccurTSV, defaultTip, defaultTaxa(), defaultHGT), []string{"simpson", "jaccard"})
	require.NoError(t, err)

	rows, err := collect(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"0.42", NA}, rows[0].Cooccur)
}

func TestMeasureOrderFollowsRequest(t *testing.T) {
	cooccurTSV := "taxon_i\ttaxon_j\tsimpson\tjaccard\nX\tY\t0.42\t0.21\n"
	r, err := New(load(t, cooccurTSV, defaultTip, defaultTaxa(), defaultHGT), []string{"jaccard", "simpson"})
	require.NoError(t, err)

	rows, err := collect(r)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"0.21", "0.42"}, rows[0].Cooccur)
	assert.Equal(t, []string{"jaccard", "simpson"}, r.Measures())
}

func TestNewRejectsUnknownMeasure(t *testing.T) {
	_, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), defaultHGT), []string{"bray"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `measure "bray" not found`)
}

func TestNewRejectsNoMeasures(t *testing.T) {
	_, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), defaultHGT), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no co-occurrence measures")
}

func TestRowsHonorsContext(t *testing.T) {
	r, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), defaultHGT), []string{"simpson"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = r.Rows(ctx, func(Row) error {
		t.Fatal("emit called after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRowsStopsOnEmitError(t *testing.T) {
	hgtTSV := "taxa_combo\tspecies\thgt_count\n" +
		"X,Y\tsp1\t5\n" +
		"X,Z\tsp1\t2\n"
	r, err := New(load(t, defaultCooccur, defaultTip, defaultTaxa(), hgtTSV), []string{"simpson"})
	require.NoError(t, err)

	sentinel := errors.New("sink full")
	calls := 0
	err = r.Rows(context.Background(), func(Row) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, calls)
}
