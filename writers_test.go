package stand

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlot(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "stand.csv")
	require.NoError(t, os.WriteFile(fp, []byte(
		"id,x,y,species\n1,500000,3630000,loblolly-pine\n2,500006,3630000,white-oak\n"), 0644))

	p, err := LoadPlot(fp, 17)
	require.NoError(t, err)
	require.Len(t, p.Trees, 2)
	assert.Equal(t, Tree{ID: 1, X: 500000, Y: 3630000, Species: "loblolly-pine"}, p.Trees[0])
	assert.Equal(t, 17, p.Zone)

	_, err = LoadPlot(filepath.Join(t.TempDir(), "missing.csv"), 17)
	assert.Error(t, err)
}

func TestLoadPrescription(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "rx.csv")
	require.NoError(t, os.WriteFile(fp, []byte(
		"year,action,removePct,minMerch\n15,thin-below,0.3,0\n30,clearcut,1,8\n"), 0644))

	rx, err := LoadPrescription(fp)
	require.NoError(t, err)
	require.Len(t, rx.Treatments, 2)
	assert.Equal(t, Treatment{Year: 15, Action: ActionThinBelow, RemovePct: .3}, rx.Treatments[0])
	assert.Equal(t, Treatment{Year: 30, Action: ActionClearcut, RemovePct: 1, MinMerch: 8}, rx.Treatments[1])
	assert.Len(t, rx.ForYear(15), 1)
	assert.Empty(t, rx.ForYear(16))
}

func TestWriteOutputs(t *testing.T) {
	dir := t.TempDir()
	prj := ProjectStand(gridPlot(20, "loblolly-pine"), DefaultSpecies, 10, 1, nil)

	WriteTrees(filepath.Join(dir, "trees.csv"), prj)
	WriteSeries(filepath.Join(dir, "series.csv"), []*Projection{prj})
	inv := AnalyzeInvestment(nil, 1, 10, nil, .05)
	WriteCashFlows(filepath.Join(dir, "cash.csv"), inv)

	for _, fn := range []string{"trees.csv", "series.csv", "cash.csv"} {
		fi, err := os.Stat(filepath.Join(dir, fn))
		require.NoError(t, err, fn)
		assert.Greater(t, fi.Size(), int64(0), fn)
	}
}

func TestSampleYieldSweep(t *testing.T) {
	fp := filepath.Join(t.TempDir(), "samples.csv")
	SampleYield(fp, "loblolly-pine", 10, 4, 2, 1984)
	fi, err := os.Stat(fp)
	require.NoError(t, err)
	assert.Greater(t, fi.Size(), int64(0))
}
