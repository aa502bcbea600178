package stand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkPlots(t *testing.T) {
	for _, b := range Benchmarks() {
		p := b.Plot()
		require.Len(t, p.Trees, b.TPA)
		assert.Equal(t, 1., p.Area)
		ids := map[int]bool{}
		for _, tr := range p.Trees {
			assert.Equal(t, b.Species, tr.Species)
			assert.False(t, ids[tr.ID], "duplicate id")
			ids[tr.ID] = true
		}
	}
}

func TestRegionInference(t *testing.T) {
	assert.Equal(t, RegionSoutheast, InferRegion(500000, 3630000, 17))
	assert.Equal(t, RegionPacificNW, InferRegion(500000, 4875000, 10))
	assert.Equal(t, RegionNortheast, InferRegion(500000, 4875000, 18))
	assert.Equal(t, RegionSoutheast, InferRegion(500000, 3880000, 16))
}

func TestBiomassFactors(t *testing.T) {
	assert.Equal(t, .94, BiomassFactor(RegionSoutheast, false))
	assert.Equal(t, .90, BiomassFactor(RegionSoutheast, true))
	assert.Equal(t, DefaultBiomassFactor, BiomassFactor(RegionDefault, false))
	assert.Equal(t, DefaultBiomassFactor, BiomassFactor(RegionDefault, true))
}

func TestRunValidation(t *testing.T) {
	rpt := RunValidation()
	require.Len(t, rpt.Results, 4)

	// reference calibration holds "Fair" or better
	assert.GreaterOrEqual(t, rpt.Score, 70.)
	for _, r := range rpt.Results {
		assert.GreaterOrEqual(t, r.Score, 70., r.Name)
		assert.NotEqual(t, "F", r.Grade, r.Name)
		assert.NotEmpty(t, r.Rows)
		for _, m := range benchMetrics {
			_, ok := r.MAD[m]
			assert.True(t, ok, "%s missing %s", r.Name, m)
		}
	}
}

func TestDeviationUndefinedOnZeroPublished(t *testing.T) {
	rpt := RunValidation()
	found := false
	for _, r := range rpt.Results {
		for _, row := range r.Rows {
			if row.Published == 0 && row.Modeled != 0 {
				assert.Nil(t, row.Pct, "%s %s year %d", r.Name, row.Metric, row.Year)
				found = true
			}
		}
	}
	assert.True(t, found, "expected at least one undefined deviation row")
}

func TestCalibrateSite(t *testing.T) {
	// synthesize a published series from a known multiplier, then recover it
	const trueSite = 1.1
	b := Benchmark{Name: "synthetic", Species: "loblolly-pine", TPA: 40,
		Zone: defaultUTMZone, X0: 500000, Y0: 3630000}
	p := b.Plot()
	for _, y := range []int{5, 10} {
		prj := ProjectStand(p, DefaultSpecies, y, trueSite, nil)
		b.Decades = append(b.Decades, BenchmarkDecade{Year: y, QMD: prj.Stand.QMD, BA: prj.Stand.BasalArea})
	}

	site, rmse := CalibrateSite(b)
	require.GreaterOrEqual(t, site, 0.7)
	require.LessOrEqual(t, site, 1.3)
	assert.InDelta(t, trueSite, site, 0.15)
	assert.Less(t, rmse, 1., "calibration did not approach the generating series")

	site2, rmse2 := CalibrateSite(b)
	assert.Equal(t, site, site2)
	assert.Equal(t, rmse, rmse2)
}

func TestGrades(t *testing.T) {
	assert.Equal(t, "A", grade(95))
	assert.Equal(t, "B", grade(85))
	assert.Equal(t, "C", grade(72))
	assert.Equal(t, "D", grade(60))
	assert.Equal(t, "F", grade(10))
}
