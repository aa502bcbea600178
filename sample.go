package stand

import (
	"math"
	"math/rand"
	"sync"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

const nSampleDim = 2 // site multiplier, planting density

// SampleYield runs a Latin hypercube sweep over site multiplier [0.7,1.3]
// and planting density [100,700] stems/ac, projecting each sample yr years
// and writing the sample space with its responses to csv. Runs are
// independent and deterministic, so they fan out across nwrkrs goroutines.
func SampleYield(csvfp, species string, yr, n, nwrkrs int, seed int64) {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	sp := smpln.NewLHC(rng, n, nSampleDim, false)

	type rec struct {
		k         int
		site, tpa float64
		qmd, ba   float64
		vol, bm   float64
	}
	recs := make([]rec, n)

	var wg sync.WaitGroup
	sem := make(chan struct{}, nwrkrs)
	for k := 0; k < n; k++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(k int) {
			defer wg.Done()
			defer func() { <-sem }()
			site := mmaths.LinearTransform(0.7, 1.3, sp.U[0][k])
			tpa := math.Round(mmaths.LinearTransform(100., 700., sp.U[1][k]))

			b := Benchmark{Species: species, TPA: int(tpa), Zone: defaultUTMZone, X0: 500000, Y0: 3630000}
			prj := ProjectStand(b.Plot(), DefaultSpecies, yr, site, nil)
			recs[k] = rec{k, site, tpa, prj.Stand.QMD, prj.Stand.BasalArea, prj.Stand.VolumeBF, prj.Stand.AGBiomass}
		}(k)
	}
	wg.Wait()

	ks, sites, tpas, qmds, bas, vols, bms := make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n)
	for k, r := range recs {
		ks[k], sites[k], tpas[k], qmds[k], bas[k], vols[k], bms[k] = r.k, r.site, r.tpa, r.qmd, r.ba, r.vol, r.bm
	}
	mmio.WriteCSV(csvfp, "k,site,tpa,qmd,ba,volbf,agbiomass", ks, sites, tpas, qmds, bas, vols, bms)
}
