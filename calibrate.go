package stand

import (
	"math"
	"math/rand"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/maseology/mmaths"
	"github.com/maseology/montecarlo/smpln"
	"github.com/maseology/objfunc"
)

const (
	calSeed   = 1984 // fixed so calibration runs are repeatable
	calBatch  = 32
	calRounds = 4
)

// CalibrateSite searches the site-index multiplier that best reproduces a
// benchmark's published QMD and basal-area series, minimizing RMSE over the
// decade rows. Successive Latin hypercube batches shrink the search interval
// around the incumbent. Returns the multiplier and its pooled RMSE.
func CalibrateSite(b Benchmark) (float64, float64) {
	p := b.Plot()

	obs := make([]float64, 0, 2*len(b.Decades))
	for _, d := range b.Decades {
		obs = append(obs, d.QMD, d.BA)
	}

	eval := func(site float64) float64 {
		sim := make([]float64, 0, len(obs))
		for _, d := range b.Decades {
			prj := ProjectStand(p, DefaultSpecies, d.Year, site, nil)
			sim = append(sim, prj.Stand.QMD, prj.Stand.BasalArea)
		}
		return objfunc.RMSE(obs, sim)
	}

	rng := rand.New(mrg63k3a.New())
	rng.Seed(calSeed)

	lo, hi := 0.7, 1.3
	best, fbest := 1.0, eval(1.0)
	for r := 0; r < calRounds; r++ {
		sp := smpln.NewLHC(rng, calBatch, 1, false)
		for k := 0; k < calBatch; k++ {
			site := mmaths.LinearTransform(lo, hi, sp.U[0][k])
			if f := eval(site); f < fbest {
				best, fbest = site, f
			}
		}
		w := (hi - lo) / 4.
		lo, hi = math.Max(0.7, best-w), math.Min(1.3, best+w)
	}
	return best, fbest
}
