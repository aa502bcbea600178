package stand

import (
	"fmt"
	"math"

	"github.com/maseology/objfunc"
)

// Deviation compares one modeled metric against its published value. Pct is
// nil when the published value is zero and the model is not: the relative
// deviation is undefined there and the row is excluded from scoring.
type Deviation struct {
	Year      int
	Metric    string
	Published float64
	Modeled   float64
	Pct       *float64 // signed percent
}

// BenchmarkResult scores one yield table.
type BenchmarkResult struct {
	Name  string
	Rows  []Deviation
	MAD   map[string]float64 // mean absolute deviation per metric [%]
	Score float64
	Grade string

	// pooled modeled-vs-published statistics
	NSE, RMSE, Bias float64
}

// ValidationReport aggregates all bundled benchmarks.
type ValidationReport struct {
	Results []BenchmarkResult
	Score   float64
	Grade   string
}

var benchMetrics = []string{"tpa", "qmd", "ba", "volume", "biomass"}

// RunValidation drives the projector over every bundled benchmark and scores
// the deviation from the published tables.
func RunValidation() *ValidationReport {
	rpt := ValidationReport{}
	sum, n := 0., 0
	for _, b := range Benchmarks() {
		r := b.run()
		rpt.Results = append(rpt.Results, r)
		for _, row := range r.Rows {
			if row.Pct != nil {
				sum += math.Abs(*row.Pct)
				n++
			}
		}
	}
	if n > 0 {
		rpt.Score = score(sum / float64(n))
	}
	rpt.Grade = grade(rpt.Score)
	return &rpt
}

func (b Benchmark) run() BenchmarkResult {
	r := BenchmarkResult{Name: b.Name, MAD: map[string]float64{}}
	p := b.Plot()

	var pub, mod []float64
	madn := map[string]int{}
	for _, d := range b.Decades {
		prj := ProjectStand(p, DefaultSpecies, d.Year, b.Site, nil)
		s := prj.Stand
		modeled := []float64{s.TPA, s.QMD, s.BasalArea, s.VolumeBF, s.AGBiomass}
		published := []float64{d.TPA, d.QMD, d.BA, d.VolumeBF, d.Biomass}
		for i, m := range benchMetrics {
			row := Deviation{Year: d.Year, Metric: m, Published: published[i], Modeled: modeled[i]}
			if published[i] != 0 {
				pct := (modeled[i] - published[i]) / published[i] * 100.
				row.Pct = &pct
			} else if modeled[i] == 0 {
				zero := 0.
				row.Pct = &zero
			}
			if row.Pct != nil {
				r.MAD[m] += math.Abs(*row.Pct)
				madn[m]++
			}
			r.Rows = append(r.Rows, row)
			pub = append(pub, published[i])
			mod = append(mod, modeled[i])
		}
	}

	sum, n := 0., 0
	for m, s := range r.MAD {
		r.MAD[m] = s / float64(madn[m])
		sum += s
		n += madn[m]
	}
	r.Score = score(sum / float64(n))
	r.Grade = grade(r.Score)
	r.NSE = objfunc.NSE(pub, mod)
	r.RMSE = objfunc.RMSE(pub, mod)
	r.Bias = objfunc.Bias(pub, mod)
	return r
}

func score(mad float64) float64 {
	s := 100. - mad
	if s < 0 {
		return 0
	}
	return s
}

func grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	}
	return "F"
}

// Print writes one summary line per benchmark plus the overall grade.
func (rpt *ValidationReport) Print() {
	for _, r := range rpt.Results {
		fmt.Printf(" %-42s score: %5.1f (%s)  NSE: %.3f  RMSE: %.1f  Bias: %.3f\n",
			r.Name, r.Score, r.Grade, r.NSE, r.RMSE, r.Bias)
	}
	fmt.Printf(" overall: %.1f (%s)\n", rpt.Score, rpt.Grade)
}
