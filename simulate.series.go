package stand

import "github.com/gosuri/uiprogress"

// ProjectSeries projects the plot to every step-year snapshot up to yr.
// Each snapshot is an independent full run from planting; determinism makes
// the re-runs cheap to reason about and safe to memoize externally.
func ProjectSeries(p Plot, sl SpeciesLookup, yr int, site float64, rx *Prescription, step int) []*Projection {
	if step <= 0 {
		step = 1
	}
	var yrs []int
	for y := step; y <= yr; y += step {
		yrs = append(yrs, y)
	}
	if len(yrs) == 0 || yrs[len(yrs)-1] != yr {
		yrs = append(yrs, yr)
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(len(yrs)).AppendCompleted().PrependElapsed()

	out := make([]*Projection, len(yrs))
	for i, y := range yrs {
		out[i] = ProjectStand(p, sl, y, site, rx)
		bar.Incr()
	}
	uiprogress.Stop()
	return out
}
