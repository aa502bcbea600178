package stand

// All stochastic-looking behaviour in the projector derives from a pure mix of
// (tree id, year). No shared generator state; identical inputs always
// reproduce identical stands, and independent runs can proceed in parallel.

func mix64(id, yr uint64) uint64 {
	z := id*0x9E3779B97F4A7C15 + yr*0xBF58476D1CE4E5B9
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// u01 maps (tree id, year) onto [0,1).
func u01(id int, yr int) float64 {
	return float64(mix64(uint64(id), uint64(yr))>>11) / (1 << 53)
}

// treeVigor is the fixed growth-rate scalar representing microsite/genetic
// variation, seeded by tree id alone (epoch 0) so it never varies year to year.
func treeVigor(id int) float64 {
	v := vigorMin + (vigorMax-vigorMin)*u01(id, 0)
	if v < vigorMin {
		v = vigorMin
	} else if v > vigorMax {
		v = vigorMax
	}
	return v
}

const (
	vigorMin = 0.65
	vigorMax = 1.35
)

// tieBreak orders equal-DBH stems. Mixed with the current year so successive
// thinnings in even-aged cohorts do not keep selecting the same subset.
func tieBreak(id, yr int) float64 {
	return u01(id^0x5bd1e995, yr)
}
