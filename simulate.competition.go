package stand

import "math"

// competitionModifier scales potential growth by relative density: free
// growth below 0.20, steepening piecewise-linear decline to 0.80, then a
// power decay floored near stagnation.
func competitionModifier(rd float64) float64 {
	switch {
	case rd < 0.20:
		return 1.0
	case rd < 0.50:
		return 1.0 - (rd-0.20)/0.30*0.40
	case rd < 0.80:
		return 0.60 - (rd-0.50)/0.30*0.35
	}
	f := 0.25 * math.Pow(0.25/0.60, (rd-0.80)/0.30)
	if f < 0.05 {
		return 0.05
	}
	return f
}

// contextScore infers how "forest-like" a stand is on [0,1] from stem count,
// area and density; it weights the blend between the urban and natural
// (self-thinning) mortality curves.
func contextScore(n int, area, tpa float64) float64 {
	c := func(x float64) float64 {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return 0.35*c((float64(n)-25.)/150.) + 0.25*c((area-0.1)/0.9) + 0.40*c((tpa-80.)/220.)
}

// crownStep updates a crown ratio given the tree's basal-area rank among
// survivors (0 smallest, 1 largest). Everything recovers in open stands;
// under competition dominants hold crown while the suppressed tail recedes,
// faster the denser the stand.
func crownStep(cr, rank, rd float64) float64 {
	switch {
	case rd < 0.35:
		cr += 0.01
	case rank > 0.67:
		cr += 0.005
	case rank < 0.33:
		cr -= 0.015 * rd
	default:
		cr -= 0.005 * rd
	}
	if cr < crMin {
		return crMin
	}
	if cr > crMax {
		return crMax
	}
	return cr
}
