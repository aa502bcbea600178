package stand

// Annual mortality probability: species background rate plus a
// density-dependent addend blended between an urban curve (weak density
// response) and a natural self-thinning curve (onset at relative density
// 0.25, accelerating above 0.55), then scaled by crown-ratio vigor. The
// survival draw itself happens in simulate.go from u01(id, year).

const (
	urbanOnset   = 0.50
	urbanSlope   = 0.005
	natOnset     = 0.25
	natSlope     = 0.015
	natAccOnset  = 0.55
	natAccFactor = 0.6
)

func mortalityP(rd, ctx, cr, background float64) float64 {
	urban := 0.
	if rd > urbanOnset {
		urban = urbanSlope * (rd - urbanOnset)
	}
	nat := 0.
	if rd > natOnset {
		nat = natSlope * (rd - natOnset)
		if rd > natAccOnset {
			nat += natAccFactor * (rd - natAccOnset) * (rd - natAccOnset)
		}
	}
	return (background + (1.-ctx)*urban + ctx*nat) * crownMultiplier(cr)
}

// crownMultiplier penalizes suppressed crowns: 0.7× above CR 0.5 ramping to
// 4× below CR 0.2.
func crownMultiplier(cr float64) float64 {
	if cr > 0.5 {
		return 0.7
	}
	if cr < 0.2 {
		return 4.0
	}
	return 0.7 + (0.5-cr)/0.3*(4.0-0.7)
}
