package stand

import "math"

// Species-parameterized allometric equations. All functions are pure, take
// DBH in inches and return 0 (never NaN/Inf) for non-positive diameters.

const (
	breastHeight = 4.5  // [ft]
	crownFloor   = 2.0  // [ft]
	inToCm       = 2.54
	kgToLb       = 2.20462
	merchMinDBH  = 8.0  // [in] board-foot volume onset
	merchFullDBH = 12.0 // [in] full closed-form volume
)

// Height is Chapman-Richards on DBH.
func (p Profile) Height(dbh float64) float64 {
	if dbh <= 0 {
		return breastHeight
	}
	return breastHeight + p.HtB1*math.Pow(1.-math.Exp(-p.HtB2*dbh), p.HtB3)
}

// CrownWidth [ft], floored at crownFloor.
func (p Profile) CrownWidth(dbh float64) float64 {
	w := p.CrownA + p.CrownB*dbh
	if w < crownFloor {
		return crownFloor
	}
	return w
}

// AGBiomass is the Jenkins national log-log model on DBH [cm], converted to
// pounds and scaled by the regional correction factor.
func (p Profile) AGBiomass(dbh float64, rf float64) float64 {
	if dbh <= 0 {
		return 0
	}
	cm := dbh * inToCm
	return math.Exp(p.JenkinsB0+p.JenkinsB1*math.Log(cm)) * kgToLb * rf
}

// BGBiomass applies the root:shoot ratio to above-ground biomass.
func (p Profile) BGBiomass(dbh float64, rf float64) float64 {
	return p.AGBiomass(dbh, rf) * p.RootShoot
}

// VolumeBF is merchantable board-foot volume. Between 8 and 12 in the
// closed-form value is ramped linearly from zero, standing in for the
// diameter-distribution variance of an even-aged cohort rather than any
// biological law. Species with a zero volume coefficient (palms) carry no
// merchantable volume.
func (p Profile) VolumeBF(dbh, height float64) float64 {
	if p.VolB1 == 0 || dbh < merchMinDBH {
		return 0
	}
	v := p.VolB1 * math.Pow(dbh, p.VolB2) * math.Pow(height, p.VolB3)
	if dbh < merchFullDBH {
		return v * (dbh - merchMinDBH) / (merchFullDBH - merchMinDBH)
	}
	return v
}

// LeafArea [ft²] power law.
func (p Profile) LeafArea(dbh float64) float64 {
	if dbh <= 0 {
		return 0
	}
	return p.LeafA * math.Pow(dbh, p.LeafB)
}

// beta-shaped increment curve peak, solved from d/dr[(r+.01)^.3 (1-r)^2.5]=0
var (
	incRstar = 0.275 / 2.8
	incPeak  = math.Pow(incRstar+0.01, 0.3) * math.Pow(1.-incRstar, 2.5)
)

// AnnualIncrement is the potential DBH increment [in/yr]: a beta-shaped curve
// over dbh/maxDBH normalized to peak 1, scaled by the species maximum and the
// site and competition modifiers. A floor of 0.4×max holds below 3 in so
// seedlings establish regardless of curve shape. Zero at or above maxDBH.
func AnnualIncrement(dbh, maxDBH, maxInc, site, comp float64) float64 {
	if dbh <= 0 || maxDBH <= 0 || dbh >= maxDBH {
		return 0
	}
	r := dbh / maxDBH
	f := math.Pow(r+0.01, 0.3) * math.Pow(1.-r, 2.5) / incPeak
	if dbh < 3.0 && f < 0.4 {
		f = 0.4
	}
	return maxInc * f * site * comp
}
