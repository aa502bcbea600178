package stand

import "math"

// Snapshot aggregates the standing (alive, unharvested) trees. It is derived
// fresh on every call and never mutated in place.
type Snapshot struct {
	Year      int
	TPA       float64
	BasalArea float64 // [ft²/ac]
	QMD       float64 // [in]
	SDI       float64
	RelDens   float64 // SDI over alive-weighted mean max SDI
	VolumeBF  float64 // [bf/ac]
	AGBiomass float64 // above-ground [lb/ac]
	Biomass   float64 // above+below ground [lb/ac]
	Carbon    float64 // [lb/ac]
	Stocking  string
}

const (
	baFactor     = 0.005454154 // in² to ft²
	reinekeExp   = 1.605
	carbonFrac   = 0.5
	co2PerCarbon = 3.667
)

// BasalArea of a single stem [ft²].
func BasalArea(dbh float64) float64 {
	if dbh <= 0 {
		return 0
	}
	return baFactor * dbh * dbh
}

// QuadraticMeanDiameter [in] of a population.
func QuadraticMeanDiameter(dbhs []float64) float64 {
	if len(dbhs) == 0 {
		return 0
	}
	s := 0.
	for _, d := range dbhs {
		s += d * d
	}
	return math.Sqrt(s / float64(len(dbhs)))
}

// StandDensityIndex is Reineke's SDI.
func StandDensityIndex(tpa, qmd float64) float64 {
	if tpa <= 0 || qmd <= 0 {
		return 0
	}
	return tpa * math.Pow(qmd/10., reinekeExp)
}

func stockingLabel(rd float64) string {
	switch {
	case rd <= 0:
		return "nonstocked"
	case rd < 0.20:
		return "understocked"
	case rd < 0.35:
		return "moderately stocked"
	case rd < 0.60:
		return "fully stocked"
	}
	return "overstocked"
}
