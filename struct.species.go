package stand

// Species is the reference record supplied by the host application: group
// membership plus the per-species limits the growth model needs. Equation
// coefficients live on the group Profile.
type Species struct {
	Code      string  // e.g. "loblolly-pine"
	Group     string  // profile key, e.g. "pine-hard"
	MaxDBH    float64 // [in]
	Increment float64 // typical max annual DBH increment [in/yr]; 0 defers to profile
	Mortality float64 // background annual mortality rate
	LAI       float64 // leaf area index
	Density   float64 // wood specific gravity
}

// SpeciesLookup narrows the host's species storage to the one capability the
// projector needs.
type SpeciesLookup interface {
	Species(code string) (Species, bool)
}

// MapLookup adapts a plain map to SpeciesLookup.
type MapLookup map[string]Species

func (m MapLookup) Species(code string) (Species, bool) {
	s, ok := m[code]
	return s, ok
}

// Profile holds the immutable per-species-group allometric coefficients.
type Profile struct {
	HtB1, HtB2, HtB3     float64 // Chapman-Richards height
	CrownA, CrownB       float64 // crown width, linear on DBH
	JenkinsB0, JenkinsB1 float64 // above-ground biomass, log-log on DBH [cm]
	VolB1, VolB2, VolB3  float64 // board-foot volume; VolB1==0 means no merchantable volume
	LeafA, LeafB         float64 // leaf area power law
	MaxIncrement         float64 // [in/yr] fallback when Species.Increment==0
	RootShoot            float64 // below:above ground biomass ratio
	MaxSDI               float64 // Reineke maximum stand density index
	Hardwood             bool
}

// DefaultGroup is the documented degraded-accuracy fallback applied when a
// species or its group is absent from the lookup. Projections record when it
// fires (Projection.SpeciesFallbacks).
const DefaultGroup = "mixed-hardwood"

var profiles = map[string]Profile{
	"pine-hard": { // loblolly, shortleaf, slash
		HtB1: 120, HtB2: .08, HtB3: 1.1,
		CrownA: 1.7, CrownB: 1.6,
		JenkinsB0: -2.5356, JenkinsB1: 2.4349,
		VolB1: .007, VolB2: 1.8, VolB3: 1.1,
		LeafA: .45, LeafB: 1.9,
		MaxIncrement: .55, RootShoot: .20, MaxSDI: 450,
	},
	"pine-soft": { // red, white, jack
		HtB1: 100, HtB2: .07, HtB3: 1.1,
		CrownA: 1.8, CrownB: 1.5,
		JenkinsB0: -2.5356, JenkinsB1: 2.4349,
		VolB1: .006, VolB2: 1.8, VolB3: 1.05,
		LeafA: .4, LeafB: 1.85,
		MaxIncrement: .4, RootShoot: .21, MaxSDI: 400,
	},
	"douglas-fir": {
		HtB1: 180, HtB2: .05, HtB3: 1.15,
		CrownA: 2, CrownB: 1.55,
		JenkinsB0: -2.2304, JenkinsB1: 2.4435,
		VolB1: .0065, VolB2: 1.85, VolB3: 1.1,
		LeafA: .5, LeafB: 1.95,
		MaxIncrement: .5, RootShoot: .19, MaxSDI: 600,
	},
	"spruce-fir": {
		HtB1: 110, HtB2: .06, HtB3: 1.1,
		CrownA: 1.9, CrownB: 1.4,
		JenkinsB0: -2.0773, JenkinsB1: 2.3323,
		VolB1: .0055, VolB2: 1.8, VolB3: 1.05,
		LeafA: .55, LeafB: 1.9,
		MaxIncrement: .35, RootShoot: .22, MaxSDI: 480,
	},
	"oak-hickory": {
		HtB1: 95, HtB2: .06, HtB3: 1.05,
		CrownA: 2.5, CrownB: 1.8,
		JenkinsB0: -2.0127, JenkinsB1: 2.4342,
		VolB1: .0055, VolB2: 1.9, VolB3: 1,
		LeafA: .6, LeafB: 1.8,
		MaxIncrement: .3, RootShoot: .23, MaxSDI: 350,
		Hardwood: true,
	},
	"maple-birch": {
		HtB1: 90, HtB2: .065, HtB3: 1.05,
		CrownA: 2.2, CrownB: 1.7,
		JenkinsB0: -1.9123, JenkinsB1: 2.3651,
		VolB1: .005, VolB2: 1.85, VolB3: 1,
		LeafA: .65, LeafB: 1.75,
		MaxIncrement: .3, RootShoot: .23, MaxSDI: 380,
		Hardwood: true,
	},
	"mixed-hardwood": {
		HtB1: 85, HtB2: .06, HtB3: 1,
		CrownA: 2, CrownB: 1.7,
		JenkinsB0: -2.48, JenkinsB1: 2.4835,
		VolB1: .005, VolB2: 1.85, VolB3: 1,
		LeafA: .6, LeafB: 1.8,
		MaxIncrement: .3, RootShoot: .24, MaxSDI: 380,
		Hardwood: true,
	},
	"palm": { // no merchantable stem
		HtB1: 40, HtB2: .25, HtB3: 1,
		CrownA: 6, CrownB: .5,
		JenkinsB0: -2.48, JenkinsB1: 2.4835,
		VolB1: 0, VolB2: 0, VolB3: 0,
		LeafA: 3, LeafB: .8,
		MaxIncrement: .2, RootShoot: .3, MaxSDI: 250,
		Hardwood: true,
	},
}

// GroupProfile returns the coefficients for a species group, falling back to
// DefaultGroup. The second return reports whether the fallback fired.
func GroupProfile(group string) (Profile, bool) {
	if p, ok := profiles[group]; ok {
		return p, true
	}
	return profiles[DefaultGroup], false
}

// DefaultSpecies is the reference table compiled in for stand projections run
// without a host-supplied lookup.
var DefaultSpecies = MapLookup{
	"loblolly-pine":    {Code: "loblolly-pine", Group: "pine-hard", MaxDBH: 30, Increment: .6, Mortality: .005, LAI: 3.5, Density: .47},
	"shortleaf-pine":   {Code: "shortleaf-pine", Group: "pine-hard", MaxDBH: 28, Increment: .45, Mortality: .006, LAI: 3.2, Density: .47},
	"red-pine":         {Code: "red-pine", Group: "pine-soft", MaxDBH: 24, Increment: .38, Mortality: .004, LAI: 3, Density: .41},
	"white-pine":       {Code: "white-pine", Group: "pine-soft", MaxDBH: 36, Increment: .42, Mortality: .004, LAI: 3.4, Density: .34},
	"douglas-fir":      {Code: "douglas-fir", Group: "douglas-fir", MaxDBH: 60, Increment: .55, Mortality: .004, LAI: 5.5, Density: .45},
	"white-spruce":     {Code: "white-spruce", Group: "spruce-fir", MaxDBH: 28, Increment: .3, Mortality: .005, LAI: 4.5, Density: .37},
	"white-oak":        {Code: "white-oak", Group: "oak-hickory", MaxDBH: 36, Increment: .28, Mortality: .006, LAI: 4, Density: .6},
	"northern-red-oak": {Code: "northern-red-oak", Group: "oak-hickory", MaxDBH: 38, Increment: .32, Mortality: .006, LAI: 4, Density: .56},
	"sugar-maple":      {Code: "sugar-maple", Group: "maple-birch", MaxDBH: 34, Increment: .25, Mortality: .006, LAI: 4.5, Density: .56},
	"red-maple":        {Code: "red-maple", Group: "maple-birch", MaxDBH: 30, Increment: .3, Mortality: .007, LAI: 4, Density: .49},
	"cabbage-palm":     {Code: "cabbage-palm", Group: "palm", MaxDBH: 16, Increment: .2, Mortality: .008, LAI: 2, Density: .4},
}

// fallbackSpecies is returned when a code is missing entirely from the lookup.
func fallbackSpecies(code string) Species {
	return Species{Code: code, Group: DefaultGroup, MaxDBH: 30, Increment: 0, Mortality: .006, LAI: 4, Density: .5}
}
