package stand

// Tree is a planted stem as supplied by the caller. X/Y are UTM coordinates
// [m] within Plot.Zone.
type Tree struct {
	ID      int
	Species string
	X, Y    float64
}

// Plot is the projector input: the planted stand plus its georeference.
// Area<=0 requests estimation from the tree bounding box; Zone==0 defaults to
// defaultUTMZone.
type Plot struct {
	Trees []Tree
	Zone  int     // UTM zone number
	Area  float64 // [ac]
}

type Status int

const (
	StatusAlive Status = iota
	StatusDead
	StatusHarvested
)

func (s Status) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	case StatusHarvested:
		return "harvested"
	}
	return "unknown"
}

// state is the per-tree simulation state. DBH is non-decreasing while alive
// and frozen on death or harvest.
type state struct {
	Tree
	sp       Species
	pf       Profile
	dbh      float64 // [in]
	cr       float64 // crown ratio
	vigor    float64
	status   Status
	endYear  int // year died or harvested
	fallback bool
}

const (
	plantingDBH = 1.0 // [in]
	plantingCR  = 0.60
	crMin       = 0.05
	crMax       = 0.95
)

// TreeResult carries the derived per-tree metrics reported at the projection
// horizon. Dead and harvested stems are frozen at their terminal DBH.
type TreeResult struct {
	ID         int
	Species    string
	Status     Status
	EndYear    int // 0 while standing
	DBH        float64
	Height     float64
	CrownWidth float64
	CrownRatio float64
	BasalArea  float64
	AGBiomass  float64 // [lb]
	BGBiomass  float64 // [lb]
	Carbon     float64 // [lb]
	CO2        float64 // [lb]
	VolumeBF   float64
	LeafArea   float64 // [ft²]
	Vigor      float64
}

// MortalityEvent records one tree death.
type MortalityEvent struct {
	TreeID  int
	Year    int
	Species string
}
