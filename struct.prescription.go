package stand

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/maseology/mmio"
)

// HarvestAction is the closed set of silvicultural actions a Prescription can
// schedule. Selection policy per action lives in harvest.go.
type HarvestAction int

const (
	ActionPct HarvestAction = iota
	ActionThinBelow
	ActionThinAbove
	ActionThinMechanical
	ActionSelection
	ActionShelterwoodSeed
	ActionShelterwoodRemoval
	ActionClearcut
	ActionSanitation
)

var actionNames = map[HarvestAction]string{
	ActionPct:                "pct",
	ActionThinBelow:          "thin-below",
	ActionThinAbove:          "thin-above",
	ActionThinMechanical:     "thin-mechanical",
	ActionSelection:          "selection",
	ActionShelterwoodSeed:    "shelterwood-seed",
	ActionShelterwoodRemoval: "shelterwood-removal",
	ActionClearcut:           "clearcut",
	ActionSanitation:         "sanitation",
}

func (a HarvestAction) String() string { return actionNames[a] }

// ParseAction maps an action label back to its variant.
func ParseAction(s string) (HarvestAction, error) {
	for a, n := range actionNames {
		if n == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("ParseAction: unknown harvest action %q", s)
}

// Commercial reports whether the action generates merchantable revenue;
// sanitation cuts are treated as pure costs.
func (a HarvestAction) Commercial() bool { return a != ActionSanitation }

// Treatment is one scheduled entry of a Prescription.
type Treatment struct {
	Year      int
	Action    HarvestAction
	RemovePct float64 // fraction of alive stems
	MinMerch  float64 // minimum merchantable DBH [in]; 0 disables the filter
}

// Prescription is an externally-authored, ordered management plan.
type Prescription struct {
	Name       string
	Treatments []Treatment
}

// ForYear returns the treatments scheduled for year y in plan order.
func (p *Prescription) ForYear(y int) []Treatment {
	if p == nil {
		return nil
	}
	var out []Treatment
	for _, t := range p.Treatments {
		if t.Year == y {
			out = append(out, t)
		}
	}
	return out
}

// LoadPrescription reads a year,action,removePct,minMerch csv.
func LoadPrescription(fp string) (*Prescription, error) {
	f, err := os.Open(fp)
	if err != nil {
		return nil, fmt.Errorf("LoadPrescription: %v", err)
	}
	defer f.Close()

	p := Prescription{Name: mmio.FileName(fp, false)}
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		y, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("LoadPrescription: %v", err)
		}
		a, err := ParseAction(rec[1])
		if err != nil {
			return nil, err
		}
		pct, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("LoadPrescription: %v", err)
		}
		mm, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("LoadPrescription: %v", err)
		}
		p.Treatments = append(p.Treatments, Treatment{Year: y, Action: a, RemovePct: pct, MinMerch: mm})
	}
	return &p, nil
}
