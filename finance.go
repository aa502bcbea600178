package stand

import "math"

// Product is the timber product class a stem grades into.
type Product int

const (
	ProductNone Product = iota
	ProductPulpwood
	ProductPoletimber
	ProductSawtimber
	ProductVeneer
)

func (p Product) String() string {
	switch p {
	case ProductPulpwood:
		return "pulpwood"
	case ProductPoletimber:
		return "poletimber"
	case ProductSawtimber:
		return "sawtimber"
	case ProductVeneer:
		return "veneer"
	}
	return "non-merchantable"
}

const (
	veneerMinDBH   = 18.
	sawMinSoftwood = 9.
	sawMinHardwood = 11.
	poleMinDBH     = 7.
	pulpMinDBH     = 5.
	honerA, honerB = 0.69, 350. // total cubic volume D²/(a+b/H), Honer 1983
	cuftPerCord    = 79.        // solid wood per stacked cord
	tonsPerCord    = 2.5
)

// veneer-grade species groups
var veneerGroups = map[string]bool{"oak-hickory": true, "maple-birch": true}

// ClassifyProduct grades a stem by DBH and species group.
func ClassifyProduct(dbh float64, group string) Product {
	pf, _ := GroupProfile(group)
	switch {
	case dbh >= veneerMinDBH && veneerGroups[group]:
		return ProductVeneer
	case !pf.Hardwood && dbh >= sawMinSoftwood, pf.Hardwood && dbh >= sawMinHardwood:
		return ProductSawtimber
	case dbh >= poleMinDBH:
		return ProductPoletimber
	case dbh >= pulpMinDBH:
		return ProductPulpwood
	}
	return ProductNone
}

// StumpageTable prices standing timber by species group and product:
// $/MBF for sawtimber and veneer, $/ton for poletimber and pulpwood.
type StumpageTable map[string]map[Product]float64

var DefaultStumpage = StumpageTable{
	"pine-hard":      {ProductSawtimber: 380, ProductPoletimber: 18, ProductPulpwood: 10},
	"pine-soft":      {ProductSawtimber: 320, ProductPoletimber: 15, ProductPulpwood: 9},
	"douglas-fir":    {ProductSawtimber: 520, ProductPoletimber: 22, ProductPulpwood: 11},
	"spruce-fir":     {ProductSawtimber: 300, ProductPoletimber: 14, ProductPulpwood: 9},
	"oak-hickory":    {ProductVeneer: 1400, ProductSawtimber: 620, ProductPoletimber: 16, ProductPulpwood: 8},
	"maple-birch":    {ProductVeneer: 1100, ProductSawtimber: 540, ProductPoletimber: 15, ProductPulpwood: 8},
	"mixed-hardwood": {ProductSawtimber: 350, ProductPoletimber: 12, ProductPulpwood: 7},
	"palm":           {},
}

// TreeHarvestValue prices one harvested stem. Sawtimber and veneer are priced
// per thousand board feet; smaller products through Honer cord volume at 2.5
// tons to the cord.
func TreeHarvestValue(t HarvestedTree, group string, prices StumpageTable) float64 {
	pp, ok := prices[group]
	if !ok {
		pp = prices[DefaultGroup]
	}
	switch p := ClassifyProduct(t.DBH, group); p {
	case ProductVeneer, ProductSawtimber:
		return t.VolumeBF / 1000. * pp[p]
	case ProductPoletimber, ProductPulpwood:
		if t.Height <= 0 {
			return 0
		}
		cords := t.DBH * t.DBH / (honerA + honerB/t.Height) / cuftPerCord
		return cords * pp[p] * tonsPerCord
	}
	return 0
}

// CashFlow is one signed entry of the investment timeline.
type CashFlow struct {
	Year   int
	Amount float64 // [$], negative for costs
	Label  string
}

// CostSchedule carries the per-acre management cost assumptions.
type CostSchedule struct {
	SitePrep      float64 // [$/ac] year 0
	Planting      float64 // [$/ac] year 0
	AnnualTax     float64 // [$/ac/yr]
	AnnualMgmt    float64 // [$/ac/yr]
	Cruise        float64 // [$/ac] per commercial entry
	Precommercial float64 // [$/ac] per sanitation entry
}

var DefaultCosts = CostSchedule{SitePrep: 110, Planting: 160, AnnualTax: 8, AnnualMgmt: 12, Cruise: 45, Precommercial: 95}

// Investment is the cash-flow analysis of a rotation.
type Investment struct {
	CashFlows []CashFlow
	Revenue   float64
	Cost      float64
	NPV       float64
	LEV       float64 // Faustmann land expectation value
	IRR       *float64
	Rate      float64
	Rotation  int
}

// AnalyzeInvestment builds the full rotation cash-flow timeline from the
// harvest log and cost schedule, then derives NPV, LEV and IRR at the given
// discount rate. Species are priced through the default lookup and stumpage
// table; nil costs selects DefaultCosts.
func AnalyzeInvestment(events []HarvestEvent, area float64, rotation int, costs *CostSchedule, rate float64) *Investment {
	if costs == nil {
		c := DefaultCosts
		costs = &c
	}
	inv := Investment{Rate: rate, Rotation: rotation}

	inv.add(CashFlow{Year: 0, Amount: -(costs.SitePrep + costs.Planting) * area, Label: "establishment"})
	for y := 1; y <= rotation; y++ {
		inv.add(CashFlow{Year: y, Amount: -(costs.AnnualTax + costs.AnnualMgmt) * area, Label: "carrying"})
	}
	for _, ev := range events {
		if !ev.Action.Commercial() {
			inv.add(CashFlow{Year: ev.Year, Amount: -costs.Precommercial * area, Label: ev.Label})
			continue
		}
		rev := 0.
		for _, t := range ev.Trees {
			sp, ok := DefaultSpecies.Species(t.Species)
			if !ok {
				sp = fallbackSpecies(t.Species)
			}
			rev += TreeHarvestValue(t, sp.Group, DefaultStumpage)
		}
		inv.add(CashFlow{Year: ev.Year, Amount: -costs.Cruise * area, Label: ev.Label + " cruise"})
		inv.add(CashFlow{Year: ev.Year, Amount: rev, Label: ev.Label})
	}

	inv.NPV = NPV(inv.CashFlows, rate)
	if rotation > 0 {
		inv.LEV = inv.NPV / (1. - math.Pow(1.+rate, -float64(rotation)))
	}
	inv.IRR = IRR(inv.CashFlows)
	return &inv
}

func (inv *Investment) add(cf CashFlow) {
	inv.CashFlows = append(inv.CashFlows, cf)
	if cf.Amount >= 0 {
		inv.Revenue += cf.Amount
	} else {
		inv.Cost -= cf.Amount
	}
}

// NPV discounts a cash-flow list at rate.
func NPV(flows []CashFlow, rate float64) float64 {
	s := 0.
	for _, f := range flows {
		s += f.Amount / math.Pow(1.+rate, float64(f.Year))
	}
	return s
}

const (
	irrLo, irrHi = -0.5, 2.0
	irrIters     = 100
	irrTol       = 1e-7
)

// IRR solves NPV(r)=0 by bisection over [-0.5, 2.0]. Returns nil when the
// flows are single-signed or no root is bracketed: "IRR undefined", not an
// error.
func IRR(flows []CashFlow) *float64 {
	neg, pos := false, false
	for _, f := range flows {
		if f.Amount < 0 {
			neg = true
		}
		if f.Amount > 0 {
			pos = true
		}
	}
	if !neg || !pos {
		return nil
	}

	lo, hi := irrLo, irrHi
	flo, fhi := NPV(flows, lo), NPV(flows, hi)
	if flo*fhi > 0 {
		return nil
	}
	for i := 0; i < irrIters; i++ {
		mid := (lo + hi) / 2.
		fm := NPV(flows, mid)
		if math.Abs(fm) < irrTol || (hi-lo)/2. < irrTol {
			return &mid
		}
		if flo*fm < 0 {
			hi, fhi = mid, fm
		} else {
			lo, flo = mid, fm
		}
	}
	mid := (lo + hi) / 2.
	return &mid
}
