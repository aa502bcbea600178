package stand

import (
	"fmt"
	"sort"
)

// Projection is the result of driving a Plot to a target year.
type Projection struct {
	Year      int
	Trees     []TreeResult
	Stand     Snapshot
	Mortality []MortalityEvent
	Harvests  []HarvestEvent
	Alive     int
	Dead      int
	Harvested int
	Region    Region
	Area      float64 // [ac]

	// degraded-accuracy flags
	SpeciesFallbacks []string
	RegionFallback   bool
}

const (
	edgeBuffer = 3.0 // [m] added around the tree bounding box
	m2PerAcre  = 4046.86
	areaFloor  = 0.01 // [ac]
)

// projector carries one run's mutable state, input order preserved.
type projector struct {
	ss     []*state
	area   float64
	site   float64
	region Region
	fbacks []string
}

// ProjectStand steps the stand year by year to yr. Identical inputs produce
// bit-identical projections; see rng.go. An empty plot returns the canonical
// empty projection, never an error. yr<0 is a programming error.
func ProjectStand(p Plot, sl SpeciesLookup, yr int, site float64, rx *Prescription) *Projection {
	if yr < 0 {
		panic(fmt.Sprintf("ProjectStand: negative projection year %d", yr))
	}
	if sl == nil {
		sl = DefaultSpecies
	}
	if len(p.Trees) == 0 {
		return &Projection{Year: yr, Stand: Snapshot{Year: yr, Stocking: stockingLabel(0)}, Region: RegionDefault}
	}

	pr := newProjector(p, sl, site)
	out := &Projection{Year: yr, Region: pr.region, Area: pr.area, SpeciesFallbacks: pr.fbacks,
		RegionFallback: pr.region == RegionDefault}

	for y := 1; y <= yr; y++ {
		if !pr.step(y, rx, out) {
			break // every tree dead or harvested
		}
	}
	pr.report(out)
	return out
}

func newProjector(p Plot, sl SpeciesLookup, site float64) *projector {
	pr := projector{site: site, ss: make([]*state, len(p.Trees))}

	xn, xx, yn, yx := p.Trees[0].X, p.Trees[0].X, p.Trees[0].Y, p.Trees[0].Y
	seen := map[string]bool{}
	for i, t := range p.Trees {
		sp, ok := sl.Species(t.Species)
		if !ok {
			sp = fallbackSpecies(t.Species)
		}
		pf, pok := GroupProfile(sp.Group)
		if (!ok || !pok) && !seen[t.Species] {
			seen[t.Species] = true
			pr.fbacks = append(pr.fbacks, t.Species)
		}
		pr.ss[i] = &state{Tree: t, sp: sp, pf: pf, dbh: plantingDBH, cr: plantingCR,
			vigor: treeVigor(t.ID), fallback: !ok || !pok}
		if t.X < xn {
			xn = t.X
		}
		if t.X > xx {
			xx = t.X
		}
		if t.Y < yn {
			yn = t.Y
		}
		if t.Y > yx {
			yx = t.Y
		}
	}

	pr.area = p.Area
	if pr.area <= 0 {
		pr.area = (xx - xn + 2*edgeBuffer) * (yx - yn + 2*edgeBuffer) / m2PerAcre
		if pr.area < areaFloor {
			pr.area = areaFloor
		}
	}
	pr.region = InferRegion((xn+xx)/2., (yn+yx)/2., p.Zone)
	return &pr
}

// step advances one year. Returns false once no live stems remain.
func (pr *projector) step(y int, rx *Prescription, out *Projection) bool {
	alive := pr.alive()
	if len(alive) == 0 {
		return false
	}
	tpa, rd := pr.density(alive)

	// scheduled silviculture first, then density re-derived from survivors
	if ts := rx.ForYear(y); len(ts) > 0 {
		for _, t := range ts {
			if ev := pr.execute(t, y); ev != nil {
				out.Harvests = append(out.Harvests, *ev)
			}
		}
		if alive = pr.alive(); len(alive) == 0 {
			return false
		}
		tpa, rd = pr.density(alive)
	}

	cm := competitionModifier(rd)
	ctx := contextScore(len(alive), pr.area, tpa)

	for _, s := range alive {
		if u01(s.ID, y) < mortalityP(rd, ctx, s.cr, s.sp.Mortality) {
			s.status = StatusDead
			s.endYear = y
			out.Mortality = append(out.Mortality, MortalityEvent{TreeID: s.ID, Year: y, Species: s.Species})
		}
	}

	surv := pr.alive()
	sort.Slice(surv, func(i, j int) bool {
		if surv[i].dbh != surv[j].dbh {
			return surv[i].dbh < surv[j].dbh
		}
		return surv[i].ID < surv[j].ID
	})
	n := float64(len(surv))
	for i, s := range surv {
		s.cr = crownStep(s.cr, (float64(i)+.5)/n, rd)
		maxInc := s.sp.Increment
		if maxInc == 0 {
			maxInc = s.pf.MaxIncrement
		}
		s.dbh += AnnualIncrement(s.dbh, s.sp.MaxDBH, maxInc, pr.site, cm) * s.vigor
		if s.dbh > s.sp.MaxDBH {
			s.dbh = s.sp.MaxDBH
		}
	}
	pr.checkConservation(y)
	return len(surv) > 0
}

func (pr *projector) alive() []*state {
	out := make([]*state, 0, len(pr.ss))
	for _, s := range pr.ss {
		if s.status == StatusAlive {
			out = append(out, s)
		}
	}
	return out
}

func (pr *projector) density(alive []*state) (tpa, rd float64) {
	dbhs, msdi := make([]float64, len(alive)), 0.
	for i, s := range alive {
		dbhs[i] = s.dbh
		msdi += s.pf.MaxSDI
	}
	msdi /= float64(len(alive)) // alive-weighted mean maximum SDI
	tpa = float64(len(alive)) / pr.area
	sdi := StandDensityIndex(tpa, QuadraticMeanDiameter(dbhs))
	return tpa, sdi / msdi
}

// tree count conservation: alive+dead+harvested must equal the planted total
func (pr *projector) checkConservation(y int) {
	na, nd, nh := 0, 0, 0
	for _, s := range pr.ss {
		switch s.status {
		case StatusAlive:
			na++
		case StatusDead:
			nd++
		case StatusHarvested:
			nh++
		}
	}
	if na+nd+nh != len(pr.ss) {
		panic(fmt.Sprintf("projector: tree count conservation failed year %d: %d+%d+%d != %d", y, na, nd, nh, len(pr.ss)))
	}
}

func (pr *projector) report(out *Projection) {
	rfS := BiomassFactor(pr.region, false)
	rfH := BiomassFactor(pr.region, true)

	var dbhs []float64
	out.Trees = make([]TreeResult, len(pr.ss))
	for i, s := range pr.ss {
		rf := rfS
		if s.pf.Hardwood {
			rf = rfH
		}
		ht := s.pf.Height(s.dbh)
		ag := s.pf.AGBiomass(s.dbh, rf)
		bg := s.pf.BGBiomass(s.dbh, rf)
		vol := s.pf.VolumeBF(s.dbh, ht)
		carbon := carbonFrac * (ag + bg)
		out.Trees[i] = TreeResult{
			ID: s.ID, Species: s.Species, Status: s.status, EndYear: s.endYear,
			DBH: s.dbh, Height: ht, CrownWidth: s.pf.CrownWidth(s.dbh), CrownRatio: s.cr,
			BasalArea: BasalArea(s.dbh), AGBiomass: ag, BGBiomass: bg,
			Carbon: carbon, CO2: carbon * co2PerCarbon,
			VolumeBF: vol, LeafArea: s.pf.LeafArea(s.dbh), Vigor: s.vigor,
		}
		switch s.status {
		case StatusAlive:
			out.Alive++
			dbhs = append(dbhs, s.dbh)
			out.Stand.VolumeBF += vol / pr.area
			out.Stand.AGBiomass += ag / pr.area
			out.Stand.Biomass += (ag + bg) / pr.area
		case StatusDead:
			out.Dead++
		case StatusHarvested:
			out.Harvested++
		}
	}

	out.Stand.Year = out.Year
	out.Stand.TPA = float64(out.Alive) / pr.area
	out.Stand.QMD = QuadraticMeanDiameter(dbhs)
	out.Stand.SDI = StandDensityIndex(out.Stand.TPA, out.Stand.QMD)
	if out.Alive > 0 {
		_, rd := pr.density(pr.alive())
		out.Stand.RelDens = rd
	}
	for _, d := range dbhs {
		out.Stand.BasalArea += BasalArea(d) / pr.area
	}
	out.Stand.Carbon = carbonFrac * out.Stand.Biomass
	out.Stand.Stocking = stockingLabel(out.Stand.RelDens)
}
