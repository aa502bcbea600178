package stand

import (
	"fmt"
	"math"
	"sort"
)

// HarvestedTree is the per-stem detail logged with a harvest.
type HarvestedTree struct {
	ID       int
	Species  string
	DBH      float64
	Height   float64
	VolumeBF float64
	Biomass  float64 // above+below ground [lb]
}

// HarvestEvent records one executed treatment. Append-only.
type HarvestEvent struct {
	Year     int
	Action   HarvestAction
	Label    string
	Removed  int
	VolumeBF float64
	Biomass  float64
	Trees    []HarvestedTree
}

// execute applies one scheduled treatment. The removal target is
// round(aliveCount × removePct) clamped to the alive count; the selection
// rule depends on the action. Returns nil when nothing is removed.
func (pr *projector) execute(t Treatment, y int) *HarvestEvent {
	alive := pr.alive() // planting order
	if len(alive) == 0 {
		return nil
	}

	toRemove := int(math.Round(float64(len(alive)) * t.RemovePct))
	if toRemove < 0 {
		toRemove = 0
	}
	if toRemove > len(alive) {
		toRemove = len(alive)
	}

	elig := alive
	if t.MinMerch > 0 && t.Action.Commercial() && t.Action != ActionThinMechanical {
		elig = make([]*state, 0, len(alive))
		for _, s := range alive {
			if s.dbh >= t.MinMerch {
				elig = append(elig, s)
			}
		}
	}

	var take []*state
	switch t.Action {
	case ActionPct, ActionThinBelow, ActionSanitation:
		// low thinning: smallest stems out
		take = head(byDBH(elig, y, true), toRemove)
	case ActionThinAbove, ActionShelterwoodSeed:
		// crown thinning: spare the dominant 20%, cut the next tier
		d := byDBH(elig, y, false)
		take = head(d[len(d)/5:], toRemove)
	case ActionSelection:
		take = head(byDBH(elig, y, false), toRemove)
	case ActionClearcut, ActionShelterwoodRemoval:
		take = elig
	case ActionThinMechanical:
		// every n-th stem in planting order; spacing-driven, so the
		// merchantability filter does not apply
		if t.RemovePct <= 0 {
			return nil
		}
		n := int(math.Round(1. / t.RemovePct))
		if n < 1 {
			n = 1
		}
		for i := n - 1; i < len(alive) && len(take) < toRemove; i += n {
			take = append(take, alive[i])
		}
	default:
		panic(fmt.Sprintf("projector: unhandled harvest action %d", t.Action))
	}

	if len(take) == 0 {
		return nil
	}

	ev := HarvestEvent{Year: y, Action: t.Action, Label: t.Action.String(), Removed: len(take)}
	for _, s := range take {
		rf := BiomassFactor(pr.region, s.pf.Hardwood)
		ht := s.pf.Height(s.dbh)
		vol := s.pf.VolumeBF(s.dbh, ht)
		bm := s.pf.AGBiomass(s.dbh, rf) + s.pf.BGBiomass(s.dbh, rf)
		s.status = StatusHarvested
		s.endYear = y
		ev.VolumeBF += vol
		ev.Biomass += bm
		ev.Trees = append(ev.Trees, HarvestedTree{ID: s.ID, Species: s.Species,
			DBH: s.dbh, Height: ht, VolumeBF: vol, Biomass: bm})
	}
	return &ev
}

// byDBH orders stems by diameter, equal diameters broken by the year-varying
// (id, year) hash so repeated thinnings of an even-aged cohort do not keep
// drawing the same stems.
func byDBH(ss []*state, y int, ascending bool) []*state {
	out := make([]*state, len(ss))
	copy(out, ss)
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.dbh != b.dbh {
			if ascending {
				return a.dbh < b.dbh
			}
			return a.dbh > b.dbh
		}
		return tieBreak(a.ID, y) < tieBreak(b.ID, y)
	})
	return out
}

func head(ss []*state, n int) []*state {
	if n > len(ss) {
		n = len(ss)
	}
	return ss[:n]
}
