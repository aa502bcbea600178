package stand

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/maseology/mmio"
)

// LoadPlot reads a planted stand from an id,x,y,species csv. Coordinates are
// UTM [m] in the given zone.
func LoadPlot(fp string, zone int) (Plot, error) {
	f, err := os.Open(fp)
	if err != nil {
		return Plot{}, fmt.Errorf("LoadPlot: %v", err)
	}
	defer f.Close()

	p := Plot{Zone: zone}
	for rec := range mmio.LoadCSV(io.Reader(f), 1) {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return Plot{}, fmt.Errorf("LoadPlot: %v", err)
		}
		x, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return Plot{}, fmt.Errorf("LoadPlot: %v", err)
		}
		y, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return Plot{}, fmt.Errorf("LoadPlot: %v", err)
		}
		p.Trees = append(p.Trees, Tree{ID: id, X: x, Y: y, Species: rec[3]})
	}
	return p, nil
}

// WriteTrees writes the per-tree projection results to csv.
func WriteTrees(fp string, prj *Projection) {
	n := len(prj.Trees)
	ids, sps, sts, dbhs, hts, crs, vols, ags, crb := make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n)
	for i, t := range prj.Trees {
		ids[i], sps[i], sts[i] = t.ID, t.Species, t.Status.String()
		dbhs[i], hts[i], crs[i] = t.DBH, t.Height, t.CrownRatio
		vols[i], ags[i], crb[i] = t.VolumeBF, t.AGBiomass, t.Carbon
	}
	mmio.WriteCSV(fp, "id,species,status,dbh,height,crownratio,volbf,agbiomass,carbon", ids, sps, sts, dbhs, hts, crs, vols, ags, crb)
}

// WriteSeries writes the stand trajectory to csv, one row per snapshot.
func WriteSeries(fp string, prjs []*Projection) {
	n := len(prjs)
	yrs, tpas, qmds, bas, rds, vols, bms, cs := make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n), make([]interface{}, n)
	for i, p := range prjs {
		s := p.Stand
		yrs[i], tpas[i], qmds[i], bas[i] = s.Year, s.TPA, s.QMD, s.BasalArea
		rds[i], vols[i], bms[i], cs[i] = s.RelDens, s.VolumeBF, s.Biomass, s.Carbon
	}
	mmio.WriteCSV(fp, "year,tpa,qmd,ba,reldens,volbf,biomass,carbon", yrs, tpas, qmds, bas, rds, vols, bms, cs)
}

// WriteCashFlows writes an investment timeline to csv.
func WriteCashFlows(fp string, inv *Investment) {
	n := len(inv.CashFlows)
	yrs, amts, lbls := make([]interface{}, n), make([]interface{}, n), make([]interface{}, n)
	for i, cf := range inv.CashFlows {
		yrs[i], amts[i], lbls[i] = cf.Year, cf.Amount, cf.Label
	}
	mmio.WriteCSV(fp, "year,amount,label", yrs, amts, lbls)
}
