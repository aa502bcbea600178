package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/maseology/mmio"

	stand "github.com/lukemenard/tree-planting-visualizer-sub000"
)

func main() {

	var (
		standfp  = flag.String("stand", "", "planted stand csv (id,x,y,species)")
		rxfp     = flag.String("rx", "", "prescription csv (year,action,removePct,minMerch)")
		zone     = flag.Int("zone", 17, "UTM zone of stand coordinates")
		yr       = flag.Int("yr", 30, "projection year")
		step     = flag.Int("step", 5, "snapshot interval for the series csv")
		site     = flag.Float64("site", 1., "site-index multiplier")
		area     = flag.Float64("area", 0., "stand area [ac]; 0 estimates from the bounding box")
		rate     = flag.Float64("rate", .05, "discount rate")
		outdir   = flag.String("o", "", "output directory prefix")
		validate = flag.Bool("validate", false, "run the benchmark validation harness and exit")
		nsmpl    = flag.Int("sample", 0, "run an n-sample yield sweep and exit")
	)
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	if *validate {
		stand.RunValidation().Print()
		return
	}
	if *nsmpl > 0 {
		stand.SampleYield(*outdir+"samples.csv", "loblolly-pine", *yr, *nsmpl, runtime.GOMAXPROCS(0), 1984)
		return
	}
	if *standfp == "" {
		log.Fatalln(" no stand csv given (-stand)")
	}

	p, err := stand.LoadPlot(*standfp, *zone)
	if err != nil {
		log.Fatalln(err)
	}
	p.Area = *area
	var rx *stand.Prescription
	if *rxfp != "" {
		if rx, err = stand.LoadPrescription(*rxfp); err != nil {
			log.Fatalln(err)
		}
	}
	tt.Print(fmt.Sprintf("loaded %s: %d trees", *standfp, len(p.Trees)))

	prjs := stand.ProjectSeries(p, nil, *yr, *site, rx, *step)
	final := prjs[len(prjs)-1]

	s := final.Stand
	fmt.Printf("\n year %d: %s\n", s.Year, s.Stocking)
	fmt.Printf("  TPA: %.0f  QMD: %.1f in  BA: %.0f ft²/ac  SDI: %.0f (RD %.2f)\n", s.TPA, s.QMD, s.BasalArea, s.SDI, s.RelDens)
	fmt.Printf("  volume: %s bf/ac  biomass: %s lb/ac  carbon: %s lb/ac\n",
		mmio.Thousands(int64(s.VolumeBF)), mmio.Thousands(int64(s.Biomass)), mmio.Thousands(int64(s.Carbon)))
	fmt.Printf("  alive: %d  dead: %d  harvested: %d\n", final.Alive, final.Dead, final.Harvested)
	if len(final.SpeciesFallbacks) > 0 {
		fmt.Printf("  WARNING unrecognized species defaulted: %v\n", final.SpeciesFallbacks)
	}

	if len(final.Harvests) > 0 {
		inv := stand.AnalyzeInvestment(final.Harvests, final.Area, *yr, nil, *rate)
		fmt.Printf("\n investment @ %.1f%%:  NPV: $%.0f  LEV: $%.0f", *rate*100., inv.NPV, inv.LEV)
		if inv.IRR != nil {
			fmt.Printf("  IRR: %.2f%%", *inv.IRR*100.)
		} else {
			fmt.Print("  IRR: undefined")
		}
		fmt.Println()
		stand.WriteCashFlows(*outdir+"cashflows.csv", inv)
	}

	stand.WriteTrees(*outdir+"trees.csv", final)
	stand.WriteSeries(*outdir+"series.csv", prjs)
}
