package stand

// Published growth-and-yield benchmark tables used by the validation harness:
// even-aged, single-species plantation stands tracked by decade. Coordinates
// anchor each stand in its region of origin so the regional biomass
// correction engages the way it would for a real planting.

// BenchmarkDecade is one published row: per-acre density, volume and
// above-ground biomass at a decade boundary.
type BenchmarkDecade struct {
	Year     int
	TPA      float64
	QMD      float64 // [in]
	BA       float64 // [ft²/ac]
	VolumeBF float64 // [bf/ac]
	Biomass  float64 // above-ground [lb/ac]
}

// Benchmark describes one published yield table and the synthetic stand that
// reproduces its establishment conditions.
type Benchmark struct {
	Name    string
	Species string
	TPA     int // planted stems on one acre
	Site    float64
	Zone    int // UTM zone of the source region
	X0, Y0  float64
	Decades []BenchmarkDecade
}

// Benchmarks returns the bundled yield tables.
func Benchmarks() []Benchmark {
	return []Benchmark{
		{
			Name: "loblolly plantation, SE coastal plain", Species: "loblolly-pine",
			TPA: 300, Site: 0.925, Zone: 17, X0: 500000, Y0: 3630000,
			Decades: []BenchmarkDecade{
				{10, 290, 6.1, 60, 0, 38500},
				{20, 265, 9.6, 128, 5100, 105000},
				{30, 250, 11.0, 167, 10800, 133000},
				{40, 210, 12.5, 182, 15500, 160000},
			},
		},
		{
			Name: "Douglas-fir plantation, PNW westside", Species: "douglas-fir",
			TPA: 250, Site: 1.0, Zone: 10, X0: 500000, Y0: 4875000,
			Decades: []BenchmarkDecade{
				{10, 245, 6.1, 50, 0, 47000},
				{20, 230, 11.2, 156, 10500, 190000},
				{30, 215, 14.0, 230, 24000, 310000},
				{40, 195, 16.0, 270, 32000, 380000},
			},
		},
		{
			Name: "red pine plantation, lake states", Species: "red-pine",
			TPA: 400, Site: 0.9, Zone: 18, X0: 500000, Y0: 4875000,
			Decades: []BenchmarkDecade{
				{10, 390, 4.2, 38, 0, 20500},
				{20, 365, 6.8, 92, 0, 60000},
				{30, 350, 8.1, 123, 600, 87000},
				{40, 310, 9.0, 140, 1900, 104000},
			},
		},
		{
			Name: "white oak even-aged, central hardwoods", Species: "white-oak",
			TPA: 200, Site: 0.95, Zone: 16, X0: 500000, Y0: 3880000,
			Decades: []BenchmarkDecade{
				{10, 190, 3.5, 13, 0, 11500},
				{20, 175, 6.4, 40, 0, 42000},
				{30, 170, 8.5, 65, 500, 78000},
				{40, 155, 10.0, 87, 2000, 112000},
			},
		},
	}
}

// Plot lays the benchmark's stems on a uniform one-acre grid at the
// benchmark's regional coordinates.
func (b Benchmark) Plot() Plot {
	side := 63.61 // [m] one acre square
	rows := 1
	for rows*rows < b.TPA {
		rows++
	}
	sp := side / float64(rows)
	trees := make([]Tree, b.TPA)
	for i := range trees {
		trees[i] = Tree{
			ID:      i + 1,
			Species: b.Species,
			X:       b.X0 + float64(i%rows)*sp,
			Y:       b.Y0 + float64(i/rows)*sp,
		}
	}
	return Plot{Trees: trees, Zone: b.Zone, Area: 1}
}
