package stand

import "github.com/im7mortal/UTM"

// Region is the biomass-calibration region inferred from stand coordinates.
// The Jenkins equations are national; published regional calibrations run a
// few percent lower, so a <1 multiplier keyed by region and softwood/hardwood
// class is applied to above-ground biomass.
type Region int

const (
	RegionDefault Region = iota
	RegionSoutheast
	RegionNortheast
	RegionPacificNW
)

func (r Region) String() string {
	switch r {
	case RegionSoutheast:
		return "southeast"
	case RegionNortheast:
		return "northeast"
	case RegionPacificNW:
		return "pacific-northwest"
	}
	return "default"
}

// DefaultBiomassFactor applies when no region can be inferred; projections
// report the fallback so degraded-accuracy paths stay visible.
const DefaultBiomassFactor = 0.95

var biomassFactors = map[Region][2]float64{ // [softwood, hardwood]
	RegionSoutheast: {0.94, 0.90},
	RegionNortheast: {0.92, 0.93},
	RegionPacificNW: {0.97, 0.95},
}

// BiomassFactor for a species group within a region.
func BiomassFactor(r Region, hardwood bool) float64 {
	f, ok := biomassFactors[r]
	if !ok {
		return DefaultBiomassFactor
	}
	if hardwood {
		return f[1]
	}
	return f[0]
}

const defaultUTMZone = 17

// InferRegion places UTM coordinates [m] into a biomass region. Unresolvable
// coordinates fall back to RegionDefault.
func InferRegion(x, y float64, zone int) Region {
	if zone <= 0 {
		zone = defaultUTMZone
	}
	lat, lon, err := UTM.ToLatLon(x, y, zone, "", true)
	if err != nil {
		return RegionDefault
	}
	switch {
	case lon <= -115:
		return RegionPacificNW
	case lon > -100 && lat < 37:
		return RegionSoutheast
	case lon > -100:
		return RegionNortheast
	}
	return RegionDefault
}
