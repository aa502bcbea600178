package stand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeightDegenerate(t *testing.T) {
	p, _ := GroupProfile("pine-hard")
	assert.Equal(t, breastHeight, p.Height(0))
	assert.Equal(t, breastHeight, p.Height(-3))
	assert.Greater(t, p.Height(10), p.Height(5))
}

func TestCrownWidthFloor(t *testing.T) {
	p, _ := GroupProfile("pine-hard")
	assert.Equal(t, crownFloor, p.CrownWidth(-5))
	assert.InDelta(t, 1.7+1.6*10, p.CrownWidth(10), 1e-9)
}

func TestBiomassDegenerate(t *testing.T) {
	p, _ := GroupProfile("oak-hickory")
	assert.Zero(t, p.AGBiomass(0, 0.9))
	assert.Zero(t, p.BGBiomass(-1, 0.9))
	ag := p.AGBiomass(12, 0.9)
	assert.InDelta(t, ag*p.RootShoot, p.BGBiomass(12, 0.9), 1e-9)
}

func TestVolumeRamp(t *testing.T) {
	p, _ := GroupProfile("pine-hard")
	h := func(d float64) float64 { return p.Height(d) }

	// zero below merchantability
	assert.Zero(t, p.VolumeBF(7.99, h(7.99)))
	assert.Zero(t, p.VolumeBF(4, h(4)))

	// strictly increasing across the ramp
	prev := p.VolumeBF(8, h(8))
	for d := 8.25; d < 12; d += 0.25 {
		v := p.VolumeBF(d, h(d))
		require.Greater(t, v, prev, "volume not increasing at %.2f in", d)
		prev = v
	}

	// continuous at the full closed form
	vFull := p.VolB1 * math.Pow(12, p.VolB2) * math.Pow(h(12), p.VolB3)
	assert.InDelta(t, vFull, p.VolumeBF(12, h(12)), 1e-9)
	assert.InEpsilon(t, vFull, p.VolumeBF(11.999, h(11.999)), .01)
}

func TestVolumeZeroCoefficientSpecies(t *testing.T) {
	p, _ := GroupProfile("palm")
	assert.Zero(t, p.VolumeBF(20, p.Height(20)))
}

func TestAnnualIncrement(t *testing.T) {
	assert.Zero(t, AnnualIncrement(30, 30, .6, 1, 1))
	assert.Zero(t, AnnualIncrement(35, 30, .6, 1, 1))
	assert.Zero(t, AnnualIncrement(0, 30, .6, 1, 1))
	assert.Zero(t, AnnualIncrement(-1, 30, .6, 1, 1))
	assert.False(t, math.IsNaN(AnnualIncrement(-1, 30, .6, 1, 1)))

	// long-lived species hold near-peak growth through establishment
	want := math.Pow(.05/30+0.01, 0.3) * math.Pow(1.-.05/30, 2.5) / incPeak * .6
	assert.InDelta(t, want, AnnualIncrement(.05, 30, .6, 1, 1), 1e-9)
	assert.Greater(t, AnnualIncrement(.05, 30, .6, 1, 1), .6*.4)

	// the 0.4x floor binds only when maxDBH is small enough that the
	// declining tail of the curve is reached before 3 in
	assert.InDelta(t, .6*.4, AnnualIncrement(2.9, 5, .6, 1, 1), 1e-9)

	// modifiers scale linearly
	base := AnnualIncrement(10, 30, .6, 1, 1)
	assert.InDelta(t, base*.5*.9, AnnualIncrement(10, 30, .6, .9, .5), 1e-9)
}

func TestDensityMath(t *testing.T) {
	assert.Zero(t, BasalArea(-1))
	assert.InDelta(t, .005454154*100, BasalArea(10), 1e-9)
	assert.Zero(t, QuadraticMeanDiameter(nil))
	assert.InDelta(t, 10, QuadraticMeanDiameter([]float64{10, 10, 10}), 1e-9)
	assert.InDelta(t, 300, StandDensityIndex(300, 10), 1e-9) // Reineke reference diameter
	assert.Zero(t, StandDensityIndex(0, 10))
}

func TestGroupProfileFallback(t *testing.T) {
	_, ok := GroupProfile("pine-hard")
	assert.True(t, ok)
	p, ok := GroupProfile("no-such-group")
	assert.False(t, ok)
	def, _ := GroupProfile(DefaultGroup)
	assert.Equal(t, def, p)
}
