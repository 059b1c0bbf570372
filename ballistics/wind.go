package ballistics

import "github.com/lixenwraith/steelrange/vmath"

// SampleWind returns the wind a shot actually sees: the baseline plus one
// uniform gust draw in [-gust, +gust]. The result always stays inside that
// band.
//
// A zero gust returns the baseline exactly without constructing a
// generator. Deterministic-only drill levels rely on this zero-variance
// contract, so the skip is part of the interface, not an optimization.
func SampleWind(baselineMps, gustMps float64, seed uint32) float64 {
	if gustMps == 0 {
		return baselineMps
	}
	r := vmath.NewFastRand(uint64(seed))
	return baselineMps + r.Range(-gustMps, gustMps)
}
