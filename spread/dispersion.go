package spread

import (
	"math"

	"github.com/lixenwraith/steelrange/vmath"
)

// Offset is a radial miss from the point of aim, in meters at the target
// distance. +DzM is right, +DyM is up, the same axes ballistics uses.
type Offset struct {
	DyM float64
	DzM float64
}

// Radius returns the distance from the point of aim.
func (o Offset) Radius() float64 {
	return math.Hypot(o.DyM, o.DzM)
}

// MaxRadiusM converts an angular group size to the dispersion disc radius at
// a distance. Group size is a diameter, so half the mil subtension.
func MaxRadiusM(distanceM, groupSizeMils float64) float64 {
	return groupSizeMils * distanceM / 2000
}

// SampleDispersion converts a weapon's angular group size into one shot's
// miss offset. Angle is uniform over [0, 2π); radius is sqrt(u)·maxRadius so
// samples are uniform over the disc's area. A plain uniform-radius draw
// would crowd hits at the center and under-populate the edge, which reads as
// a tighter group than the rating says. Draw order is angle then radius and
// is part of the determinism contract.
//
// A zero group size returns an exact zero offset without constructing a
// generator. Negative inputs are authoring errors; content validation
// rejects them before they reach here.
func SampleDispersion(distanceM, groupSizeMils float64, seed uint32) Offset {
	if groupSizeMils == 0 || distanceM == 0 {
		return Offset{}
	}
	r := vmath.NewFastRand(uint64(seed))
	angle := r.Float64() * 2 * math.Pi
	radius := math.Sqrt(r.Float64()) * MaxRadiusM(distanceM, groupSizeMils)
	return Offset{
		DyM: radius * math.Sin(angle),
		DzM: radius * math.Cos(angle),
	}
}
