package turret

// Angular conversions. One mil subtends distance/1000 meters; MOA is the
// display unit for precision ratings. All functions are pure and round-trip
// within floating tolerance.

const (
	// MoaPerMil and MilsPerMoa are exact reciprocals of each other so the
	// round trip does not drift.
	MoaPerMil  = 3.4377467707849396
	MilsPerMoa = 1 / MoaPerMil
)

// MilToMeters returns the linear subtension of an angle at a distance.
// Negative mils map to negative meters; the sign convention carries through.
func MilToMeters(distanceM, mils float64) float64 {
	return mils * distanceM / 1000
}

// MetersToMils is the inverse of MilToMeters. Distance must be positive;
// correction entry points validate that before calling here.
func MetersToMils(distanceM, meters float64) float64 {
	return meters * 1000 / distanceM
}

func MilsToMoa(mils float64) float64 {
	return mils * MoaPerMil
}

func MoaToMils(moa float64) float64 {
	return moa * MilsPerMoa
}
