package vmath

// Scalar helpers shared by the simulation packages. Everything operates on
// float64 SI values (meters, seconds) unless the name says otherwise.

// Lerp interpolates between a and b; t outside [0,1] extrapolates.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
