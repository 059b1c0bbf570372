package turret

import (
	"errors"
	"fmt"
	"math"
)

var ErrDistance = errors.New("turret: distance must be positive")

// State is a turret's dial position. The persistence layer owns the value;
// it mutates only through the click functions here, which keep both axes on
// multiples of the configured click size.
//
// Positive elevation shifts impact up, positive windage shifts impact
// right, matching the ballistics axes.
type State struct {
	ElevationMils float64
	WindageMils   float64
}

// ZeroProfile is a saved turret setting plus the distance it was zeroed at.
type ZeroProfile struct {
	State
	ReferenceDistanceM float64
}

// AdjustmentForOffset converts a measured miss into the turret move that
// recenters it: a low hit (negative offsetY) needs elevation up, a left hit
// (negative offsetZ) needs windage right.
func AdjustmentForOffset(offsetYM, offsetZM, distanceM float64) (State, error) {
	if distanceM <= 0 {
		return State{}, fmt.Errorf("%w: got %v", ErrDistance, distanceM)
	}
	return State{
		ElevationMils: -MetersToMils(distanceM, offsetYM),
		WindageMils:   -MetersToMils(distanceM, offsetZM),
	}, nil
}

// QuantizeToClicks rounds a raw adjustment to the nearest representable
// click, half away from zero. Round-half-even would flip direction on
// successive near-half residuals and make repeated corrections oscillate.
// A non-positive click size leaves the value unquantized.
func QuantizeToClicks(value, clickSize float64) float64 {
	if clickSize <= 0 {
		return value
	}
	// math.Round is round-half-away-from-zero, exactly the policy wanted.
	return math.Round(value/clickSize) * clickSize
}

// NextClickValue advances a dial by exactly one click. Addition only:
// rebuilding the value as count·clickSize would compound floating error as
// the dial moves back and forth. A zero direction is a no-op.
func NextClickValue(current float64, direction int, clickSize float64) float64 {
	switch {
	case direction > 0:
		return current + clickSize
	case direction < 0:
		return current - clickSize
	}
	return current
}

// Apply dials in a quantized adjustment. The result is re-quantized so the
// stored state stays on the click lattice even after many corrections.
func (s *State) Apply(adj State, clickSize float64) {
	s.ElevationMils = QuantizeToClicks(s.ElevationMils+QuantizeToClicks(adj.ElevationMils, clickSize), clickSize)
	s.WindageMils = QuantizeToClicks(s.WindageMils+QuantizeToClicks(adj.WindageMils, clickSize), clickSize)
}
