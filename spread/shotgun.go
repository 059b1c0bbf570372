package spread

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/steelrange/parameter"
	"github.com/lixenwraith/steelrange/vmath"
)

var (
	ErrPelletCount = errors.New("spread: pellet count must be positive")
	ErrDistance    = errors.New("spread: distance must be positive")
	ErrSpread      = errors.New("spread: spread must not be negative")
	ErrChoke       = errors.New("spread: unrecognized choke")
)

// Choke is the muzzle constriction. The set is closed: every value must have
// a factor in SpreadFactor and a name in String/ParseChoke before content
// can reference it, so a new choke is an explicit decision, not a default.
type Choke uint8

const (
	ChokeCylinder Choke = iota
	ChokeImprovedCylinder
	ChokeModified
	ChokeImprovedModified
	ChokeFull
	ChokeExtraFull
)

// SpreadFactor returns the pattern-width multiplier for the constriction.
// Cylinder is the open-bore reference width.
func (c Choke) SpreadFactor() (float64, error) {
	switch c {
	case ChokeCylinder:
		return 1.0, nil
	case ChokeImprovedCylinder:
		return 0.85, nil
	case ChokeModified:
		return 0.70, nil
	case ChokeImprovedModified:
		return 0.60, nil
	case ChokeFull:
		return 0.50, nil
	case ChokeExtraFull:
		return 0.45, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrChoke, c)
}

func (c Choke) String() string {
	switch c {
	case ChokeCylinder:
		return "cylinder"
	case ChokeImprovedCylinder:
		return "improved-cylinder"
	case ChokeModified:
		return "modified"
	case ChokeImprovedModified:
		return "improved-modified"
	case ChokeFull:
		return "full"
	case ChokeExtraFull:
		return "extra-full"
	}
	return "unknown"
}

// ParseChoke maps a content catalog key to a Choke.
func ParseChoke(name string) (Choke, error) {
	switch name {
	case "cylinder":
		return ChokeCylinder, nil
	case "improved-cylinder":
		return ChokeImprovedCylinder, nil
	case "modified":
		return ChokeModified, nil
	case "improved-modified":
		return ChokeImprovedModified, nil
	case "full":
		return ChokeFull, nil
	case "extra-full":
		return ChokeExtraFull, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrChoke, name)
}

// PatternConfig describes one trigger pull of a shotgun.
type PatternConfig struct {
	DistanceM   float64
	PelletCount int
	SpreadMils  float64 // open-bore pattern diameter, before choke
	Choke       Choke
	Seed        uint32
}

// Validate fails loudly on authoring errors instead of degrading to NaN.
func (cfg PatternConfig) Validate() error {
	if cfg.PelletCount <= 0 {
		return fmt.Errorf("%w: got %d", ErrPelletCount, cfg.PelletCount)
	}
	if cfg.DistanceM <= 0 {
		return fmt.Errorf("%w: got %v", ErrDistance, cfg.DistanceM)
	}
	if cfg.SpreadMils < 0 {
		return fmt.Errorf("%w: got %v", ErrSpread, cfg.SpreadMils)
	}
	_, err := cfg.Choke.SpreadFactor()
	return err
}

// SamplePelletPattern produces per-pellet offsets for one trigger pull.
// Each pellet draws from its own generator seeded by CombineSeed(seed, i),
// so pellet i is stable no matter how many pellets are requested. The count
// is capped at parameter.MaxPelletCount.
func SamplePelletPattern(cfg PatternConfig) ([]Offset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	factor, err := cfg.Choke.SpreadFactor()
	if err != nil {
		return nil, err
	}

	n := cfg.PelletCount
	if n > parameter.MaxPelletCount {
		n = parameter.MaxPelletCount
	}
	effSpread := cfg.SpreadMils * factor

	pellets := make([]Offset, n)
	for i := range pellets {
		pellets[i] = SampleDispersion(cfg.DistanceM, effSpread, vmath.CombineSeed(cfg.Seed, uint32(i)))
	}
	return pellets, nil
}

// CountWithinRadius reports how many pellets land inside a circular target
// of the given radius centered on the point of aim. Scoring treats any hit
// as a hit; it does not attribute pellets to individual plates when plates
// overlap.
func CountWithinRadius(pellets []Offset, radiusM float64) int {
	hits := 0
	for _, p := range pellets {
		if p.Radius() <= radiusM {
			hits++
		}
	}
	return hits
}

// BestPellet returns the index of the pellet closest to the point of aim,
// for bullseye scoring. Returns -1 for an empty pattern.
func BestPellet(pellets []Offset) int {
	best := -1
	bestR := 0.0
	for i, p := range pellets {
		if r := p.Radius(); best < 0 || r < bestR {
			best, bestR = i, r
		}
	}
	return best
}
