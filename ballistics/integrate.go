package ballistics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/steelrange/parameter"
	"github.com/lixenwraith/steelrange/vmath"
)

var (
	ErrDistance   = errors.New("ballistics: distance must be positive")
	ErrVelocity   = errors.New("ballistics: muzzle velocity must be positive")
	ErrStep       = errors.New("ballistics: integration step must be positive")
	ErrDrag       = errors.New("ballistics: drag factor must not be negative")
	ErrGust       = errors.New("ballistics: gust range must not be negative")
	ErrAirDensity = errors.New("ballistics: air density must not be negative")
	ErrGravity    = errors.New("ballistics: gravity must not be negative")
)

func validate(shot ShotParameters, env EnvironmentParameters) error {
	switch {
	case shot.DistanceM <= 0:
		return fmt.Errorf("%w: got %v", ErrDistance, shot.DistanceM)
	case shot.MuzzleVelocityMps <= 0:
		return fmt.Errorf("%w: got %v", ErrVelocity, shot.MuzzleVelocityMps)
	case shot.StepS <= 0:
		return fmt.Errorf("%w: got %v", ErrStep, shot.StepS)
	case shot.DragFactor < 0:
		return fmt.Errorf("%w: got %v", ErrDrag, shot.DragFactor)
	case env.WindGustMps < 0:
		return fmt.Errorf("%w: got %v", ErrGust, env.WindGustMps)
	case env.AirDensity < 0:
		return fmt.Errorf("%w: got %v", ErrAirDensity, env.AirDensity)
	case env.GravityMps2 < 0:
		return fmt.Errorf("%w: got %v", ErrGravity, env.GravityMps2)
	}
	return nil
}

// SimulateShot integrates one bullet to the target distance with fixed-step
// semi-implicit Euler: velocities update first, then positions, the same
// order the rest of the codebase integrates motion in.
//
// The model is a gameplay approximation, not exterior ballistics: downrange
// speed decays by drag·v², the vertical axis falls under constant gravity,
// and the lateral axis is pushed toward the sampled crosswind by the
// relative velocity scaled by the same drag term. Level tuning depends on
// this exact coupling; changing it re-tunes every star threshold.
//
// The impact is linearly interpolated back to the exact target distance
// from the step that crossed it. If the bullet stalls below
// parameter.IntegratorStallVelocityMps or the step cap is hit, the result
// carries the final integrated state with Complete=false; the call never
// loops unbounded and never returns an error for a slow bullet.
func SimulateShot(shot ShotParameters, env EnvironmentParameters) (ShotResult, error) {
	if err := validate(shot, env); err != nil {
		return ShotResult{}, err
	}

	wind := SampleWind(env.WindBaselineMps, env.WindGustMps, env.Seed)
	res := ShotResult{WindUsedMps: wind}

	var (
		dt = shot.StepS
		x  = 0.0
		y  = shot.AimOffsetYM
		z  = shot.AimOffsetZM
		vx = shot.MuzzleVelocityMps
		vy = 0.0
		vz = 0.0
		t  = 0.0
	)

	var stride int
	if shot.RecordPath {
		est := int(shot.DistanceM/(vx*dt)) + 1
		stride = est/parameter.PathMaxPoints + 1
		res.Path = append(res.Path, PathPoint{XM: x, YM: y, ZM: z, TS: t})
	}

	drag := shot.DragFactor * env.AirDensity
	for step := 1; step <= parameter.IntegratorMaxSteps; step++ {
		vx -= drag * vx * vx * dt
		vy -= env.GravityMps2 * dt
		vz += drag * (wind - vz) * dt

		if vx < parameter.IntegratorStallVelocityMps {
			break
		}

		prevX, prevY, prevZ, prevT := x, y, z, t
		x += vx * dt
		y += vy * dt
		z += vz * dt
		t += dt

		if x >= shot.DistanceM {
			f := 1.0
			if x > prevX {
				f = (shot.DistanceM - prevX) / (x - prevX)
			}
			res.ImpactYM = vmath.Lerp(prevY, y, f)
			res.ImpactZM = vmath.Lerp(prevZ, z, f)
			res.TimeOfFlightS = vmath.Lerp(prevT, t, f)
			res.Complete = true
			if shot.RecordPath {
				res.Path = append(res.Path, PathPoint{
					XM: shot.DistanceM,
					YM: res.ImpactYM,
					ZM: res.ImpactZM,
					TS: res.TimeOfFlightS,
				})
			}
			return res, nil
		}

		if shot.RecordPath && step%stride == 0 && len(res.Path) < parameter.PathMaxPoints-1 {
			res.Path = append(res.Path, PathPoint{XM: x, YM: y, ZM: z, TS: t})
		}
	}

	// Stalled or capped before reaching the target.
	res.ImpactYM = y
	res.ImpactZM = z
	res.TimeOfFlightS = t
	res.Complete = false
	return res, nil
}
