package content

import (
	"fmt"

	"github.com/lixenwraith/steelrange/ballistics"
	"github.com/lixenwraith/steelrange/parameter"
	"github.com/lixenwraith/steelrange/spread"
	"github.com/lixenwraith/steelrange/vmath"
)

// Per-shot seed streams. Wind, dispersion, and pellet pattern each derive an
// independent sub-seed from the shot seed, so adding a draw to one sampler
// never shifts another's sequence.
const (
	streamWind uint32 = iota
	streamDispersion
	streamPattern
)

// ShotSeed is the deterministic base seed for shot n on a (level, weapon,
// ammo) triple. The core never reads the clock; a caller wanting daily
// variety salts the ids at its own boundary.
func ShotSeed(levelID, weaponID, ammoID string, shotIndex uint32) uint32 {
	return vmath.CombineSeed(vmath.StringHash(levelID+"/"+weaponID+"/"+ammoID), shotIndex)
}

func (c *Catalog) level(id string) (Level, error) {
	l, ok := c.Levels[id]
	if !ok {
		return Level{}, fmt.Errorf("%w: level %q", ErrNotFound, id)
	}
	return l, nil
}

func (c *Catalog) weapon(id string) (Weapon, error) {
	w, ok := c.Weapons[id]
	if !ok {
		return Weapon{}, fmt.Errorf("%w: weapon %q", ErrNotFound, id)
	}
	return w, nil
}

// ammo resolves an ammo id; the empty id is the neutral load used by drills
// that do not vary ammunition.
func (c *Catalog) ammo(id string) (Ammo, error) {
	if id == "" {
		return Ammo{VelocityFactor: 1, GroupSizeFactor: 1}, nil
	}
	a, ok := c.Ammo[id]
	if !ok {
		return Ammo{}, fmt.Errorf("%w: ammo %q", ErrNotFound, id)
	}
	return a, nil
}

// ShotSetup assembles the integrator inputs for one shot.
func (c *Catalog) ShotSetup(levelID, weaponID, ammoID string, shotIndex uint32) (ballistics.ShotParameters, ballistics.EnvironmentParameters, error) {
	lvl, err := c.level(levelID)
	if err != nil {
		return ballistics.ShotParameters{}, ballistics.EnvironmentParameters{}, err
	}
	w, err := c.weapon(weaponID)
	if err != nil {
		return ballistics.ShotParameters{}, ballistics.EnvironmentParameters{}, err
	}
	a, err := c.ammo(ammoID)
	if err != nil {
		return ballistics.ShotParameters{}, ballistics.EnvironmentParameters{}, err
	}

	seed := ShotSeed(levelID, weaponID, ammoID, shotIndex)
	shot := ballistics.ShotParameters{
		DistanceM:         lvl.DistanceM,
		MuzzleVelocityMps: w.MuzzleVelocityMps * a.VelocityFactor,
		DragFactor:        w.DragFactor,
		StepS:             parameter.DefaultStepS,
	}
	env := ballistics.EnvironmentParameters{
		WindBaselineMps: lvl.WindBaselineMps,
		WindGustMps:     lvl.WindGustMps,
		AirDensity:      lvl.AirDensity,
		GravityMps2:     lvl.GravityMps2,
		Seed:            vmath.CombineSeed(seed, streamWind),
	}
	return shot, env, nil
}

// ShotDispersion samples the precision miss for one shot, with the ammo's
// group-size factor applied.
func (c *Catalog) ShotDispersion(levelID, weaponID, ammoID string, shotIndex uint32) (spread.Offset, error) {
	lvl, err := c.level(levelID)
	if err != nil {
		return spread.Offset{}, err
	}
	w, err := c.weapon(weaponID)
	if err != nil {
		return spread.Offset{}, err
	}
	a, err := c.ammo(ammoID)
	if err != nil {
		return spread.Offset{}, err
	}

	seed := vmath.CombineSeed(ShotSeed(levelID, weaponID, ammoID, shotIndex), streamDispersion)
	return spread.SampleDispersion(lvl.DistanceM, w.GroupSizeMils*a.GroupSizeFactor, seed), nil
}

// PatternSetup assembles a shotgun pattern config for one trigger pull.
func (c *Catalog) PatternSetup(levelID, weaponID string, shotIndex uint32) (spread.PatternConfig, error) {
	lvl, err := c.level(levelID)
	if err != nil {
		return spread.PatternConfig{}, err
	}
	w, err := c.weapon(weaponID)
	if err != nil {
		return spread.PatternConfig{}, err
	}
	if !w.Shotgun() {
		return spread.PatternConfig{}, fmt.Errorf("%w: weapon %q is not a shotgun", ErrWeaponDef, weaponID)
	}
	choke, err := spread.ParseChoke(w.Choke)
	if err != nil {
		return spread.PatternConfig{}, err
	}

	return spread.PatternConfig{
		DistanceM:   lvl.DistanceM,
		PelletCount: w.PelletCount,
		SpreadMils:  w.SpreadMils,
		Choke:       choke,
		Seed:        vmath.CombineSeed(ShotSeed(levelID, weaponID, "", shotIndex), streamPattern),
	}, nil
}
