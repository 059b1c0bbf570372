package content

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/lixenwraith/steelrange/parameter"
	"github.com/lixenwraith/steelrange/spread"
)

var (
	ErrEmptyID     = errors.New("content: entry missing id")
	ErrDuplicateID = errors.New("content: duplicate id")
	ErrNotFound    = errors.New("content: id not found")
	ErrWeaponDef   = errors.New("content: invalid weapon definition")
	ErrAmmoDef     = errors.New("content: invalid ammo definition")
	ErrLevelDef    = errors.New("content: invalid level definition")
)

// Load reads and validates a TOML catalog. Ammo factors default to 1 when
// omitted; level air density and gravity default to the standard values.
func Load(path string) (*Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("content: read catalog: %w", err)
	}

	var raw struct {
		Weapons []Weapon `mapstructure:"weapon"`
		Ammo    []Ammo   `mapstructure:"ammo"`
		Levels  []Level  `mapstructure:"level"`
	}
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("content: decode catalog: %w", err)
	}

	cat := &Catalog{
		Weapons: make(map[string]Weapon, len(raw.Weapons)),
		Ammo:    make(map[string]Ammo, len(raw.Ammo)),
		Levels:  make(map[string]Level, len(raw.Levels)),
	}

	for _, w := range raw.Weapons {
		if err := validateWeapon(w); err != nil {
			return nil, err
		}
		if _, dup := cat.Weapons[w.ID]; dup {
			return nil, fmt.Errorf("%w: weapon %q", ErrDuplicateID, w.ID)
		}
		cat.Weapons[w.ID] = w
	}

	for _, a := range raw.Ammo {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: ammo", ErrEmptyID)
		}
		if a.VelocityFactor == 0 {
			a.VelocityFactor = 1
		}
		if a.GroupSizeFactor == 0 {
			a.GroupSizeFactor = 1
		}
		if a.VelocityFactor < 0 || a.GroupSizeFactor < 0 {
			return nil, fmt.Errorf("%w: %q has negative factor", ErrAmmoDef, a.ID)
		}
		if _, dup := cat.Ammo[a.ID]; dup {
			return nil, fmt.Errorf("%w: ammo %q", ErrDuplicateID, a.ID)
		}
		cat.Ammo[a.ID] = a
	}

	for _, l := range raw.Levels {
		if l.ID == "" {
			return nil, fmt.Errorf("%w: level", ErrEmptyID)
		}
		if l.DistanceM <= 0 {
			return nil, fmt.Errorf("%w: %q distance %v", ErrLevelDef, l.ID, l.DistanceM)
		}
		if l.WindGustMps < 0 {
			return nil, fmt.Errorf("%w: %q gust %v", ErrLevelDef, l.ID, l.WindGustMps)
		}
		if l.AirDensity == 0 {
			l.AirDensity = parameter.StandardAirDensity
		}
		if l.GravityMps2 == 0 {
			l.GravityMps2 = parameter.StandardGravityMps2
		}
		if l.AirDensity < 0 || l.GravityMps2 < 0 {
			return nil, fmt.Errorf("%w: %q negative environment", ErrLevelDef, l.ID)
		}
		if _, dup := cat.Levels[l.ID]; dup {
			return nil, fmt.Errorf("%w: level %q", ErrDuplicateID, l.ID)
		}
		cat.Levels[l.ID] = l
	}

	return cat, nil
}

func validateWeapon(w Weapon) error {
	if w.ID == "" {
		return fmt.Errorf("%w: weapon", ErrEmptyID)
	}
	if w.MuzzleVelocityMps <= 0 {
		return fmt.Errorf("%w: %q muzzle velocity %v", ErrWeaponDef, w.ID, w.MuzzleVelocityMps)
	}
	if w.DragFactor < 0 || w.GroupSizeMils < 0 || w.ClickSizeMils < 0 {
		return fmt.Errorf("%w: %q has negative tuning", ErrWeaponDef, w.ID)
	}
	if w.Shotgun() {
		if w.SpreadMils <= 0 {
			return fmt.Errorf("%w: shotgun %q spread %v", ErrWeaponDef, w.ID, w.SpreadMils)
		}
		if _, err := spread.ParseChoke(w.Choke); err != nil {
			return fmt.Errorf("%w: shotgun %q: %v", ErrWeaponDef, w.ID, err)
		}
	}
	return nil
}
