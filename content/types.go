package content

// Catalog definitions authored in TOML. The loader validates on read so an
// authoring mistake fails at startup, not as a NaN impact mid-session.

// Weapon is a firearm definition. Shotgun fields are zero for rifles and
// pistols; a non-zero PelletCount marks a shotgun and requires a valid
// choke name.
type Weapon struct {
	ID                string  `mapstructure:"id"`
	Name              string  `mapstructure:"name"`
	MuzzleVelocityMps float64 `mapstructure:"muzzle_velocity_mps"`
	DragFactor        float64 `mapstructure:"drag_factor"`
	GroupSizeMils     float64 `mapstructure:"group_size_mils"`
	ClickSizeMils     float64 `mapstructure:"click_size_mils"`

	PelletCount int     `mapstructure:"pellet_count"`
	SpreadMils  float64 `mapstructure:"spread_mils"`
	Choke       string  `mapstructure:"choke"`
}

// Shotgun reports whether the weapon patterns multiple pellets per pull.
func (w Weapon) Shotgun() bool {
	return w.PelletCount > 0
}

// Ammo scales the weapon it is loaded into.
type Ammo struct {
	ID              string  `mapstructure:"id"`
	Name            string  `mapstructure:"name"`
	VelocityFactor  float64 `mapstructure:"velocity_factor"`
	GroupSizeFactor float64 `mapstructure:"group_size_factor"`
}

// Level is one firing range setup.
type Level struct {
	ID              string  `mapstructure:"id"`
	Name            string  `mapstructure:"name"`
	DistanceM       float64 `mapstructure:"distance_m"`
	WindBaselineMps float64 `mapstructure:"wind_baseline_mps"`
	WindGustMps     float64 `mapstructure:"wind_gust_mps"`
	AirDensity      float64 `mapstructure:"air_density"`
	GravityMps2     float64 `mapstructure:"gravity_mps2"`
}

// Catalog is the loaded, validated content set, keyed by id.
type Catalog struct {
	Weapons map[string]Weapon
	Ammo    map[string]Ammo
	Levels  map[string]Level
}
