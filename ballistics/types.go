package ballistics

// Coordinate convention, shared with spread and turret: the bullet flies
// down +X, +Y is up, +Z is right. Positive wind drifts the bullet right,
// positive windage turret shifts impact right, positive elevation turret
// shifts impact up.

// ShotParameters describes one trigger pull. Constructed fresh per shot and
// never retained by the core.
type ShotParameters struct {
	DistanceM         float64
	MuzzleVelocityMps float64
	DragFactor        float64
	AimOffsetYM       float64 // hold at the target plane, +up
	AimOffsetZM       float64 // hold at the target plane, +right
	StepS             float64 // integration step
	RecordPath        bool
}

// EnvironmentParameters describes the range conditions and the shot's seed.
type EnvironmentParameters struct {
	WindBaselineMps float64 // signed, + drifts right
	WindGustMps     float64 // half-width of the gust band, >= 0
	AirDensity      float64 // kg/m³
	GravityMps2     float64
	Seed            uint32
}

// PathPoint is one sampled trajectory position. Presentation only; the
// recorded path never feeds back into the physics.
type PathPoint struct {
	XM float64
	YM float64
	ZM float64
	TS float64
}

// ShotResult is the impact state at the target distance. Complete is false
// when the integrator hit its iteration cap or the bullet stalled before
// reaching the target; the fields then hold the state at the final step.
type ShotResult struct {
	ImpactYM      float64
	ImpactZM      float64
	TimeOfFlightS float64
	WindUsedMps   float64
	Complete      bool
	Path          []PathPoint // nil unless RecordPath was set
}
