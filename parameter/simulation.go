package parameter

// Integrator
const (
	// IntegratorMaxSteps caps SimulateShot iterations; hitting the cap flags
	// the result incomplete instead of spinning on degenerate inputs.
	IntegratorMaxSteps = 1_000_000

	// IntegratorStallVelocityMps is the downrange speed below which a shot
	// is declared unable to reach the target distance.
	IntegratorStallVelocityMps = 0.001

	// DefaultStepS is the integration step used by content when a level does
	// not override it.
	DefaultStepS = 0.0005

	// PathMaxPoints bounds the optional recorded trajectory. Presentation
	// only; recording never changes physics outputs.
	PathMaxPoints = 256
)

// Shotgun
const (
	// MaxPelletCount bounds a pattern regardless of the requested count, to
	// keep per-trigger-pull compute and render cost flat.
	MaxPelletCount = 50
)

// Environment defaults for level authoring
const (
	StandardGravityMps2 = 9.80665
	StandardAirDensity  = 1.225
)
