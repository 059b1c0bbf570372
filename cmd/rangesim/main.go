package main

import (
	"flag"
	"math"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/steelrange/ballistics"
	"github.com/lixenwraith/steelrange/content"
	"github.com/lixenwraith/steelrange/spread"
	"github.com/lixenwraith/steelrange/turret"
)

var (
	catalogFlag = flag.String("catalog", "asset/catalog.toml", "content catalog path")
	levelFlag   = flag.String("level", "kz100", "level id")
	weaponFlag  = flag.String("weapon", "sr1", "weapon id")
	ammoFlag    = flag.String("ammo", "", "ammo id, empty for the neutral load")
	shotsFlag   = flag.Int("shots", 5, "shots to simulate")
	seedFlag    = flag.Uint("seed", 0, "session seed, 0 draws one from the clock")
	targetFlag  = flag.Float64("target", 0.15, "target radius in meters for hit counting")
	verboseFlag = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	lvl := zerolog.InfoLevel
	if *verboseFlag {
		lvl = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Str("session", uuid.NewString()).Logger().Level(lvl)

	// Wall-clock randomness enters only here, never inside the core. A
	// given -seed replays the session exactly.
	salt := uint32(*seedFlag)
	if salt == 0 {
		salt = uint32(time.Now().UnixNano())
	}
	logger.Info().Uint32("salt", salt).Str("level", *levelFlag).
		Str("weapon", *weaponFlag).Str("ammo", *ammoFlag).Msg("session start")

	cat, err := content.Load(*catalogFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("load catalog")
	}
	weapon, ok := cat.Weapons[*weaponFlag]
	if !ok {
		logger.Fatal().Str("weapon", *weaponFlag).Msg("unknown weapon")
	}

	if weapon.Shotgun() {
		runPatterns(logger, cat, salt)
		return
	}
	runShots(logger, cat, salt)
}

// runShots fires the requested string of shots and closes with the turret
// correction that would recenter the group.
func runShots(logger zerolog.Logger, cat *content.Catalog, salt uint32) {
	var (
		hits       int
		sumY, sumZ float64
		fired      int
	)
	for i := 0; i < *shotsFlag; i++ {
		idx := salt + uint32(i)
		shot, env, err := cat.ShotSetup(*levelFlag, *weaponFlag, *ammoFlag, idx)
		if err != nil {
			logger.Fatal().Err(err).Msg("shot setup")
		}
		res, err := ballistics.SimulateShot(shot, env)
		if err != nil {
			logger.Fatal().Err(err).Msg("simulate")
		}
		if !res.Complete {
			logger.Warn().Int("shot", i).Msg("bullet did not reach the target")
			continue
		}
		disp, err := cat.ShotDispersion(*levelFlag, *weaponFlag, *ammoFlag, idx)
		if err != nil {
			logger.Fatal().Err(err).Msg("dispersion")
		}

		offY := res.ImpactYM + disp.DyM
		offZ := res.ImpactZM + disp.DzM
		radius := math.Hypot(offY, offZ)
		hit := radius <= *targetFlag
		if hit {
			hits++
		}
		fired++
		sumY += offY
		sumZ += offZ

		logger.Info().Int("shot", i).
			Float64("impact_y_m", offY).
			Float64("impact_z_m", offZ).
			Float64("tof_s", res.TimeOfFlightS).
			Float64("wind_mps", res.WindUsedMps).
			Bool("hit", hit).
			Msg("shot")
	}
	if fired == 0 {
		return
	}

	logger.Info().Int("hits", hits).Int("fired", fired).Msg("string complete")

	shot, _, err := cat.ShotSetup(*levelFlag, *weaponFlag, *ammoFlag, salt)
	if err != nil {
		logger.Fatal().Err(err).Msg("shot setup")
	}
	adj, err := turret.AdjustmentForOffset(sumY/float64(fired), sumZ/float64(fired), shot.DistanceM)
	if err != nil {
		logger.Fatal().Err(err).Msg("correction")
	}
	click := cat.Weapons[*weaponFlag].ClickSizeMils
	logger.Info().
		Float64("elevation_mils", turret.QuantizeToClicks(adj.ElevationMils, click)).
		Float64("windage_mils", turret.QuantizeToClicks(adj.WindageMils, click)).
		Float64("click_mils", click).
		Msg("suggested correction")

	// The dialed-in turret is what a persistence layer would store as the
	// weapon's zero for this distance.
	var dial turret.State
	dial.Apply(adj, click)
	zero := turret.ZeroProfile{State: dial, ReferenceDistanceM: shot.DistanceM}
	logger.Info().
		Float64("elevation_mils", zero.ElevationMils).
		Float64("windage_mils", zero.WindageMils).
		Float64("reference_m", zero.ReferenceDistanceM).
		Msg("zero profile")
}

// runPatterns fires pellet patterns instead of single bullets.
func runPatterns(logger zerolog.Logger, cat *content.Catalog, salt uint32) {
	for i := 0; i < *shotsFlag; i++ {
		cfg, err := cat.PatternSetup(*levelFlag, *weaponFlag, salt+uint32(i))
		if err != nil {
			logger.Fatal().Err(err).Msg("pattern setup")
		}
		pellets, err := spread.SamplePelletPattern(cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("pattern")
		}

		best := spread.BestPellet(pellets)
		ev := logger.Info().Int("shot", i).
			Int("pellets", len(pellets)).
			Int("on_target", spread.CountWithinRadius(pellets, *targetFlag))
		if best >= 0 {
			ev = ev.Float64("best_radius_m", pellets[best].Radius())
		}
		ev.Msg("pattern")

		if logger.GetLevel() <= zerolog.DebugLevel {
			for p, off := range pellets {
				logger.Debug().Int("shot", i).Int("pellet", p).
					Float64("dy_m", off.DyM).Float64("dz_m", off.DzM).Msg("pellet")
			}
		}
	}
}
