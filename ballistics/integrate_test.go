package ballistics

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/steelrange/parameter"
)

func rifleShot() ShotParameters {
	return ShotParameters{
		DistanceM:         100,
		MuzzleVelocityMps: 800,
		DragFactor:        0.001,
		StepS:             parameter.DefaultStepS,
	}
}

func calmRange() EnvironmentParameters {
	return EnvironmentParameters{
		AirDensity:  parameter.StandardAirDensity,
		GravityMps2: parameter.StandardGravityMps2,
		Seed:        1234,
	}
}

func TestSimulateShotDeterministic(t *testing.T) {
	shot := rifleShot()
	env := calmRange()
	env.WindBaselineMps = 4
	env.WindGustMps = 1.5

	a, err := SimulateShot(shot, env)
	if err != nil {
		t.Fatalf("SimulateShot: %v", err)
	}
	b, _ := SimulateShot(shot, env)
	if a.ImpactYM != b.ImpactYM || a.ImpactZM != b.ImpactZM ||
		a.TimeOfFlightS != b.TimeOfFlightS || a.WindUsedMps != b.WindUsedMps {
		t.Fatalf("identical inputs diverged: %+v vs %+v", a, b)
	}
}

func TestFreeFallSanity(t *testing.T) {
	// Drag and wind off: drop must match -1/2·g·t² within integration
	// tolerance. 100m at 800m/s gives t=0.125s, drop ≈ -0.0766m.
	shot := rifleShot()
	shot.DragFactor = 0
	env := calmRange()

	res, err := SimulateShot(shot, env)
	if err != nil {
		t.Fatalf("SimulateShot: %v", err)
	}
	if !res.Complete {
		t.Fatal("free-fall shot flagged incomplete")
	}
	tf := shot.DistanceM / shot.MuzzleVelocityMps
	wantDrop := -0.5 * env.GravityMps2 * tf * tf
	if math.Abs(res.ImpactYM-wantDrop) > 5e-4 {
		t.Errorf("drop %v, want %v ± 5e-4", res.ImpactYM, wantDrop)
	}
	if math.Abs(res.TimeOfFlightS-tf) > 1e-3 {
		t.Errorf("time of flight %v, want %v ± 1e-3", res.TimeOfFlightS, tf)
	}
	if res.ImpactZM != 0 {
		t.Errorf("no wind, no drag: lateral impact %v, want 0", res.ImpactZM)
	}
}

func TestDragMonotonicity(t *testing.T) {
	env := calmRange()
	clean := rifleShot()
	clean.DragFactor = 0
	dirty := rifleShot()
	dirty.DragFactor = 0.002

	a, _ := SimulateShot(clean, env)
	b, _ := SimulateShot(dirty, env)
	if b.TimeOfFlightS <= a.TimeOfFlightS {
		t.Errorf("drag must increase time of flight: %v <= %v", b.TimeOfFlightS, a.TimeOfFlightS)
	}
	if math.Abs(b.ImpactYM) <= math.Abs(a.ImpactYM) {
		t.Errorf("drag must increase drop: |%v| <= |%v|", b.ImpactYM, a.ImpactYM)
	}
}

func TestCrosswindSign(t *testing.T) {
	shot := rifleShot()
	env := calmRange()
	env.WindBaselineMps = 5

	res, err := SimulateShot(shot, env)
	if err != nil {
		t.Fatalf("SimulateShot: %v", err)
	}
	if res.ImpactZM <= 0 {
		t.Errorf("positive wind must drift right: impactZ %v", res.ImpactZM)
	}

	env.WindBaselineMps = -5
	res, _ = SimulateShot(shot, env)
	if res.ImpactZM >= 0 {
		t.Errorf("negative wind must drift left: impactZ %v", res.ImpactZM)
	}
}

func TestGustBounds(t *testing.T) {
	for seed := uint32(0); seed < 500; seed++ {
		w := SampleWind(5, 2, seed)
		if w < 3 || w > 7 {
			t.Fatalf("seed %d: windUsed %v outside [3,7]", seed, w)
		}
	}
}

func TestZeroGustExact(t *testing.T) {
	for seed := uint32(0); seed < 100; seed++ {
		if w := SampleWind(5, 0, seed); w != 5 {
			t.Fatalf("seed %d: zero gust must return baseline exactly, got %v", seed, w)
		}
	}
}

func TestAimOffsetCarriesThrough(t *testing.T) {
	env := calmRange()
	held := rifleShot()
	held.DragFactor = 0
	held.AimOffsetYM = 0.10
	held.AimOffsetZM = -0.05

	flat := rifleShot()
	flat.DragFactor = 0

	a, _ := SimulateShot(held, env)
	b, _ := SimulateShot(flat, env)
	if math.Abs((a.ImpactYM-b.ImpactYM)-0.10) > 1e-9 {
		t.Errorf("vertical hold not carried through: %v vs %v", a.ImpactYM, b.ImpactYM)
	}
	if math.Abs((a.ImpactZM-b.ImpactZM)+0.05) > 1e-9 {
		t.Errorf("lateral hold not carried through: %v vs %v", a.ImpactZM, b.ImpactZM)
	}
}

func TestStalledShotFlaggedIncomplete(t *testing.T) {
	shot := rifleShot()
	shot.MuzzleVelocityMps = 0.0005 // below the stall floor after step one
	env := calmRange()

	res, err := SimulateShot(shot, env)
	if err != nil {
		t.Fatalf("a slow bullet is not a configuration error: %v", err)
	}
	if res.Complete {
		t.Error("stalled shot must be flagged incomplete")
	}
}

func TestPathRecording(t *testing.T) {
	shot := rifleShot()
	env := calmRange()
	env.WindBaselineMps = 3

	plain, _ := SimulateShot(shot, env)
	if plain.Path != nil {
		t.Fatal("path returned without RecordPath")
	}

	shot.RecordPath = true
	traced, _ := SimulateShot(shot, env)
	if len(traced.Path) == 0 {
		t.Fatal("RecordPath produced no points")
	}
	if len(traced.Path) > parameter.PathMaxPoints {
		t.Fatalf("path has %d points, cap is %d", len(traced.Path), parameter.PathMaxPoints)
	}

	// Recording must never change the physics.
	if traced.ImpactYM != plain.ImpactYM || traced.ImpactZM != plain.ImpactZM ||
		traced.TimeOfFlightS != plain.TimeOfFlightS {
		t.Errorf("path recording changed outputs: %+v vs %+v", traced, plain)
	}

	last := traced.Path[len(traced.Path)-1]
	if last.XM != shot.DistanceM || last.YM != traced.ImpactYM || last.ZM != traced.ImpactZM {
		t.Errorf("final path point %+v does not match impact", last)
	}
	for i := 1; i < len(traced.Path); i++ {
		if traced.Path[i].XM < traced.Path[i-1].XM {
			t.Fatalf("path not monotonic downrange at point %d", i)
		}
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*ShotParameters, *EnvironmentParameters)
		want error
	}{
		{"zero distance", func(s *ShotParameters, _ *EnvironmentParameters) { s.DistanceM = 0 }, ErrDistance},
		{"zero velocity", func(s *ShotParameters, _ *EnvironmentParameters) { s.MuzzleVelocityMps = 0 }, ErrVelocity},
		{"zero step", func(s *ShotParameters, _ *EnvironmentParameters) { s.StepS = 0 }, ErrStep},
		{"negative drag", func(s *ShotParameters, _ *EnvironmentParameters) { s.DragFactor = -1 }, ErrDrag},
		{"negative gust", func(_ *ShotParameters, e *EnvironmentParameters) { e.WindGustMps = -1 }, ErrGust},
		{"negative density", func(_ *ShotParameters, e *EnvironmentParameters) { e.AirDensity = -1 }, ErrAirDensity},
		{"negative gravity", func(_ *ShotParameters, e *EnvironmentParameters) { e.GravityMps2 = -1 }, ErrGravity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shot := rifleShot()
			env := calmRange()
			tc.mod(&shot, &env)
			if _, err := SimulateShot(shot, env); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
