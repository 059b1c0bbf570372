package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

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
	seedFlag    = flag.Uint("seed", 1, "first shot index")
)

type viewer struct {
	screen    tcell.Screen
	cat       *content.Catalog
	shotIndex uint32
	shotgun   bool
	dial      turret.State
	click     float64
}

func main() {
	flag.Parse()

	cat, err := content.Load(*catalogFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
		os.Exit(1)
	}
	weapon, ok := cat.Weapons[*weaponFlag]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown weapon %q\n", *weaponFlag)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{
		screen:    screen,
		cat:       cat,
		shotIndex: uint32(*seedFlag),
		shotgun:   weapon.Shotgun(),
		click:     weapon.ClickSizeMils,
	}

	for {
		v.draw()
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return
			case ev.Rune() == 'n':
				v.shotIndex++
			// vi motion keys dial the turret one click at a time
			case ev.Rune() == 'k':
				v.dial.ElevationMils = turret.NextClickValue(v.dial.ElevationMils, +1, v.click)
			case ev.Rune() == 'j':
				v.dial.ElevationMils = turret.NextClickValue(v.dial.ElevationMils, -1, v.click)
			case ev.Rune() == 'l':
				v.dial.WindageMils = turret.NextClickValue(v.dial.WindageMils, +1, v.click)
			case ev.Rune() == 'h':
				v.dial.WindageMils = turret.NextClickValue(v.dial.WindageMils, -1, v.click)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	if v.shotgun {
		v.drawPattern()
	} else {
		v.drawTrajectory()
	}
	v.drawText(0, 0, tcell.StyleDefault.Foreground(tcell.ColorYellow),
		fmt.Sprintf("%s / %s  shot %d  dial e%+.1f w%+.1f   [n] next  [hjkl] turret  [q] quit",
			*levelFlag, *weaponFlag, v.shotIndex, v.dial.ElevationMils, v.dial.WindageMils))
	v.screen.Show()
}

// drawTrajectory plots the recorded path: side profile (drop) on the upper
// half, top profile (drift) on the lower half.
func (v *viewer) drawTrajectory() {
	shot, env, err := v.cat.ShotSetup(*levelFlag, *weaponFlag, *ammoFlag, v.shotIndex)
	if err != nil {
		v.drawText(0, 1, errStyle(), err.Error())
		return
	}
	shot.RecordPath = true
	// Positive elevation lifts the hold, positive windage pushes it right.
	shot.AimOffsetYM += turret.MilToMeters(shot.DistanceM, v.dial.ElevationMils)
	shot.AimOffsetZM += turret.MilToMeters(shot.DistanceM, v.dial.WindageMils)
	res, err := ballistics.SimulateShot(shot, env)
	if err != nil {
		v.drawText(0, 1, errStyle(), err.Error())
		return
	}

	w, h := v.screen.Size()
	if w < 20 || h < 10 || len(res.Path) == 0 {
		return
	}
	half := h / 2

	v.drawText(0, 1, tcell.StyleDefault,
		fmt.Sprintf("impact y=%+.3fm z=%+.3fm  tof=%.3fs  wind=%+.1fm/s  complete=%v",
			res.ImpactYM, res.ImpactZM, res.TimeOfFlightS, res.WindUsedMps, res.Complete))

	plot := func(top, bottom int, value func(ballistics.PathPoint) float64, style tcell.Style) {
		lo, hi := value(res.Path[0]), value(res.Path[0])
		for _, p := range res.Path {
			if val := value(p); val < lo {
				lo = val
			} else if val > hi {
				hi = val
			}
		}
		if hi == lo {
			hi = lo + 1e-9
		}
		rows := bottom - top
		for _, p := range res.Path {
			col := int(p.XM / shot.DistanceM * float64(w-1))
			// screen rows grow downward, values grow upward
			row := bottom - int((value(p)-lo)/(hi-lo)*float64(rows))
			v.screen.SetContent(col, row, '•', nil, style)
		}
	}

	v.drawText(0, 2, dimStyle(), "side profile")
	plot(3, half-1, func(p ballistics.PathPoint) float64 { return p.YM },
		tcell.StyleDefault.Foreground(tcell.ColorGreen))
	v.drawText(0, half, dimStyle(), "top profile")
	plot(half+1, h-2, func(p ballistics.PathPoint) float64 { return p.ZM },
		tcell.StyleDefault.Foreground(tcell.ColorAqua))
}

// drawPattern plots one trigger pull's pellets around the point of aim.
func (v *viewer) drawPattern() {
	cfg, err := v.cat.PatternSetup(*levelFlag, *weaponFlag, v.shotIndex)
	if err != nil {
		v.drawText(0, 1, errStyle(), err.Error())
		return
	}
	pellets, err := spread.SamplePelletPattern(cfg)
	if err != nil {
		v.drawText(0, 1, errStyle(), err.Error())
		return
	}

	w, h := v.screen.Size()
	if w < 20 || h < 10 {
		return
	}

	factor, _ := cfg.Choke.SpreadFactor()
	maxR := spread.MaxRadiusM(cfg.DistanceM, cfg.SpreadMils*factor)
	v.drawText(0, 1, tcell.StyleDefault,
		fmt.Sprintf("%d pellets  choke %s  disc %.2fm", len(pellets), cfg.Choke, maxR))

	cx, cy := w/2, h/2
	scaleZ := float64(w-4) / 2 / maxR
	scaleY := float64(h-4) / 2 / maxR
	v.screen.SetContent(cx, cy, '+', nil, dimStyle())

	best := spread.BestPellet(pellets)
	for i, p := range pellets {
		col := cx + int(p.DzM*scaleZ)
		row := cy - int(p.DyM*scaleY)
		ch := 'o'
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if i == best {
			ch = '*'
			style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
		}
		v.screen.SetContent(col, row, ch, nil, style)
	}
}

func (v *viewer) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func errStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorRed)
}

func dimStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.ColorGray)
}
