package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"

	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/tags"
)

var hudFace = basicfont.Face7x13

// DrawHUD renders the speed readout, the drift indicator and the pre-race
// countdown. Runs last in the draw order.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	tags.Kart.Each(e.World, func(entry *donburi.Entry) {
		vehicle := components.Vehicle.Get(entry)

		speed := vehicle.Speed
		if speed < 0 {
			speed = -speed
		}
		text.Draw(screen, fmt.Sprintf("SPEED %4.1f", speed*20), hudFace, 16, cfg.C.Height-40, cfg.White)

		switch {
		case vehicle.DriftingLeft:
			text.Draw(screen, "DRIFT <", hudFace, 16, cfg.C.Height-24, cfg.Orange)
		case vehicle.DriftingRight:
			text.Draw(screen, "DRIFT >", hudFace, 16, cfg.C.Height-24, cfg.Orange)
		}

		if !vehicle.Grounded {
			text.Draw(screen, "AIR", hudFace, 16, cfg.C.Height-56, cfg.LightBlue)
		}
	})

	drawCountdown(e, screen)

	if cfg.Debug.ShowTickHUD {
		if entry, ok := components.Camera.First(e.World); ok {
			cam := components.Camera.Get(entry)
			text.Draw(screen, fmt.Sprintf("frame %5.2fms", cam.FrameDelta*1000), hudFace, cfg.C.Width-120, 16, cfg.LightGreen)
		}
	}
}

func drawCountdown(e *ecs.ECS, screen *ebiten.Image) {
	raceEntry, ok := components.Race.First(e.World)
	if !ok {
		return
	}
	race := components.Race.Get(raceEntry)
	if race.State != components.RaceCountdown {
		return
	}

	label := "GO"
	if race.CountdownValue > 0 {
		label = fmt.Sprintf("%d", race.CountdownValue)
	}

	scale := 4.0
	if race.CountdownScale != nil {
		dt := 0.0
		if entry, ok := components.Camera.First(e.World); ok {
			dt = components.Camera.Get(entry).FrameDelta
		}
		pop, _ := race.CountdownScale.Update(float32(dt))
		scale *= float64(pop)
	}

	w := float64(len(label)) * 7 * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(cfg.C.Width)/2-w/2, float64(cfg.C.Height)/3)
	text.DrawWithOptions(screen, label, hudFace, op)
}
