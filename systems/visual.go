package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/tags"
)

// ReconcileVisuals is the first renderer in the draw order. It measures the
// frame delta, copies authoritative physics positions into the visual
// transforms, advances the cosmetic smoothing accumulators and snaps the
// follow camera. Everything here is display state; the simulation never
// reads any of it back.
func ReconcileVisuals(e *ecs.ECS, _ *ebiten.Image) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)

	now := time.Now()
	dt := 0.0
	if !cam.LastFrame.IsZero() {
		dt = now.Sub(cam.LastFrame).Seconds()
	}
	cam.LastFrame = now
	cam.FrameDelta = dt

	steerSign := 0.0
	if entry, ok := components.Input.First(e.World); ok {
		in := components.Input.Get(entry).Controls()
		if in.Left {
			steerSign += 1
		}
		if in.Right {
			steerSign -= 1
		}
	}

	tune := cfg.Vehicle
	tags.Kart.Each(e.World, func(entry *donburi.Entry) {
		vehicle := components.Vehicle.Get(entry)
		visual := components.Visual.Get(entry)
		body := components.Body.Get(entry).Body
		if body == nil {
			return
		}

		// Position from physics, orientation from the controller. The body
		// is a sphere; its own rotation means nothing for display.
		visual.Position = body.Translation()
		visual.Orientation = vehicle.Orientation

		visual.DriftVisualAngle += (vehicle.DriftSteeringAngle - visual.DriftVisualAngle) * (dt * tune.DriftVisualRate)
		visual.WheelRotationAngle -= vehicle.Speed / 10 * dt * tune.WheelSpinScale
		visual.SteeringInputSigned = steerSign

		// Rigid follow camera: recomputed from the body every frame, no lag.
		cam.Position = visual.Position.Add(cfg.Camera.Offset)
		cam.LookAt = visual.Position.Add(cfg.Camera.LookAtOffset)
	})
}
