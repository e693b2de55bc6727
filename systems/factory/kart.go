package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/archetypes"
	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/shared/spatial"
	"github.com/automoto/driftline/shared/trackdata"
)

// CreateKart spawns the local kart at a track spawn point. The body drops
// onto whatever ground lies under the spawn; a spawn over a hole still
// works, the kart just starts airborne.
func CreateKart(e *ecs.ECS, spawn trackdata.Spawn) *donburi.Entry {
	entry := archetypes.Kart.Spawn(e)

	pos := spatial.Vec3{X: spawn.X, Y: cfg.Vehicle.BodyRadius, Z: spawn.Z}
	if worldEntry, ok := components.PhysicsWorld.First(e.World); ok {
		world := components.PhysicsWorld.Get(worldEntry).World

		// Probe from above so spawns on raised plates land on top of them.
		origin := spatial.Vec3{X: spawn.X, Y: 50, Z: spawn.Z}
		if hit, ok := world.CastRay(origin, spatial.Vec3{Y: -1}, 100, nil); ok {
			pos.Y = hit.Point.Y + cfg.Vehicle.BodyRadius
		}

		body := world.SpawnBody(pos, cfg.Vehicle.BodyRadius, cfg.Vehicle.BodyMass)
		components.Body.SetValue(entry, components.BodyData{Body: body})
	}

	components.Vehicle.SetValue(entry, components.VehicleData{
		SteeringAngle: spawn.Heading,
		Orientation:   spatial.Yaw(spawn.Heading),
	})
	components.Visual.SetValue(entry, components.VisualData{
		Position:    pos,
		Orientation: spatial.Yaw(spawn.Heading),
	})
	return entry
}
