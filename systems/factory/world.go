package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/archetypes"
	"github.com/automoto/driftline/components"
	"github.com/automoto/driftline/physics"
	"github.com/automoto/driftline/shared/trackdata"
)

// CreateWorld builds the physics world for a track and registers it as the
// scene's singleton world entity. All ground plates and walls are static
// and live for the whole scene.
func CreateWorld(e *ecs.ECS, track *trackdata.Track) *donburi.Entry {
	world := physics.NewWorld(track.Width, track.Depth)
	for _, plate := range track.Grounds {
		world.AddGroundPlate(plate.X, plate.Z, plate.W, plate.D, plate.Top)
	}
	for _, wall := range track.Walls {
		world.AddWall(wall.X, wall.Z, wall.W, wall.D)
	}

	entry := archetypes.World.Spawn(e)
	components.PhysicsWorld.SetValue(entry, components.WorldData{World: world})
	return entry
}
