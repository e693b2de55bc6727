package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/archetypes"
)

// CreateCamera spawns the scene's follow camera. The visual reconciler
// snaps it to the kart on the first frame; the zero value is fine.
func CreateCamera(e *ecs.ECS) *donburi.Entry {
	return archetypes.Camera.Spawn(e)
}
