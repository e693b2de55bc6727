package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/physics"
)

// WorldData wraps the scene's physics world. One per scene.
type WorldData struct {
	*physics.World
}

var PhysicsWorld = donburi.NewComponentType[WorldData]()
