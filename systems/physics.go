package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/components"
)

// FixedTimestep is the simulation step in seconds. Ebiten drives Update at
// a fixed 60 ticks per second, so every controller tick advances the physics
// world by exactly this much.
const FixedTimestep = 1.0 / 60.0

// UpdatePhysicsWorld integrates the physics world by one fixed step. Runs
// after UpdateKarts so the tick's impulses are already committed.
func UpdatePhysicsWorld(e *ecs.ECS) {
	entry, ok := components.PhysicsWorld.First(e.World)
	if !ok {
		return
	}
	world := components.PhysicsWorld.Get(entry).World
	if world == nil {
		return
	}
	world.Step(FixedTimestep)
}
