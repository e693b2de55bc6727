package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/tags"
)

var (
	Kart = newArchetype(
		tags.Kart,
		components.Vehicle,
		components.Visual,
		components.Body,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Track = newArchetype(
		components.Track,
	)
	World = newArchetype(
		components.PhysicsWorld,
	)
	Race = newArchetype(
		components.Race,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
