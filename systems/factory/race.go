package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/archetypes"
	"github.com/automoto/driftline/components"
)

// CreateRace spawns the countdown state, starting at 3.
func CreateRace(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Race.Spawn(e)
	components.Race.SetValue(entry, components.RaceData{
		State:          components.RaceCountdown,
		CountdownValue: 3,
		CountdownTimer: 60,
	})
	return entry
}
