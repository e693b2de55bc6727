package systems

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/components"
)

// Ticks each countdown number stays on screen.
const countdownTicksPerValue = 60

// UpdateRace advances the pre-race countdown. Karts stay frozen until the
// state flips to RaceRunning; UpdateKarts checks the state itself.
func UpdateRace(e *ecs.ECS) {
	entry, ok := components.Race.First(e.World)
	if !ok {
		return
	}
	race := components.Race.Get(entry)

	if race.State != components.RaceCountdown {
		return
	}

	race.CountdownTimer--
	if race.CountdownTimer > 0 {
		return
	}

	race.CountdownValue--
	if race.CountdownValue < 0 {
		race.State = components.RaceRunning
		race.CountdownScale = nil
		return
	}

	race.CountdownTimer = countdownTicksPerValue
	race.CountdownScale = gween.New(countdownPopFrom, countdownPopTo, countdownPopDuration, ease.OutQuad)
}

const (
	countdownPopFrom     = 2.2
	countdownPopTo       = 1.0
	countdownPopDuration = 0.45 // seconds, advanced with the render frame delta
)
