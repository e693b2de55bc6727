package components

import (
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/shared/spatial"
)

// GhostData is a remote kart mirrored from a presence snapshot. Ghosts are
// display-only: they carry no body, no controller state, and never affect
// the local simulation.
type GhostData struct {
	NetworkID esync.NetworkId
	Name      string

	// Interpolation state between the last two snapshots.
	PrevPos     spatial.Vec3
	TargetPos   spatial.Vec3
	PrevHeading float64
	TargetHead  float64
	T           float64
	Initialized bool

	// Rendered values, advanced by the presence system.
	Position  spatial.Vec3
	Heading   float64
	DriftLean float64
}

var Ghost = donburi.NewComponentType[GhostData]()
