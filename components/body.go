package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/physics"
)

// BodyData holds the handle to a kart's externally-owned rigid body. The
// controller never owns physics state through it, only queries and impulses.
// A nil Body means the physics side has not spawned yet; systems skip the
// entity for that step.
type BodyData struct {
	Body *physics.Body
}

var Body = donburi.NewComponentType[BodyData]()
