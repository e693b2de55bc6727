package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/shared/spatial"
)

// VehicleData is the fixed-step controller state for one kart. It is owned
// and mutated exclusively by the kart system; the render path only reads it.
type VehicleData struct {
	// SteeringAngle is the accumulated heading in radians. It is unbounded;
	// the orientation quaternion is rebuilt from it every step rather than
	// rotated incrementally, so no renormalization is ever needed.
	SteeringAngle float64

	// DriftSteeringAngle is the smoothed drift contribution in [-1, 1].
	DriftSteeringAngle float64

	// DriftingLeft and DriftingRight are never both true.
	DriftingLeft  bool
	DriftingRight bool

	// Speed stays within [MaxReverseSpeed, MaxForwardSpeed] because it is
	// only ever blended toward one of those bounds or zero.
	Speed float64

	// Grounded is refreshed from the downward ray every step.
	Grounded bool

	// Orientation is the heading quaternion derived from SteeringAngle,
	// recomputed fresh each step.
	Orientation spatial.Quat
}

var Vehicle = donburi.NewComponentType[VehicleData]()
