package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/shared/spatial"
)

// VisualData is the render-rate transform state for one kart. The render
// path is its sole writer; the kart renderer only reads it. Positions come
// straight from the physics body, orientation from the controller's heading,
// never from the body's own rotation (the collider is a sphere with no
// meaningful spin).
type VisualData struct {
	Position    spatial.Vec3
	Orientation spatial.Quat

	// WheelRotationAngle is the unbounded wheel pitch accumulator in radians.
	WheelRotationAngle float64

	// SteeringInputSigned is the instantaneous steering input in {-1, 0, 1},
	// deliberately unsmoothed; it drives the front wheel yaw.
	SteeringInputSigned float64

	// DriftVisualAngle is the frame-rate-independent smoothed copy of the
	// controller's drift angle, used only for the cosmetic body tilt.
	DriftVisualAngle float64
}

var Visual = donburi.NewComponentType[VisualData]()
