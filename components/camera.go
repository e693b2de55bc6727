package components

import (
	"time"

	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/shared/spatial"
)

// CameraData is the rigid follow camera. Position and LookAt are recomputed
// from the kart body every frame with no smoothing. LastFrame carries the
// render clock between frames; a zero value means no frame has been drawn
// yet and the first frame delta is zero.
type CameraData struct {
	Position  spatial.Vec3
	LookAt    spatial.Vec3
	LastFrame time.Time

	// FrameDelta is the wall-clock seconds covered by the current frame,
	// measured by the visual reconciler and read by the later renderers.
	FrameDelta float64
}

var Camera = donburi.NewComponentType[CameraData]()
