package config

import "github.com/automoto/driftline/shared/spatial"

// CameraConfig contains the rigid follow camera's fixed offsets and the
// perspective projection parameters used by the renderer.
type CameraConfig struct {
	Offset       spatial.Vec3 // camera position relative to the kart body
	LookAtOffset spatial.Vec3 // look-at target relative to the kart body
	FocalLength  float64      // screen-space projection scale
	NearPlane    float64      // points closer than this are culled
}

var Camera CameraConfig

func init() {
	Camera = CameraConfig{
		Offset:       spatial.Vec3{X: 1, Y: 1, Z: 1},
		LookAtOffset: spatial.Vec3{Y: 0.3},
		FocalLength:  420,
		NearPlane:    0.1,
	}
}
