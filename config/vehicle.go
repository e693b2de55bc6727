package config

// VehicleConfig contains all kart handling configuration values. The blend
// factors are per fixed tick, not per second; the simulation runs at the
// fixed 60 Hz update rate.
type VehicleConfig struct {
	// Throttle
	MaxForwardSpeed float64 // speed target with the forward control held
	MaxReverseSpeed float64 // speed target with the back control held (negative)
	ThrottleBlend   float64 // per-tick blend toward the speed target

	// Steering
	SteerPerTick      float64 // radians of heading per tick at full steering input
	DriftSteerPerTick float64 // radians of heading per tick at full drift angle

	// Drift
	DriftBlend    float64 // per-tick blend of driftSteeringAngle toward its target
	DriftMinSpeed float64 // minimum speed before a drift can engage

	// Impulses
	ImpulseScale float64 // drive impulse per unit of speed
	DampingScale float64 // horizontal velocity fraction removed per tick

	// Ground probe
	GroundProbe float64 // downward ray length for the grounded check

	// Collider
	BodyRadius float64
	BodyMass   float64

	// Visual-only
	DriftTiltScale  float64 // cosmetic yaw added per unit of drift visual angle
	DriftVisualRate float64 // per-second rate of the drift visual smoothing
	WheelSpinScale  float64 // wheel pitch per unit of speed per second
	WheelYawScale   float64 // front wheel yaw per unit of steering input
}

var Vehicle VehicleConfig

func init() {
	Vehicle = VehicleConfig{
		MaxForwardSpeed: 5.0,
		MaxReverseSpeed: -2.0,
		ThrottleBlend:   0.03,

		SteerPerTick:      0.02,
		DriftSteerPerTick: 0.01,

		DriftBlend:    0.5,
		DriftMinSpeed: 1.0,

		ImpulseScale: 5.0,
		DampingScale: 1.5,

		GroundProbe: 1.0,

		BodyRadius: 0.5,
		BodyMass:   1.0,

		DriftTiltScale:  0.4,
		DriftVisualRate: 10.0,
		WheelSpinScale:  100.0,
		WheelYawScale:   0.5,
	}
}
