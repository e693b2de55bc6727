package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/physics"
	"github.com/automoto/driftline/shared/spatial"
	"github.com/automoto/driftline/tags"
)

// UpdateKarts advances every kart's controller by one fixed tick. It runs
// after UpdateInput and before UpdatePhysicsWorld so impulses land in the
// same step the physics world integrates.
func UpdateKarts(e *ecs.ECS) {
	var world *physics.World
	if entry, ok := components.PhysicsWorld.First(e.World); ok {
		world = components.PhysicsWorld.Get(entry).World
	}

	controls := components.ControlInput{}
	if entry, ok := components.Input.First(e.World); ok {
		controls = components.Input.Get(entry).Controls()
	}
	if entry, ok := components.Race.First(e.World); ok {
		// Controls are held off until the countdown finishes; the karts
		// still settle, damp and probe the ground while frozen.
		if components.Race.Get(entry).State == components.RaceCountdown {
			controls = components.ControlInput{}
		}
	}

	tags.Kart.Each(e.World, func(entry *donburi.Entry) {
		vehicle := components.Vehicle.Get(entry)
		body := components.Body.Get(entry).Body
		StepKart(vehicle, body, world, controls)
	})
}

// StepKart runs one fixed tick of the kart controller: ground probe, drift
// state machine, throttle smoothing, steering integration and the drive and
// damping impulses, in that order. A nil body or world is a silent no-op;
// the physics side simply has not spawned the collider yet.
func StepKart(v *components.VehicleData, body *physics.Body, world *physics.World, in components.ControlInput) {
	if v == nil || body == nil || world == nil {
		return
	}
	tune := cfg.Vehicle

	v.Grounded = senseGround(world, body)
	updateDrift(v, in, tune)

	// Throttle: first-order lag toward the held target. Forward wins if
	// both throttle controls are held.
	speedTarget := 0.0
	switch {
	case in.Forward:
		speedTarget = tune.MaxForwardSpeed
	case in.Back:
		speedTarget = tune.MaxReverseSpeed
	}
	v.Speed += (speedTarget - v.Speed) * tune.ThrottleBlend

	rawImpulse := spatial.Vec3{Z: -v.Speed}.Scale(tune.ImpulseScale)

	// Steering input, sign-flipped while the net drive impulse points
	// backwards so reverse steers like a real car.
	steerInput := 0.0
	if in.Left {
		steerInput += 1
	}
	if in.Right {
		steerInput -= 1
	}
	if -rawImpulse.Z < 0 {
		steerInput = -steerInput
	}

	v.SteeringAngle += steerInput*tune.SteerPerTick + v.DriftSteeringAngle*tune.DriftSteerPerTick

	// Rebuilt from the accumulator every step, never rotated incrementally,
	// so the quaternion stays unit length no matter how long the session.
	v.Orientation = spatial.Yaw(v.SteeringAngle)

	// Damping is computed from the velocity the body entered the step
	// with, before the drive impulse lands, so the two never fight each
	// other within a single tick.
	damping := body.LinearVelocity().Horizontal().Scale(-tune.DampingScale)

	if driveImpulse := v.Orientation.Rotate(rawImpulse); !driveImpulse.IsZero() {
		body.ApplyImpulse(driveImpulse, true)
	}

	// Flat damping stands in for tire friction. It must not wake a body
	// that has settled to a stop.
	body.ApplyImpulse(damping, false)
}

// senseGround probes straight down from the body's center, skipping the
// kart's own collider. Anything within the probe length counts as ground.
func senseGround(world *physics.World, body *physics.Body) bool {
	if world == nil {
		return false
	}
	_, hit := world.CastRay(body.Translation(), spatial.Vec3{Y: -1}, cfg.Vehicle.GroundProbe, body)
	return hit
}

// updateDrift evaluates the drift state machine and blends the drift angle
// toward its target. Releasing the drift control, leaving the ground or
// slowing below the engage speed all cancel the drift the same step.
func updateDrift(v *components.VehicleData, in components.ControlInput, tune cfg.VehicleConfig) {
	engaged := in.Drift && v.Grounded && v.Speed > tune.DriftMinSpeed
	v.DriftingLeft = engaged && in.Left && !in.Right
	v.DriftingRight = engaged && in.Right && !in.Left

	target := 0.0
	switch {
	case v.DriftingLeft:
		target = 1
	case v.DriftingRight:
		target = -1
	}
	v.DriftSteeringAngle += (target - v.DriftSteeringAngle) * tune.DriftBlend
}
