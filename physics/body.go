package physics

import (
	"github.com/solarlune/resolv"

	"github.com/automoto/driftline/shared/spatial"
)

// Body is a dynamic rigid body with a spherical collider. Bodies are created
// through World.SpawnBody and hold a footprint object in the world's XZ
// collision space for broadphase queries.
type Body struct {
	world *World

	position spatial.Vec3
	velocity spatial.Vec3
	radius   float64
	mass     float64

	sleeping    bool
	sleepFrames int

	footprint *resolv.Object
}

// Translation returns the body's current position.
func (b *Body) Translation() spatial.Vec3 {
	return b.position
}

// LinearVelocity returns the body's current velocity.
func (b *Body) LinearVelocity() spatial.Vec3 {
	return b.velocity
}

// Radius returns the collider radius.
func (b *Body) Radius() float64 {
	return b.radius
}

// Sleeping reports whether the body is currently asleep.
func (b *Body) Sleeping() bool {
	return b.sleeping
}

// ApplyImpulse changes the body's velocity instantaneously. Mass
// normalization is the engine's concern; impulses here carry velocity-change
// semantics. An impulse sent to a sleeping body is dropped unless wake is
// set.
func (b *Body) ApplyImpulse(imp spatial.Vec3, wake bool) {
	if b.sleeping {
		if !wake {
			return
		}
		b.sleeping = false
	}
	b.sleepFrames = 0
	b.velocity = b.velocity.Add(imp)
}

// SetTranslation teleports the body, keeping its velocity. Used at spawn and
// respawn only.
func (b *Body) SetTranslation(pos spatial.Vec3) {
	b.position = pos
	b.syncFootprint()
}

func (b *Body) syncFootprint() {
	if b.footprint == nil {
		return
	}
	b.footprint.X = b.position.X - b.radius
	b.footprint.Y = b.position.Z - b.radius
	b.footprint.Update()
}
