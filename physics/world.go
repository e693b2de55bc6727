package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/automoto/driftline/shared/spatial"
)

// Collider tags used in the XZ collision space.
const (
	TagGround = "ground"
	TagSolid  = "solid"
	TagBody   = "body"
)

const (
	defaultGravity = -9.81

	// A body below this speed for sleepAfterSteps consecutive steps is put
	// to sleep until an impulse with wake arrives.
	sleepVelocityThreshold = 0.05
	sleepAfterSteps        = 60

	bodyRestitution = 0.5
	wallRestitution = 0.3

	spaceCellSize = 4
)

// RayHit describes the nearest intersection found by CastRay.
type RayHit struct {
	Body     *Body // nil for ground plate hits
	Distance float64
	Point    spatial.Vec3
}

type groundPlate struct {
	minX, minZ float64
	maxX, maxZ float64
	top        float64
}

// World owns the rigid bodies and static track colliders. The vertical axis
// is integrated analytically against ground plates; horizontal collision
// uses a resolv space laid out on the XZ plane, with resolv X mapping to
// world X and resolv Y mapping to world Z.
type World struct {
	space   *resolv.Space
	bodies  []*Body
	grounds []groundPlate
	gravity float64
}

// NewWorld creates a world spanning width by depth simulation units on the
// XZ plane.
func NewWorld(width, depth float64) *World {
	return &World{
		space:   resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(depth)), spaceCellSize, spaceCellSize),
		gravity: defaultGravity,
	}
}

// SpawnBody adds a dynamic body with a spherical collider of the given
// radius. Mass is recorded for the engine's own use; impulse application is
// velocity-change based.
func (w *World) SpawnBody(pos spatial.Vec3, radius, mass float64) *Body {
	b := &Body{
		world:    w,
		position: pos,
		radius:   radius,
		mass:     mass,
	}
	b.footprint = resolv.NewObject(pos.X-radius, pos.Z-radius, radius*2, radius*2, TagBody)
	b.footprint.SetShape(resolv.NewRectangle(0, 0, radius*2, radius*2))
	b.footprint.Data = b
	w.space.Add(b.footprint)
	w.bodies = append(w.bodies, b)
	return b
}

// RemoveBody detaches the body from the world.
func (w *World) RemoveBody(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	if b.footprint != nil {
		w.space.Remove(b.footprint)
		b.footprint = nil
	}
	b.world = nil
}

// AddGroundPlate adds a drivable surface covering [x, x+width) by
// [z, z+depth) on the XZ plane with its top face at the given height.
func (w *World) AddGroundPlate(x, z, width, depth, top float64) {
	obj := resolv.NewObject(x, z, width, depth, TagGround)
	obj.SetShape(resolv.NewRectangle(0, 0, width, depth))
	w.space.Add(obj)
	w.grounds = append(w.grounds, groundPlate{
		minX: x, minZ: z,
		maxX: x + width, maxZ: z + depth,
		top: top,
	})
}

// AddWall adds a solid obstacle covering [x, x+width) by [z, z+depth),
// treated as infinitely tall.
func (w *World) AddWall(x, z, width, depth float64) {
	obj := resolv.NewObject(x, z, width, depth, TagSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, depth))
	w.space.Add(obj)
}

// CastRay finds the nearest intersection of the ray with ground plates and
// body spheres within maxDist, skipping exclude. The second return is false
// when nothing is hit.
func (w *World) CastRay(origin, dir spatial.Vec3, maxDist float64, exclude *Body) (RayHit, bool) {
	d := dir.Normalized()
	if d.IsZero() {
		return RayHit{}, false
	}

	best := RayHit{Distance: math.Inf(1)}

	if d.Y != 0 {
		for _, g := range w.grounds {
			t := (g.top - origin.Y) / d.Y
			if t < 0 || t > maxDist {
				continue
			}
			p := origin.Add(d.Scale(t))
			if p.X < g.minX || p.X >= g.maxX || p.Z < g.minZ || p.Z >= g.maxZ {
				continue
			}
			if t < best.Distance {
				best = RayHit{Distance: t, Point: p}
			}
		}
	}

	for _, b := range w.bodies {
		if b == exclude {
			continue
		}
		if t, ok := raySphere(origin, d, b.position, b.radius); ok && t <= maxDist && t < best.Distance {
			best = RayHit{Body: b, Distance: t, Point: origin.Add(d.Scale(t))}
		}
	}

	if math.IsInf(best.Distance, 1) {
		return RayHit{}, false
	}
	return best, true
}

// Step advances the simulation by dt seconds. All impulses applied since the
// previous Step are already folded into body velocities, so the controller's
// drive and damping impulses always precede this integration.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		if b.sleeping {
			continue
		}

		b.velocity.Y += w.gravity * dt

		// Horizontal movement resolves axis by axis against walls.
		b.position.X += w.resolveAxis(b, b.velocity.X*dt, 0)
		b.position.Z += w.resolveAxis(b, 0, b.velocity.Z*dt)
		b.position.Y += b.velocity.Y * dt
		b.syncFootprint()

		w.settleOnGround(b)
		w.resolveBodyContacts(b)

		if b.velocity.LengthSq() < sleepVelocityThreshold*sleepVelocityThreshold {
			b.sleepFrames++
			if b.sleepFrames >= sleepAfterSteps {
				b.sleeping = true
				b.velocity = spatial.Vec3{}
			}
		} else {
			b.sleepFrames = 0
		}
	}
}

// resolveAxis checks a single-axis horizontal move against solid colliders
// and returns the world-space delta for that axis. Exactly one of dx, dz is
// nonzero; resolv Y carries world Z.
func (w *World) resolveAxis(b *Body, dx, dz float64) float64 {
	move := dx + dz
	if move == 0 || b.footprint == nil {
		return 0
	}
	if check := b.footprint.Check(dx, dz, TagSolid); check != nil {
		if solids := check.ObjectsByTags(TagSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			if dx != 0 {
				b.velocity.X = -b.velocity.X * wallRestitution
				return contact.X()
			}
			b.velocity.Z = -b.velocity.Z * wallRestitution
			return contact.Y()
		}
	}
	return move
}

// settleOnGround clamps a falling body onto the highest ground plate it has
// passed into.
func (w *World) settleOnGround(b *Body) {
	if b.footprint == nil {
		return
	}
	check := b.footprint.Check(0, 0, TagGround)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(TagGround) {
		top := w.plateTop(obj)
		if b.position.Y-b.radius < top {
			b.position.Y = top + b.radius
			if b.velocity.Y < 0 {
				b.velocity.Y = 0
			}
		}
	}
}

func (w *World) plateTop(obj *resolv.Object) float64 {
	for _, g := range w.grounds {
		if g.minX == obj.X && g.minZ == obj.Y {
			return g.top
		}
	}
	return 0
}

// resolveBodyContacts pushes overlapping spheres apart and exchanges impulse
// along the contact normal.
func (w *World) resolveBodyContacts(b *Body) {
	if b.footprint == nil {
		return
	}
	check := b.footprint.Check(0, 0, TagBody)
	if check == nil {
		return
	}
	for _, obj := range check.ObjectsByTags(TagBody) {
		other, ok := obj.Data.(*Body)
		if !ok || other == b {
			continue
		}

		delta := other.position.Sub(b.position)
		dist := delta.Length()
		minDist := b.radius + other.radius
		if dist <= 0 || dist >= minDist {
			continue
		}

		n := delta.Scale(1 / dist)
		rel := other.velocity.Sub(b.velocity).Dot(n)
		if rel < 0 {
			impulse := -(1 + bodyRestitution) * rel * 0.5
			b.velocity = b.velocity.Sub(n.Scale(impulse))
			other.ApplyImpulse(n.Scale(impulse), true)
		}

		overlap := minDist - dist
		b.position = b.position.Sub(n.Scale(overlap * 0.5))
		other.position = other.position.Add(n.Scale(overlap * 0.5))
		b.syncFootprint()
		other.syncFootprint()
	}
}

func raySphere(origin, dir, center spatial.Vec3, radius float64) (float64, bool) {
	oc := origin.Sub(center)
	half := oc.Dot(dir)
	c := oc.LengthSq() - radius*radius
	disc := half*half - c
	if disc < 0 {
		return 0, false
	}
	t := -half - math.Sqrt(disc)
	if t < 0 {
		return 0, false
	}
	return t, true
}
