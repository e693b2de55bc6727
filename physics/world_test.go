package physics

import (
	"math"
	"testing"

	"github.com/automoto/driftline/shared/spatial"
)

const dt = 1.0 / 60.0

func flatWorld() *World {
	w := NewWorld(64, 64)
	w.AddGroundPlate(0, 0, 64, 64, 0)
	return w
}

func TestCastRayHitsGroundPlate(t *testing.T) {
	w := flatWorld()
	hit, ok := w.CastRay(spatial.Vec3{X: 5, Y: 0.5, Z: 5}, spatial.Vec3{Y: -1}, 1, nil)
	if !ok {
		t.Fatal("expected a ground hit")
	}
	if math.Abs(hit.Distance-0.5) > 1e-9 {
		t.Fatalf("expected distance 0.5, got %f", hit.Distance)
	}
	if hit.Body != nil {
		t.Fatal("ground hit should not carry a body")
	}
	if math.Abs(hit.Point.Y) > 1e-9 {
		t.Fatalf("expected hit at ground height, got y=%f", hit.Point.Y)
	}
}

func TestCastRayRespectsMaxDistance(t *testing.T) {
	w := flatWorld()
	if _, ok := w.CastRay(spatial.Vec3{X: 5, Y: 2, Z: 5}, spatial.Vec3{Y: -1}, 1, nil); ok {
		t.Fatal("hit beyond max distance should be ignored")
	}
}

func TestCastRayMissesOffPlate(t *testing.T) {
	w := NewWorld(64, 64)
	w.AddGroundPlate(0, 0, 10, 10, 0)
	if _, ok := w.CastRay(spatial.Vec3{X: 20, Y: 1, Z: 20}, spatial.Vec3{Y: -1}, 5, nil); ok {
		t.Fatal("ray outside the plate footprint should miss")
	}
}

func TestCastRayExcludesBody(t *testing.T) {
	w := flatWorld()
	body := w.SpawnBody(spatial.Vec3{X: 5, Y: 0.5, Z: 5}, 0.5, 1)

	hit, ok := w.CastRay(spatial.Vec3{X: 5, Y: 3, Z: 5}, spatial.Vec3{Y: -1}, 5, nil)
	if !ok || hit.Body != body {
		t.Fatalf("expected the body to be hit first, got %+v ok=%v", hit, ok)
	}
	if math.Abs(hit.Distance-2) > 1e-9 {
		t.Fatalf("expected distance 2 to the sphere top, got %f", hit.Distance)
	}

	hit, ok = w.CastRay(spatial.Vec3{X: 5, Y: 3, Z: 5}, spatial.Vec3{Y: -1}, 5, body)
	if !ok || hit.Body != nil {
		t.Fatalf("expected the excluded body to be skipped, got %+v ok=%v", hit, ok)
	}
}

func TestBodySettlesOnPlateTop(t *testing.T) {
	w := NewWorld(64, 64)
	w.AddGroundPlate(0, 0, 10, 10, 0.3)
	body := w.SpawnBody(spatial.Vec3{X: 5, Y: 2, Z: 5}, 0.5, 1)

	for range 300 {
		w.Step(dt)
	}

	if got := body.Translation().Y; math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("expected body resting at plate top + radius (0.8), got %f", got)
	}
}

func TestBodySleepsAndImpulseWakeSemantics(t *testing.T) {
	w := flatWorld()
	body := w.SpawnBody(spatial.Vec3{X: 5, Y: 0.5, Z: 5}, 0.5, 1)

	for range 120 {
		w.Step(dt)
	}
	if !body.Sleeping() {
		t.Fatal("expected a resting body to fall asleep")
	}

	body.ApplyImpulse(spatial.Vec3{X: 3}, false)
	if !body.Sleeping() || !body.LinearVelocity().IsZero() {
		t.Fatal("an impulse without wake must be dropped on a sleeping body")
	}

	body.ApplyImpulse(spatial.Vec3{X: 3}, true)
	if body.Sleeping() {
		t.Fatal("an impulse with wake must wake the body")
	}
	if got := body.LinearVelocity().X; got != 3 {
		t.Fatalf("expected velocity change semantics, got vx=%f", got)
	}
}

func TestWallStopsBody(t *testing.T) {
	w := NewWorld(20, 20)
	w.AddGroundPlate(0, 0, 10, 20, 0)
	w.AddWall(10, 0, 1, 20)
	body := w.SpawnBody(spatial.Vec3{X: 8, Y: 0.5, Z: 5}, 0.5, 1)
	body.ApplyImpulse(spatial.Vec3{X: 5}, true)

	for range 120 {
		w.Step(dt)
	}

	if got := body.Translation().X; got > 10 {
		t.Fatalf("body passed through the wall, x=%f", got)
	}
}

func TestOverlappingBodiesSeparate(t *testing.T) {
	w := flatWorld()
	a := w.SpawnBody(spatial.Vec3{X: 5, Y: 0.5, Z: 5}, 0.5, 1)
	b := w.SpawnBody(spatial.Vec3{X: 5.4, Y: 0.5, Z: 5}, 0.5, 1)

	for range 60 {
		w.Step(dt)
	}

	dist := b.Translation().Sub(a.Translation()).Length()
	if dist < 1-1e-6 {
		t.Fatalf("expected bodies pushed apart to at least radii sum, dist=%f", dist)
	}
}

func TestRemoveBodyDetaches(t *testing.T) {
	w := flatWorld()
	body := w.SpawnBody(spatial.Vec3{X: 5, Y: 0.5, Z: 5}, 0.5, 1)
	w.RemoveBody(body)

	if _, ok := w.CastRay(spatial.Vec3{X: 5, Y: 3, Z: 5}, spatial.Vec3{Y: -1}, 2, nil); ok {
		t.Fatal("removed body must not be hit by rays")
	}
}
