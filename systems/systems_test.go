package systems

import (
	"math"
	"testing"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/archetypes"
	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/network"
	"github.com/automoto/driftline/shared/spatial"
	"github.com/automoto/driftline/shared/trackdata"
	"github.com/automoto/driftline/systems/factory"
	"github.com/automoto/driftline/tags"
)

func flatTrack() *trackdata.Track {
	return &trackdata.Track{
		Name:    "flat",
		Width:   64,
		Depth:   64,
		Grounds: []trackdata.Plate{{X: 0, Z: 0, W: 64, D: 64}},
		Spawns:  []trackdata.Spawn{{X: 32, Z: 32}},
	}
}

func newTestScene(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	track := flatTrack()
	factory.CreateWorld(e, track)
	factory.CreateTrack(e, track)
	factory.CreateCamera(e)
	factory.CreateKart(e, track.Spawns[0])
	return e
}

func holdControls(e *ecs.ECS, in components.ControlInput) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	input := components.Input.Get(entry)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Current[cfg.ActionForward] = in.Forward
	input.Current[cfg.ActionBack] = in.Back
	input.Current[cfg.ActionLeft] = in.Left
	input.Current[cfg.ActionRight] = in.Right
	input.Current[cfg.ActionDrift] = in.Drift
}

func localKart(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Kart.First(e.World)
	if !ok {
		t.Fatal("no kart spawned")
	}
	return entry
}

func TestKartAcceleratesAndMoves(t *testing.T) {
	e := newTestScene(t)
	entry := localKart(t, e)
	start := components.Body.Get(entry).Body.Translation()

	holdControls(e, components.ControlInput{Forward: true})
	for range 120 {
		UpdateKarts(e)
		UpdatePhysicsWorld(e)
	}

	vehicle := components.Vehicle.Get(entry)
	if vehicle.Speed <= 1 {
		t.Fatalf("expected the kart to pick up speed, got %f", vehicle.Speed)
	}

	pos := components.Body.Get(entry).Body.Translation()
	if pos.Z >= start.Z {
		t.Fatalf("kart at zero heading should move toward -Z, %f -> %f", start.Z, pos.Z)
	}
	if math.Abs(pos.X-start.X) > 1e-6 {
		t.Fatalf("kart with no steering should hold its line, drifted %f", pos.X-start.X)
	}
}

func TestCountdownFreezesControls(t *testing.T) {
	e := newTestScene(t)
	factory.CreateRace(e)
	entry := localKart(t, e)

	holdControls(e, components.ControlInput{Forward: true})
	for range 30 {
		UpdateKarts(e)
		UpdatePhysicsWorld(e)
	}
	if speed := components.Vehicle.Get(entry).Speed; speed != 0 {
		t.Fatalf("throttle during the countdown must be ignored, speed %f", speed)
	}

	raceEntry, _ := components.Race.First(e.World)
	components.Race.Get(raceEntry).State = components.RaceRunning

	UpdateKarts(e)
	if speed := components.Vehicle.Get(entry).Speed; speed <= 0 {
		t.Fatalf("throttle must work once the race runs, speed %f", speed)
	}
}

func TestCountdownRunsDown(t *testing.T) {
	e := newTestScene(t)
	factory.CreateRace(e)
	raceEntry, _ := components.Race.First(e.World)
	race := components.Race.Get(raceEntry)

	for i := 0; race.State != components.RaceRunning; i++ {
		if i > 600 {
			t.Fatal("countdown never finished")
		}
		UpdateRace(e)
	}
	if race.CountdownValue >= 0 {
		t.Fatalf("expected the countdown to pass GO, value %d", race.CountdownValue)
	}
}

func TestKartSpawnsOnRaisedPlate(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	track := flatTrack()
	track.Grounds = append(track.Grounds, trackdata.Plate{X: 30, Z: 30, W: 4, D: 4, Top: 0.3})
	factory.CreateWorld(e, track)
	factory.CreateKart(e, trackdata.Spawn{X: 32, Z: 32})

	entry := localKart(t, e)
	got := components.Body.Get(entry).Body.Translation().Y
	want := 0.3 + cfg.Vehicle.BodyRadius
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected spawn on the raised plate at y=%f, got %f", want, got)
	}
}

func TestGhostInterpolationReachesTarget(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	ps := NewPresenceSystem(network.NewClient())

	entry := archetypes.Ghost.Spawn(e)
	components.Ghost.SetValue(entry, components.GhostData{
		NetworkID:   7,
		PrevPos:     spatial.Vec3{X: 0, Z: 0},
		TargetPos:   spatial.Vec3{X: 3, Z: -3},
		PrevHeading: 0,
		TargetHead:  1,
		Initialized: true,
	})

	// An unjoined client reports no tick rate; the default 20 Hz applies,
	// so one snapshot interval is three fixed steps.
	for range 3 {
		ps.advanceGhosts(e)
	}

	ghost := components.Ghost.Get(entry)
	if math.Abs(ghost.Position.X-3) > 1e-9 || math.Abs(ghost.Heading-1) > 1e-9 {
		t.Fatalf("ghost should reach its target after one interval, got %+v heading %f",
			ghost.Position, ghost.Heading)
	}

	// Past the target the ghost holds position until the next snapshot.
	ps.advanceGhosts(e)
	if math.Abs(ghost.Position.X-3) > 1e-9 {
		t.Fatalf("ghost must clamp at the target, got %+v", ghost.Position)
	}
}

func TestReconcileVisualsCopiesBodyAndSnapsCamera(t *testing.T) {
	e := newTestScene(t)
	entry := localKart(t, e)
	holdControls(e, components.ControlInput{Left: true})

	body := components.Body.Get(entry).Body
	body.SetTranslation(spatial.Vec3{X: 10, Y: 0.5, Z: -4})
	vehicle := components.Vehicle.Get(entry)
	vehicle.SteeringAngle = 0.7
	vehicle.Orientation = spatial.Yaw(0.7)

	ReconcileVisuals(e, nil)

	visual := components.Visual.Get(entry)
	if visual.Position != body.Translation() {
		t.Fatalf("visual position must copy the body translation, got %+v", visual.Position)
	}
	if visual.Orientation != vehicle.Orientation {
		t.Fatal("visual orientation must come from the controller, not the body")
	}
	if visual.SteeringInputSigned != 1 {
		t.Fatalf("left input should read as +1, got %f", visual.SteeringInputSigned)
	}

	camEntry, _ := components.Camera.First(e.World)
	cam := components.Camera.Get(camEntry)
	if want := visual.Position.Add(cfg.Camera.Offset); cam.Position != want {
		t.Fatalf("camera must sit at the rigid offset, got %+v want %+v", cam.Position, want)
	}
	if want := visual.Position.Add(cfg.Camera.LookAtOffset); cam.LookAt != want {
		t.Fatalf("camera look-at must use the rigid offset, got %+v want %+v", cam.LookAt, want)
	}
}

func TestReconcileVisualsAdvancesSmoothingAccumulators(t *testing.T) {
	e := newTestScene(t)
	entry := localKart(t, e)
	holdControls(e, components.ControlInput{})

	vehicle := components.Vehicle.Get(entry)
	vehicle.Speed = 4
	vehicle.DriftSteeringAngle = 1

	visual := components.Visual.Get(entry)
	visual.DriftVisualAngle = 0.2
	visual.WheelRotationAngle = 1.5

	// Backdate the render clock so the measured frame delta is nonzero;
	// the assertions then replay the update formulas with that same delta.
	camEntry, _ := components.Camera.First(e.World)
	cam := components.Camera.Get(camEntry)
	cam.LastFrame = time.Now().Add(-20 * time.Millisecond)

	ReconcileVisuals(e, nil)

	dt := cam.FrameDelta
	if dt <= 0 {
		t.Fatalf("expected a positive frame delta, got %f", dt)
	}

	wantDrift := 0.2 + (1-0.2)*(dt*cfg.Vehicle.DriftVisualRate)
	if math.Abs(visual.DriftVisualAngle-wantDrift) > 1e-12 {
		t.Fatalf("drift visual angle %f, want %f", visual.DriftVisualAngle, wantDrift)
	}
	if visual.DriftVisualAngle <= 0.2 {
		t.Fatal("drift visual angle must move toward the controller's drift angle")
	}

	wantWheel := 1.5 - 4.0/10*dt*cfg.Vehicle.WheelSpinScale
	if math.Abs(visual.WheelRotationAngle-wantWheel) > 1e-12 {
		t.Fatalf("wheel rotation angle %f, want %f", visual.WheelRotationAngle, wantWheel)
	}
	if visual.WheelRotationAngle >= 1.5 {
		t.Fatal("forward speed must lower the wheel pitch accumulator")
	}
}
