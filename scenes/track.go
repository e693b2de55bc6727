package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/assets"
	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/network"
	"github.com/automoto/driftline/shared/netconfig"
	"github.com/automoto/driftline/systems"
	"github.com/automoto/driftline/systems/factory"
)

// DefaultTrack is loaded when nothing else is asked for.
const DefaultTrack = "circuit"

// TrackScene runs the driving simulation: fixed-step controller and physics
// in Update, visual reconciliation and drawing in Draw. With online set it
// also joins a presence session and mirrors the other karts as ghosts.
type TrackScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *systems.SavedSettings
	online       bool
	netClient    *network.Client
	once         sync.Once
}

func NewTrackScene(sc SceneChanger, settings *systems.SavedSettings, online bool) *TrackScene {
	if settings == nil {
		settings = systems.DefaultSettings()
	}
	return &TrackScene{sceneChanger: sc, settings: settings, online: online}
}

func (ts *TrackScene) Update() {
	ts.once.Do(ts.configure)

	if ts.netClient != nil && ts.netClient.State() == network.StateError {
		log.Printf("[track] connection lost: %v", ts.netClient.LastError())
		ts.leave()
		return
	}

	if input, ok := ts.inputJustReleased(cfg.ActionMenuBack); ok && input {
		ts.leave()
		return
	}

	ts.ecs.Update()
}

func (ts *TrackScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TrackScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	track, err := assets.LoadTrack(DefaultTrack)
	if err != nil {
		log.Fatalf("[track] load %s: %v", DefaultTrack, err)
	}

	factory.CreateWorld(ts.ecs, track)
	factory.CreateTrack(ts.ecs, track)
	factory.CreateCamera(ts.ecs)
	factory.CreateRace(ts.ecs)
	factory.CreateKart(ts.ecs, track.Spawns[0])

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.UpdateRace)
	ts.ecs.AddSystem(systems.UpdateKarts)
	ts.ecs.AddSystem(systems.UpdatePhysicsWorld)

	if ts.online {
		ts.netClient = network.NewClient()
		ts.netClient.Connect(ts.settings.ServerAddress, netconfig.Version, ts.settings.PlayerName, track.Name)
		ts.ecs.AddSystem(systems.NewPresenceSystem(ts.netClient).Update)
	}

	ts.ecs.AddRenderer(cfg.Default, systems.ReconcileVisuals)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawTrack)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawKarts)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
}

func (ts *TrackScene) leave() {
	if ts.netClient != nil {
		ts.netClient.Disconnect()
		ts.netClient = nil
	}
	ts.sceneChanger.ChangeScene(NewMenuScene(ts.sceneChanger, ts.settings))
}

func (ts *TrackScene) inputJustReleased(id cfg.ActionID) (bool, bool) {
	entry, ok := components.Input.First(ts.ecs.World)
	if !ok {
		return false, false
	}
	return systems.GetAction(components.Input.Get(entry), id).JustReleased, true
}
