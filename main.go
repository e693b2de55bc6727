package main

import (
	"flag"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/driftline/config"
	"github.com/automoto/driftline/scenes"
	"github.com/automoto/driftline/shared/protocol"
	"github.com/automoto/driftline/systems"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(settings *systems.SavedSettings) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewTrackScene(g, settings, false)
	} else {
		g.scene = scenes.NewMenuScene(g, settings)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "skip the menu and go straight to the track")
	flag.BoolVar(&config.Debug.DrawBodies, "draw-bodies", false, "overlay physics body footprints")
	flag.BoolVar(&config.Debug.ShowTickHUD, "tick-hud", false, "show frame timing in the HUD")
	flag.Parse()

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil || settings == nil {
		settings = systems.DefaultSettings()
	}
	systems.ApplySavedSettings(settings)

	if err := ebiten.RunGame(NewGame(settings)); err != nil {
		log.Fatal(err)
	}
}
