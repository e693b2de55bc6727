package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/systems"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	settings     *systems.SavedSettings
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, settings *systems.SavedSettings) *MenuScene {
	if settings == nil {
		settings = systems.DefaultSettings()
	}
	return &MenuScene{sceneChanger: sc, settings: settings}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.choose))
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}

func (ms *MenuScene) choose(option systems.MenuOption) {
	switch option {
	case systems.MenuPractice:
		ms.sceneChanger.ChangeScene(NewTrackScene(ms.sceneChanger, ms.settings, false))
	case systems.MenuMultiplayer:
		ms.sceneChanger.ChangeScene(NewTrackScene(ms.sceneChanger, ms.settings, true))
	case systems.MenuFullscreen:
		ms.settings.Fullscreen = !ms.settings.Fullscreen
		ebiten.SetFullscreen(ms.settings.Fullscreen)
		_ = systems.SaveSettings(ms.settings)
	case systems.MenuQuit:
		os.Exit(0)
	}
}
