package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
)

// MenuOption identifies a main menu entry.
type MenuOption int

const (
	MenuPractice MenuOption = iota
	MenuMultiplayer
	MenuFullscreen
	MenuQuit
	menuOptionCount
)

var menuLabels = [menuOptionCount]string{
	"PRACTICE",
	"MULTIPLAYER",
	"TOGGLE FULLSCREEN",
	"QUIT",
}

// NewUpdateMenu returns the menu navigation system. choose is called with
// the activated entry; the scene owns what happens next.
func NewUpdateMenu(choose func(MenuOption)) func(e *ecs.ECS) {
	return func(e *ecs.ECS) {
		entry, ok := components.Menu.First(e.World)
		if !ok {
			entry = e.World.Entry(e.World.Create(components.Menu))
		}
		menu := components.Menu.Get(entry)

		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionForward).JustPressed {
			menu.Selected--
			if menu.Selected < 0 {
				menu.Selected = int(menuOptionCount) - 1
			}
		}
		if GetAction(input, cfg.ActionBack).JustPressed {
			menu.Selected = (menu.Selected + 1) % int(menuOptionCount)
		}
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			choose(MenuOption(menu.Selected))
		}
	}
}

// DrawMenu renders the title and menu entries.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(entry)

	title := cfg.C.Title
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(4, 4)
	op.GeoM.Translate(float64(cfg.C.Width)/2-float64(len(title))*14, 90)
	text.DrawWithOptions(screen, title, hudFace, op)

	for i, label := range menuLabels {
		col := cfg.AsphaltEdge
		if i == menu.Selected {
			col = cfg.White
			label = "> " + label
		}
		text.Draw(screen, label, hudFace, cfg.C.Width/2-70, 220+i*24, col)
	}
}
