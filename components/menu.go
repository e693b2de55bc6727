package components

import "github.com/yohamta/donburi"

// MenuData tracks the highlighted main menu entry.
type MenuData struct {
	Selected int
}

var Menu = donburi.NewComponentType[MenuData]()
