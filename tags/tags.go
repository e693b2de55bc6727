package tags

import "github.com/yohamta/donburi"

var (
	Kart  = donburi.NewTag().SetName("Kart")
	Ghost = donburi.NewTag().SetName("Ghost")
)
