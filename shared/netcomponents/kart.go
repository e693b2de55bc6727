package netcomponents

import "github.com/yohamta/donburi"

// NetKartData is the replicated transform of one kart in a presence session.
type NetKartData struct {
	X, Y, Z   float64
	Heading   float64
	DriftLean float64
	Name      string
}

var NetKart = donburi.NewComponentType[NetKartData]()

// LerpNetKart interpolates between two kart transforms. Heading lerps
// directly: it is an unbounded accumulator on both ends, not a wrapped
// angle, so no shortest-arc handling is needed.
func LerpNetKart(from, to NetKartData, t float64) *NetKartData {
	return &NetKartData{
		X:         from.X + (to.X-from.X)*t,
		Y:         from.Y + (to.Y-from.Y)*t,
		Z:         from.Z + (to.Z-from.Z)*t,
		Heading:   from.Heading + (to.Heading-from.Heading)*t,
		DriftLean: from.DriftLean + (to.DriftLean-from.DriftLean)*t,
		Name:      to.Name,
	}
}
