package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/driftline/shared/trackdata"
)

// TrackData holds the loaded track layout. One per scene.
type TrackData struct {
	Track *trackdata.Track
}

var Track = donburi.NewComponentType[TrackData]()
