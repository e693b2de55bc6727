package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/archetypes"
	"github.com/automoto/driftline/components"
	"github.com/automoto/driftline/shared/trackdata"
)

// CreateTrack registers the loaded track layout for the renderers.
func CreateTrack(e *ecs.ECS, track *trackdata.Track) *donburi.Entry {
	entry := archetypes.Track.Spawn(e)
	components.Track.SetValue(entry, components.TrackData{Track: track})
	return entry
}
