package trackdata

import (
	"fmt"
	"io/fs"
	"math"
	"sort"

	"github.com/lafriks/go-tiled"
)

// LoadTrack parses a TMX file into a Track. Track maps carry no tile layers
// or images, only the object groups "Ground", "Walls" and "Spawn"; the map's
// tile size is the scale of one simulation unit. It takes an fs.FS so
// callers can pass embed.FS (client) or os.DirFS (tests, tools).
func LoadTrack(fsys fs.FS, tmxPath string) (*Track, error) {
	trackMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	unit := float64(trackMap.TileWidth)
	if unit <= 0 {
		return nil, fmt.Errorf("track %s: tile width must be positive", tmxPath)
	}

	track := &Track{
		Name:  trackMap.Properties.GetString("name"),
		Width: float64(trackMap.Width*trackMap.TileWidth) / unit,
		Depth: float64(trackMap.Height*trackMap.TileHeight) / unit,
	}
	if track.Name == "" {
		track.Name = tmxPath
	}

	for _, og := range trackMap.ObjectGroups {
		switch og.Name {
		case "Ground":
			for _, o := range og.Objects {
				track.Grounds = append(track.Grounds, Plate{
					X:   o.X / unit,
					Z:   o.Y / unit,
					W:   o.Width / unit,
					D:   o.Height / unit,
					Top: o.Properties.GetFloat("top"),
				})
			}
		case "Walls":
			for _, o := range og.Objects {
				track.Walls = append(track.Walls, Rect{
					X: o.X / unit,
					Z: o.Y / unit,
					W: o.Width / unit,
					D: o.Height / unit,
				})
			}
		case "Spawn":
			for _, o := range og.Objects {
				track.Spawns = append(track.Spawns, Spawn{
					X:       o.X / unit,
					Z:       o.Y / unit,
					Heading: o.Properties.GetFloat("heading") * math.Pi / 180,
					Index:   o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	if len(track.Grounds) == 0 {
		return nil, fmt.Errorf("track %s: no Ground objects", tmxPath)
	}
	if len(track.Spawns) == 0 {
		return nil, fmt.Errorf("track %s: no Spawn objects", tmxPath)
	}

	// Stable spawn order regardless of object order in the map.
	sort.Slice(track.Spawns, func(i, j int) bool {
		return track.Spawns[i].Index < track.Spawns[j].Index
	})

	return track, nil
}
