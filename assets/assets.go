package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/driftline/shared/trackdata"
)

//go:embed all:tracks
var trackFS embed.FS

// TrackFS returns the embedded track files, for callers that load by path.
func TrackFS() fs.FS {
	return trackFS
}

// ListTrackNames returns the embedded track names, sorted.
func ListTrackNames() []string {
	entries, err := trackFS.ReadDir("tracks")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmx") {
			names = append(names, strings.TrimSuffix(e.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadTrack loads an embedded track by name.
func LoadTrack(name string) (*trackdata.Track, error) {
	return trackdata.LoadTrack(trackFS, path.Join("tracks", name+".tmx"))
}
