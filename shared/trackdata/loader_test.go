package trackdata

import (
	"math"
	"os"
	"testing"
)

func TestLoadTrackParsesLayout(t *testing.T) {
	track, err := LoadTrack(os.DirFS("testdata"), "mini.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if track.Name != "mini" {
		t.Fatalf("expected name from map property, got %q", track.Name)
	}
	if track.Width != 16 || track.Depth != 12 {
		t.Fatalf("unexpected dimensions %fx%f", track.Width, track.Depth)
	}

	if len(track.Grounds) != 2 {
		t.Fatalf("expected 2 ground plates, got %d", len(track.Grounds))
	}
	flat := track.Grounds[0]
	if flat.X != 2 || flat.Z != 2 || flat.W != 12 || flat.D != 8 || flat.Top != 0 {
		t.Fatalf("unexpected flat plate %+v", flat)
	}
	if raised := track.Grounds[1]; raised.Top != 0.5 {
		t.Fatalf("expected raised plate top 0.5, got %f", raised.Top)
	}

	if len(track.Walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(track.Walls))
	}
	if wall := track.Walls[0]; wall.X != 1 || wall.Z != 1 || wall.W != 14 || wall.D != 1 {
		t.Fatalf("unexpected wall %+v", wall)
	}
}

func TestLoadTrackSortsSpawnsByIndex(t *testing.T) {
	track, err := LoadTrack(os.DirFS("testdata"), "mini.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(track.Spawns) != 2 {
		t.Fatalf("expected 2 spawns, got %d", len(track.Spawns))
	}
	if track.Spawns[0].Index != 0 || track.Spawns[1].Index != 1 {
		t.Fatalf("spawns not sorted by index: %+v", track.Spawns)
	}
	if track.Spawns[0].X != 3 {
		t.Fatalf("expected spawn 0 at x=3, got %f", track.Spawns[0].X)
	}
	if got := track.Spawns[1].Heading; math.Abs(got-math.Pi) > 1e-9 {
		t.Fatalf("expected heading 180 degrees as pi radians, got %f", got)
	}
}

func TestLoadTrackRejectsMissingGround(t *testing.T) {
	if _, err := LoadTrack(os.DirFS("testdata"), "noground.tmx"); err == nil {
		t.Fatal("expected an error for a track without ground")
	}
}

func TestLoadTrackMissingFile(t *testing.T) {
	if _, err := LoadTrack(os.DirFS("testdata"), "missing.tmx"); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
