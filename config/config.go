package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer; everything draws in registration order.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // Skip menu and go directly to the track
	DrawBodies  bool // Overlay physics body footprints
	ShowTickHUD bool // Show tick/frame counters in the HUD
}

// Global configuration instances
var C *Config
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen  = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue    = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Asphalt     = color.RGBA{R: 52, G: 56, B: 62, A: 255}
	AsphaltEdge = color.RGBA{R: 80, G: 86, B: 94, A: 255}
	SkyTop      = color.RGBA{R: 18, G: 22, B: 38, A: 255}
	KartBody    = color.RGBA{R: 220, G: 60, B: 40, A: 255}
	GhostBody   = color.RGBA{R: 90, G: 160, B: 255, A: 160}
	WheelColor  = color.RGBA{R: 24, G: 24, B: 24, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "driftline",
	}
}
