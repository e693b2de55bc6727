package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"

	"github.com/automoto/driftline/shared/netconfig"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	PlayerName    string `json:"playerName"`
	ServerAddress string `json:"serverAddress"`
	Fullscreen    bool   `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "driftline",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. A missing or unreadable file is
// not an error; the caller falls back to DefaultSettings.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// DefaultSettings returns the settings used when nothing is saved yet.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		PlayerName:    "driver",
		ServerAddress: netconfig.DefaultAddress(),
	}
}

// ApplySavedSettings applies loaded settings to the window state.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
