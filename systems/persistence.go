package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/popcorn-guy/components"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool    `json:"debug"`
	Fullscreen bool    `json:"fullscreen"`
	SFXVolume  float64 `json:"sfxVolume"`
}

// itemStore is the part of gdata.Manager the settings need.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence opens the per-user data directory settings are kept in.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "popcorn-guy",
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	store = m
	return nil
}

// LoadSettings returns the saved settings, or nil when nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes s to disk. It is a no-op when persistence is not initialized.
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings saves the toggles of a running scene. Failures are logged, never fatal.
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
		SFXVolume:  globalSFXVolume,
	}
	if err := SaveSettings(saved); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}

// ApplySavedSettingsGlobal applies settings before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	startupSettings = components.SettingsData{
		Debug:      saved.Debug,
		Fullscreen: saved.Fullscreen,
	}
	globalSFXVolume = saved.SFXVolume
	ebiten.SetFullscreen(saved.Fullscreen)
}
