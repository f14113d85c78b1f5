package systems

import (
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// startupSettings seeds the Settings component of every new scene, so toggles survive scene
// changes within one run as well as restarts.
var startupSettings components.SettingsData

// UpdateSettings toggles the debug overlay and fullscreen, saving every change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}

	if changed {
		startupSettings = *settings
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		seed := startupSettings
		seed.Debug = seed.Debug || cfg.Debug.Overlay
		components.Settings.SetValue(entry, seed)
	}
	return components.Settings.Get(entry)
}
