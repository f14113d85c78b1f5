package factory

import (
	"github.com/automoto/popcorn-guy/archetypes"
	"github.com/automoto/popcorn-guy/assets"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IconLoader resolves an item icon path to an image.
type IconLoader func(path string) (*ebiten.Image, error)

// CreateLevel spawns the level entity along with its collision space, solids, platforms and
// items. Items of unknown kinds are skipped with a warning.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, icons IconLoader) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{CurrentLevel: level})

	cell := level.TileSize
	if cell <= 0 {
		cell = 16
	}
	CreateSpace(ecs, level.Width, level.Height, cell, cell)

	for _, t := range level.SolidTiles {
		CreateWall(ecs, t.X, t.Y, t.Width, t.Height)
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.Width, p.Height)
	}

	for _, spawn := range level.ItemSpawns {
		var icon *ebiten.Image
		if def, ok := cfg.ItemDefs[spawn.Kind]; ok && icons != nil {
			img, err := icons(def.Icon)
			if err != nil {
				log.Warn("item icon unavailable", "item", spawn.Kind, "err", err)
			}
			icon = img
		}
		if _, err := CreateItem(ecs, spawn, icon); err != nil {
			log.Warn("skipping item", "level", level.Name, "err", err)
		}
	}

	return entry
}
