package systems

import (
	"github.com/automoto/popcorn-guy/components"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// HUD is the screen-space overlay showing the held item.
type HUD interface {
	SetItem(name string, icon *ebiten.Image)
	Update()
	Draw(screen *ebiten.Image)
}

// NewUpdateHUD returns a system that keeps h in sync with the first player's inventory.
func NewUpdateHUD(h HUD) ecs.System {
	return func(e *ecs.ECS) {
		h.SetItem(heldItem(e))
		h.Update()
	}
}

// NewDrawHUD returns the renderer for h.
func NewDrawHUD(h HUD) func(*ecs.ECS, *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		h.Draw(screen)
	}
}

// heldItem returns the name and icon of the first player's item, or "" and nil.
func heldItem(e *ecs.ECS) (string, *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return "", nil
	}
	held := components.Inventory.Get(playerEntry).Held
	if held == nil || !held.Valid() {
		return "", nil
	}
	return components.Item.Get(held).Name, components.Sprite.Get(held).Image
}
