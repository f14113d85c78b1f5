package factory

import (
	"fmt"

	"github.com/automoto/popcorn-guy/archetypes"
	"github.com/automoto/popcorn-guy/assets"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateItem spawns an item resting with its top-left corner at the spawn point.
func CreateItem(ecs *ecs.ECS, spawn assets.ItemSpawn, icon *ebiten.Image) (*donburi.Entry, error) {
	def, ok := cfg.ItemDefs[spawn.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown item kind %q", spawn.Kind)
	}

	item := archetypes.Item.Spawn(ecs)

	size := float64(cfg.Items.Size)
	obj := resolv.NewObject(spawn.X, spawn.Y, size, size, tags.ResolvItem)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = item
	components.Object.SetValue(item, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Item.SetValue(item, components.ItemData{
		Kind:  spawn.Kind,
		Name:  def.Name,
		RestY: spawn.Y,
	})
	components.Sprite.SetValue(item, components.SpriteData{Image: icon})
	components.Tween.SetValue(item, NewBob())

	return item, nil
}

// NewBob returns the tween pair an item floats on while it lies on the ground.
func NewBob() components.TweenData {
	height := float32(cfg.Items.BobHeight)
	leg := float32(cfg.Items.BobSeconds)
	return components.TweenData{
		Up:     gween.New(0, -height, leg, ease.InOutSine),
		Down:   gween.New(-height, 0, leg, ease.InOutSine),
		Rising: true,
	}
}
