package factory

import (
	"github.com/automoto/popcorn-guy/archetypes"
	"github.com/automoto/popcorn-guy/components"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a one-way platform: it is landed on from above and passed through
// from below.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform

	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}
