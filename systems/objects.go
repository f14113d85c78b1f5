package systems

import (
	"github.com/automoto/popcorn-guy/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects re-registers every moved object with the cells of its space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space == nil {
			continue
		}
		obj.Update()
	}
}
