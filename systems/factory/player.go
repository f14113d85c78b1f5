package factory

import (
	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/archetypes"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet at (x, y). The sheet is bound by the animation
// system on the first tick.
func CreatePlayer(ecs *ecs.ECS, x, y float64, mode animation.Mode) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	start := animation.Idle
	facing := animation.East
	physics := components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	}
	if mode == animation.ModeTopDown {
		facing = animation.South
		start = animation.IdleFacing(facing)
		// Walking sets the velocity outright, so only the cap applies.
		physics = components.PhysicsData{MaxSpeed: cfg.Player.WalkSpeed}
	}

	components.Player.SetValue(player, components.PlayerData{
		Mode:      mode,
		Direction: components.Vector{X: cfg.DirectionRight},
		Facing:    facing,
	})
	components.Physics.SetValue(player, physics)
	components.Animation.SetValue(player, components.AnimationData{
		State:       animation.NewState(start),
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
	})

	return player
}
