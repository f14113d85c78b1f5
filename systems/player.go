package systems

import (
	"math"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TickSeconds is the simulated time covered by one update.
func TickSeconds() float64 {
	if cfg.Animation.TicksPerSecond <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(cfg.Animation.TicksPerSecond)
}

func UpdatePlayer(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(ecs, playerEntry)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	input := components.PlayerInput.Get(playerEntry)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	if player.Mode == animation.ModeTopDown {
		handleTopDownMovement(input, player, physics, TickSeconds())
		return
	}

	handleJumpInput(ecs, input, physics)
	handleMovementInput(input, player, physics)
}

func handleJumpInput(e *ecs.ECS, input *components.PlayerInputData, physics *components.PhysicsData) {
	if !GetPlayerAction(input, cfg.ActionJump).JustPressed || physics.OnGround == nil {
		return
	}

	// Drop-through platform
	if GetPlayerAction(input, cfg.ActionMoveDown).Pressed && physics.OnGround.HasTags(tags.ResolvPlatform) {
		physics.IgnorePlatform = physics.OnGround
		return
	}

	physics.SpeedY = -cfg.Player.JumpSpeed
	PlaySFX(e, cfg.SoundJump)
}

func handleMovementInput(input *components.PlayerInputData, player *components.PlayerData, physics *components.PhysicsData) {
	accel := cfg.Player.Acceleration

	if GetPlayerAction(input, cfg.ActionMoveRight).Pressed {
		physics.SpeedX += accel
		player.Direction.X = cfg.DirectionRight
		player.Facing = animation.East
	}
	if GetPlayerAction(input, cfg.ActionMoveLeft).Pressed {
		physics.SpeedX -= accel
		player.Direction.X = cfg.DirectionLeft
		player.Facing = animation.West
	}
}

// handleTopDownMovement sets the velocity for one tick of 8-way walking. Diagonals are
// normalized so they are no faster than straight lines.
func handleTopDownMovement(input *components.PlayerInputData, player *components.PlayerData, physics *components.PhysicsData, dt float64) {
	up := GetPlayerAction(input, cfg.ActionMoveUp).Pressed
	down := GetPlayerAction(input, cfg.ActionMoveDown).Pressed
	left := GetPlayerAction(input, cfg.ActionMoveLeft).Pressed
	right := GetPlayerAction(input, cfg.ActionMoveRight).Pressed

	var dx, dy float64
	if left {
		dx--
	}
	if right {
		dx++
	}
	if up {
		dy--
	}
	if down {
		dy++
	}

	physics.SpeedX, physics.SpeedY = 0, 0
	if n := math.Hypot(dx, dy); n > 0 {
		step := cfg.Player.WalkSpeed * dt / n
		physics.SpeedX = dx * step
		physics.SpeedY = dy * step
	}
	if dx != 0 {
		player.Direction.X = dx
	}

	mode := animation.EightWay
	if cfg.Animation.FourWay {
		mode = animation.FourWay
	}
	player.Facing = animation.ResolveDirection(up, down, left, right, player.Facing, mode)
}
