package systems

import (
	"math"

	"github.com/automoto/popcorn-guy/components"
	"github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the first player, keeping the view inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2
	targetX, targetY = clampCameraTarget(targetX, targetY,
		float64(config.C.Width), float64(config.C.Height),
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCameraTarget keeps the view inside the level. A level smaller than the screen on an
// axis is centered on that axis.
func clampCameraTarget(x, y, screenW, screenH, levelW, levelH float64) (float64, float64) {
	clamp := func(v, screen, level float64) float64 {
		if level <= screen {
			return level / 2
		}
		return math.Max(screen/2, math.Min(level-screen/2, v))
	}
	return clamp(x, screenW, levelW), clamp(y, screenH, levelH)
}

// SnapCamera centers the camera on its target immediately, used when a level starts.
func SnapCamera(e *ecs.ECS) {
	smoothing := config.Camera.FollowSmoothing
	config.Camera.FollowSmoothing = 1
	UpdateCamera(e)
	config.Camera.FollowSmoothing = smoothing
}
