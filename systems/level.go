package systems

import (
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel fills the screen with the level's backdrop color and draws the pre-rendered tile
// layers under the camera.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)

	camX, camY, ok := cameraTransform(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(camX, camY)
	screen.DrawImage(levelData.CurrentLevel.Background, drawOp)
}
