package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/fonts"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based API matches the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const debugLineHeight = 12

// DrawDebug draws collision boxes and the actor readout while the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if camX, camY, ok := cameraTransform(ecs, screen); ok {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Objects() {
				if !visible(obj.X, obj.Y, obj.W, obj.H, camX, camY, screen) {
					continue
				}
				strokeBox(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, debugColor(obj))
			}
		}
	}

	lines := []string{fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		lines = append(lines, actorDebugLines(e)...)
	})

	face := fonts.Small.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, 6, screen.Bounds().Dy()-6-(len(lines)-1-i)*debugLineHeight, cfg.White)
	}
}

// actorDebugLines describes the animation and physics state of one actor.
func actorDebugLines(e *donburi.Entry) []string {
	anim := components.Animation.Get(e)
	physics := components.Physics.Get(e)
	player := components.Player.Get(e)

	return []string{
		fmt.Sprintf("clip %s  frame %d  mirrored %t", anim.Frame.ID, anim.Frame.Index, anim.Frame.Mirrored),
		fmt.Sprintf("sheet %s  binds %d", anim.SheetRef, anim.Binds),
		fmt.Sprintf("mode %s  facing %s  vy %.2f  grounded %t", player.Mode, player.Facing, -physics.SpeedY, physics.OnGround != nil),
	}
}

func debugColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvSolid):
		return color.RGBA{100, 100, 100, 255}
	case obj.HasTags(tags.ResolvPlatform):
		return cfg.Orange
	case obj.HasTags(tags.ResolvPlayer):
		return cfg.Blue
	case obj.HasTags(tags.ResolvItem):
		return cfg.Green
	}
	return color.RGBA{0, 255, 255, 255}
}

func strokeBox(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)
}
