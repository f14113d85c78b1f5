package systems

import (
	"image/color"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/assets"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// highlightStrength is how far an item in reach is tinted toward the glow color.
const highlightStrength = 0.6

// cullPadding keeps sprites from popping at the screen edges.
const cullPadding = 64.0

// cameraTransform returns the translation from world to screen space.
func cameraTransform(e *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

func visible(x, y, w, h, camX, camY float64, screen *ebiten.Image) bool {
	sx, sy := x+camX, y+camY
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return sx+w >= -cullPadding && sx <= width+cullPadding && sy+h >= -cullPadding && sy <= height+cullPadding
}

// DrawAnimated renders every animated actor at its current frame.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraTransform(ecs, screen)
	if !ok {
		return
	}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !visible(o.X, o.Y, o.W, o.H, camX, camY, screen) {
			return
		}

		animData := components.Animation.Get(e)
		var img *ebiten.Image
		if animData.Frame.Valid {
			img = animData.FrameImage(animData.Frame.Index)
		}
		if img == nil {
			// No sheet bound yet
			vector.FillRect(screen, float32(o.X+camX), float32(o.Y+camY), float32(o.W), float32(o.H), placeholderColor(e), false)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the collision box
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

		// Directional clips are drawn as authored
		if animData.Frame.Mirrored && animData.Frame.ID.Dir == animation.DirNone {
			drawOp.GeoM.Scale(-1, 1)
		}

		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)
		drawOp.GeoM.Translate(camX, camY)
		screen.DrawImage(img, drawOp)
	})
}

func placeholderColor(e *donburi.Entry) color.Color {
	if e.HasComponent(components.Physics) && components.Physics.Get(e).OnGround == nil {
		return cfg.Magenta
	}
	return cfg.Blue
}

// DrawItems renders the items lying on the ground, highlighting those a player can reach.
func DrawItems(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraTransform(ecs, screen)
	if !ok {
		return
	}

	tags.Item.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		sprite := components.Sprite.Get(e)
		if item.Held || sprite.Hidden {
			return
		}
		o := components.Object.Get(e)
		x := o.X + camX
		y := item.RestY + item.BobDelta + camY
		if !visible(o.X, item.RestY, o.W, o.H, camX, camY, screen) {
			return
		}

		if sprite.Image == nil {
			vector.FillRect(screen, float32(x), float32(y), float32(o.W), float32(o.H), cfg.Green, false)
			return
		}

		if item.InReach && cfg.Items.Highlight && assets.HighlightShader != nil {
			drawHighlighted(screen, sprite.Image, x, y)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(x, y)
		screen.DrawImage(sprite.Image, drawOp)
	})
}

func drawHighlighted(screen, img *ebiten.Image, x, y float64) {
	b := img.Bounds()
	shaderOp.GeoM.Reset()
	shaderOp.GeoM.Translate(x, y)
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{"Strength": float32(highlightStrength)}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.HighlightShader, shaderOp)
}
