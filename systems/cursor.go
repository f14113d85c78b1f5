package systems

import (
	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCursor moves the pointer to the mouse and advances its clip on the actor clock.
func UpdateCursor(e *ecs.ECS) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	advanceCursor(components.Cursor.Get(entry), x, y, TickSeconds())
}

func advanceCursor(c *components.CursorData, x, y int, dt float64) {
	c.X, c.Y = x, y
	if c.Clip.FrameCount <= 0 {
		return
	}
	animation.Advance(&c.State, c.Clip, dt)
}

// DrawCursor draws the pointer with its hotspot at the top-left of the frame.
func DrawCursor(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	c := components.Cursor.Get(entry)
	if c.Sheet == nil || c.Size <= 0 {
		return
	}

	cols := c.Sheet.Bounds().Dx() / c.Size
	src := components.FrameRect(c.State.RenderIndex(c.Clip), cols, c.Size, c.Size)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(cfg.Cursor.Scale, cfg.Cursor.Scale)
	drawOp.GeoM.Translate(float64(c.X), float64(c.Y))
	screen.DrawImage(c.Sheet.SubImage(src).(*ebiten.Image), drawOp)
}
