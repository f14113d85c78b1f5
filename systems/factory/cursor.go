package factory

import (
	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/archetypes"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CursorClip is the looping pointer animation built from the cursor settings.
func CursorClip() animation.Clip {
	return animation.Clip{
		FrameCount:    cfg.Cursor.FrameCount,
		FrameDuration: cfg.Cursor.FrameDuration,
		Asset:         cfg.Cursor.Sheet,
	}
}

// CreateCursor spawns the mouse pointer. sheet may be nil, in which case nothing is drawn.
func CreateCursor(ecs *ecs.ECS, sheet *ebiten.Image) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)
	components.Cursor.SetValue(cursor, components.CursorData{
		Clip:  CursorClip(),
		Sheet: sheet,
		Size:  cfg.Cursor.FrameSize,
	})
	return cursor
}
