package components

import (
	"github.com/automoto/popcorn-guy/animation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CursorData is the in-game mouse pointer. It runs on the same clock as actors but plays a
// single fixed clip.
type CursorData struct {
	Clip  animation.Clip
	State animation.State
	Sheet *ebiten.Image
	Size  int
	X, Y  int
}

var Cursor = donburi.NewComponentType[CursorData]()
