package components

import (
	"image"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// AnimationData is an actor's clip clock plus the sheet it is drawn from.
type AnimationData struct {
	State animation.State
	Frame animation.Frame // result of the last tick

	Sheet       *ebiten.Image
	SheetRef    string
	Binds       int // sheets bound so far, shown in the debug overlay
	FrameWidth  int
	FrameHeight int

	// Sub-images of Sheet keyed by render index. Cleared whenever a different sheet is bound.
	CachedFrames map[int]*ebiten.Image
}

// Bind makes img the sheet frames are cut from. Binding the handle that is already bound keeps
// the frame cache and reports false.
func (a *AnimationData) Bind(ref string, img *ebiten.Image) bool {
	a.SheetRef = ref
	if img == a.Sheet {
		return false
	}
	a.Sheet = img
	a.CachedFrames = nil
	a.Binds++
	return true
}

// FrameRect is the sheet rectangle of a render index for a sheet cols frames wide.
func FrameRect(index, cols, fw, fh int) image.Rectangle {
	if cols <= 0 {
		cols = 1
	}
	x := (index % cols) * fw
	y := (index / cols) * fh
	return image.Rect(x, y, x+fw, y+fh)
}

// FrameImage returns the sub-image for a render index, caching it.
func (a *AnimationData) FrameImage(index int) *ebiten.Image {
	if a.Sheet == nil || a.FrameWidth <= 0 || a.FrameHeight <= 0 {
		return nil
	}
	if img, ok := a.CachedFrames[index]; ok {
		return img
	}
	cols := a.Sheet.Bounds().Dx() / a.FrameWidth
	img := a.Sheet.SubImage(FrameRect(index, cols, a.FrameWidth, a.FrameHeight)).(*ebiten.Image)
	if a.CachedFrames == nil {
		a.CachedFrames = make(map[int]*ebiten.Image)
	}
	a.CachedFrames[index] = img
	return img
}

var Animation = donburi.NewComponentType[AnimationData]()
