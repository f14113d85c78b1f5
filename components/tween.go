package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a back-and-forth motion by alternating two tweens.
type TweenData struct {
	Up     *gween.Tween
	Down   *gween.Tween
	Rising bool
}

// Current returns the tween that is playing.
func (t *TweenData) Current() *gween.Tween {
	if t.Rising {
		return t.Up
	}
	return t.Down
}

var Tween = donburi.NewComponentType[TweenData]()
