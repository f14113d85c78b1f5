package components

import (
	"github.com/automoto/popcorn-guy/animation"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Mode      animation.Mode      // how the player moves and which clips it plays
	Direction Vector              // last horizontal facing, -1 or 1 on X
	Facing    animation.Direction // compass facing used by top-down clips
}

var Player = donburi.NewComponentType[PlayerData]()
