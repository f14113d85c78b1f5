package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the singleton collision space every solid and item object lives in.
var Space = donburi.NewComponentType[resolv.Space]()
