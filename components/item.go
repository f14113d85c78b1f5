package components

import (
	"github.com/yohamta/donburi"
)

// ItemData marks an entity that can be picked up.
type ItemData struct {
	Kind     string // key into config.ItemDefs
	Name     string
	Held     bool
	InReach  bool    // overlapping a player this tick
	RestY    float64 // Y the item bobs around while on the ground
	BobDelta float64 // current offset from RestY, applied at draw time
}

var Item = donburi.NewComponentType[ItemData]()

// InventoryData is the single item slot of a player.
type InventoryData struct {
	Held *donburi.Entry
}

var Inventory = donburi.NewComponentType[InventoryData]()
