package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Platform = donburi.NewTag().SetName("Platform")
	Wall     = donburi.NewTag().SetName("Wall")
	Item     = donburi.NewTag().SetName("Item")
	Cursor   = donburi.NewTag().SetName("Cursor")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
	ResolvItem     = "item"
)
