package config

import "github.com/yohamta/donburi/ecs"

// Draw layers, back to front.
const (
	LayerDefault ecs.LayerID = iota
	LayerUI
)

// Default is the layer every world entity is created on.
const Default = LayerDefault
