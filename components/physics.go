package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds an actor's velocity. SpeedY grows downward, matching screen space.
type PhysicsData struct {
	SpeedX         float64
	SpeedY         float64
	Gravity        float64
	Friction       float64
	MaxSpeed       float64
	OnGround       *resolv.Object
	IgnorePlatform *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
