package systems

import (
	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld returns a world with a 320x320 collision space of 16px cells.
func newTestWorld() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 320, 320, 16, 16)
	return e
}

// newPlayer spawns a player whose feet rest at (x, y).
func newPlayer(e *ecs.ECS, x, y float64, mode animation.Mode) *donburi.Entry {
	return factory.CreatePlayer(e, x, y, mode)
}

// press starts a new input tick with exactly the given actions held.
func press(entry *donburi.Entry, actions ...cfg.ActionID) {
	in := components.PlayerInput.Get(entry)
	in.PreviousInput = in.CurrentInput
	in.CurrentInput = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.CurrentInput[a] = true
	}
}

// step runs the movement half of the update order once.
func step(e *ecs.ECS) {
	UpdatePlayer(e)
	UpdatePhysics(e)
	UpdateCollisions(e)
	UpdateObjects(e)
}

// run presses the actions for n ticks.
func run(e *ecs.ECS, player *donburi.Entry, n int, actions ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		press(player, actions...)
		step(e)
	}
}
