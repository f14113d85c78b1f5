package components

import (
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ActionStateOf compares two frames of a pressed flag.
func ActionStateOf(current, previous bool) ActionState {
	return ActionState{
		Pressed:      current,
		JustPressed:  current && !previous,
		JustReleased: !current && previous,
	}
}

// InputData stores the current and previous frame's pressed state for all actions.
// Used for global/menu input where all devices are merged.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData is the copy of the merged input a player entity reads from.
type PlayerInputData struct {
	CurrentInput  [cfg.ActionCount]bool
	PreviousInput [cfg.ActionCount]bool
}

// Action returns the state of one action for this player.
func (p *PlayerInputData) Action(action cfg.ActionID) ActionState {
	return ActionStateOf(p.CurrentInput[action], p.PreviousInput[action])
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
