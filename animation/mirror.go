package animation

// Keys carries the horizontal key edges for one tick.
type Keys struct {
	LeftHeld     bool
	RightHeld    bool
	LeftPressed  bool // rising edge this tick
	RightPressed bool // rising edge this tick
	LeftReleased bool // falling edge this tick
}

// UpdateMirror applies the edge-triggered facing policy. Level-held keys never flip the sprite
// on their own, so holding both directions keeps whatever was last set.
func UpdateMirror(mirrored bool, k Keys) bool {
	switch {
	case k.LeftPressed:
		return true
	case k.RightPressed && !k.LeftHeld:
		return false
	case k.LeftReleased && k.RightHeld && !k.LeftHeld:
		return false
	}
	return mirrored
}
