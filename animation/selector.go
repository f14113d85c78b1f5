package animation

import (
	"fmt"
	"math"
)

// Mode selects the family of clips an actor plays.
type Mode int

const (
	ModePlatformer Mode = iota
	ModeTopDown
)

func (m Mode) String() string {
	switch m {
	case ModePlatformer:
		return "platformer"
	case ModeTopDown:
		return "topdown"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode accepts "platformer" or "topdown".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "platformer", "":
		return ModePlatformer, nil
	case "topdown", "top-down":
		return ModeTopDown, nil
	}
	return ModePlatformer, fmt.Errorf("unknown mode %q", s)
}

// DirectionMode is the number of facings a top-down actor resolves to.
type DirectionMode int

const (
	EightWay DirectionMode = iota
	FourWay
)

// DefaultVelocityEpsilon replaces a negative or NaN dead-zone. Zero is a valid dead-zone.
const DefaultVelocityEpsilon = 0.1

// Policy tunes the selector.
type Policy struct {
	Mode            Mode
	VelocityEpsilon float64 // |vy| at or below this counts as resting
	TrackGrounded   bool    // require the physics grounded flag for Run and forbid it for Jump/Fall
	ItemAffectsClip bool    // play Carry variants while holding an item
	Directions      DirectionMode
}

// Intent is one tick's view of an actor, built from input and physics.
type Intent struct {
	HorizontalPressed bool
	VerticalPressed   bool
	VerticalVelocity  float64 // positive is upward
	Grounded          bool
	HoldingItem       bool
	Facing            Direction
}

// Selector maps an Intent to the clip that should be playing. It holds no per-actor state.
type Selector struct {
	policy Policy
}

func NewSelector(p Policy) *Selector {
	if p.VelocityEpsilon < 0 || math.IsNaN(p.VelocityEpsilon) {
		p.VelocityEpsilon = DefaultVelocityEpsilon
	}
	return &Selector{policy: p}
}

// Policy returns the selector's effective policy.
func (s *Selector) Policy() Policy {
	return s.policy
}

// Select classifies the intent. It is recomputed from scratch every tick.
func (s *Selector) Select(in Intent) ClipID {
	if s.policy.Mode == ModeTopDown {
		return s.selectTopDown(in)
	}

	id := s.selectPlatformer(in)
	if s.policy.ItemAffectsClip && in.HoldingItem {
		id = id.Carrying()
	}
	return id
}

func (s *Selector) selectPlatformer(in Intent) ClipID {
	eps := s.policy.VelocityEpsilon
	vy := in.VerticalVelocity
	if math.IsNaN(vy) {
		vy = 0
	}
	grounded := in.Grounded || !s.policy.TrackGrounded
	airborne := !in.Grounded || !s.policy.TrackGrounded

	switch {
	case in.HorizontalPressed && !in.VerticalPressed && math.Abs(vy) <= eps && grounded:
		return Run
	case vy > eps && airborne:
		return Jump
	case vy < -eps && airborne:
		return Fall
	default:
		return Idle
	}
}

func (s *Selector) selectTopDown(in Intent) ClipID {
	facing := in.Facing
	if facing == DirNone {
		facing = South
	}
	if in.HorizontalPressed || in.VerticalPressed {
		return Walk(facing)
	}
	return IdleFacing(facing)
}

// Candidates lists every id Select can return under the policy, so a registry can be checked at startup.
func (s *Selector) Candidates() []ClipID {
	if s.policy.Mode == ModeTopDown {
		dirs := []Direction{North, East, South, West}
		if s.policy.Directions == EightWay {
			dirs = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}
		}
		ids := make([]ClipID, 0, len(dirs)*2)
		for _, d := range dirs {
			ids = append(ids, IdleFacing(d), Walk(d))
		}
		return ids
	}

	ids := []ClipID{Idle, Run, Jump, Fall}
	if s.policy.ItemAffectsClip {
		for _, id := range []ClipID{Idle, Run, Jump, Fall} {
			ids = append(ids, id.Carrying())
		}
	}
	return ids
}

// ResolveDirection combines held movement keys into a facing. Opposite keys cancel on their
// axis; with nothing held the previous facing is kept.
func ResolveDirection(up, down, left, right bool, prev Direction, mode DirectionMode) Direction {
	var dx, dy int
	if left {
		dx--
	}
	if right {
		dx++
	}
	if up {
		dy--
	}
	if down {
		dy++
	}

	if mode == FourWay && dx != 0 {
		dy = 0
	}

	switch {
	case dx == 0 && dy == 0:
		return prev
	case dx < 0 && dy < 0:
		return NorthWest
	case dx > 0 && dy < 0:
		return NorthEast
	case dx < 0 && dy > 0:
		return SouthWest
	case dx > 0 && dy > 0:
		return SouthEast
	case dx < 0:
		return West
	case dx > 0:
		return East
	case dy < 0:
		return North
	default:
		return South
	}
}
