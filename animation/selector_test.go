package animation

import (
	"math"
	"testing"
)

func TestSelectPlatformerDeadZone(t *testing.T) {
	for _, eps := range []float64{0.01, 0.02, 0.1, 0.2} {
		s := NewSelector(Policy{VelocityEpsilon: eps, TrackGrounded: true})
		for _, vy := range []float64{-eps / 2, 0, eps / 2} {
			in := Intent{HorizontalPressed: true, VerticalVelocity: vy, Grounded: true}
			if got := s.Select(in); got != Run {
				t.Errorf("eps %v vy %v: Select() = %v, expected run", eps, vy, got)
			}
		}
	}
}

func TestSelectPlatformer(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		in     Intent
		want   ClipID
	}{
		{name: "resting", policy: Policy{TrackGrounded: true}, in: Intent{Grounded: true}, want: Idle},
		{name: "running", policy: Policy{TrackGrounded: true}, in: Intent{HorizontalPressed: true, Grounded: true}, want: Run},
		{name: "vertical key blocks run", policy: Policy{TrackGrounded: true}, in: Intent{HorizontalPressed: true, VerticalPressed: true, Grounded: true}, want: Idle},
		{name: "rising", policy: Policy{TrackGrounded: true}, in: Intent{VerticalVelocity: 3}, want: Jump},
		{name: "falling", policy: Policy{TrackGrounded: true}, in: Intent{VerticalVelocity: -3}, want: Fall},
		{name: "running while rising is a jump", policy: Policy{TrackGrounded: true}, in: Intent{HorizontalPressed: true, VerticalVelocity: 3}, want: Jump},
		{name: "not grounded blocks run", policy: Policy{TrackGrounded: true}, in: Intent{HorizontalPressed: true}, want: Idle},
		{name: "grounded blocks jump", policy: Policy{TrackGrounded: true}, in: Intent{VerticalVelocity: 3, Grounded: true}, want: Idle},
		{name: "untracked grounded runs", policy: Policy{}, in: Intent{HorizontalPressed: true}, want: Run},
		{name: "untracked grounded jumps", policy: Policy{}, in: Intent{VerticalVelocity: 3, Grounded: true}, want: Jump},
		{name: "carry ignored by default", policy: Policy{TrackGrounded: true}, in: Intent{Grounded: true, HoldingItem: true}, want: Idle},
		{name: "carry idle", policy: Policy{TrackGrounded: true, ItemAffectsClip: true}, in: Intent{Grounded: true, HoldingItem: true}, want: Idle.Carrying()},
		{name: "carry fall", policy: Policy{TrackGrounded: true, ItemAffectsClip: true}, in: Intent{VerticalVelocity: -1, HoldingItem: true}, want: Fall.Carrying()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewSelector(tc.policy).Select(tc.in); got != tc.want {
				t.Errorf("Select() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSelectTopDown(t *testing.T) {
	s := NewSelector(Policy{Mode: ModeTopDown})

	tests := []struct {
		name string
		in   Intent
		want ClipID
	}{
		{name: "initial facing is south", in: Intent{}, want: IdleFacing(South)},
		{name: "idle keeps facing", in: Intent{Facing: West}, want: IdleFacing(West)},
		{name: "walk horizontal", in: Intent{HorizontalPressed: true, Facing: East}, want: Walk(East)},
		{name: "walk vertical", in: Intent{VerticalPressed: true, Facing: North}, want: Walk(North)},
		{name: "walk diagonal", in: Intent{HorizontalPressed: true, VerticalPressed: true, Facing: SouthWest}, want: Walk(SouthWest)},
		{name: "velocity is ignored", in: Intent{VerticalVelocity: 9, Facing: East}, want: IdleFacing(East)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Select(tc.in); got != tc.want {
				t.Errorf("Select() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestNewSelectorEpsilon(t *testing.T) {
	tests := []struct {
		name string
		eps  float64
		want float64
	}{
		{name: "zero is kept", eps: 0, want: 0},
		{name: "configured", eps: 0.02, want: 0.02},
		{name: "negative", eps: -1, want: DefaultVelocityEpsilon},
		{name: "nan", eps: math.NaN(), want: DefaultVelocityEpsilon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewSelector(Policy{VelocityEpsilon: tc.eps}).Policy().VelocityEpsilon; got != tc.want {
				t.Errorf("VelocityEpsilon = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestSelectZeroEpsilon(t *testing.T) {
	s := NewSelector(Policy{VelocityEpsilon: 0, TrackGrounded: true})

	tests := []struct {
		name string
		in   Intent
		want ClipID
	}{
		{name: "small rise is a jump", in: Intent{VerticalVelocity: 0.05}, want: Jump},
		{name: "small drop is a fall", in: Intent{VerticalVelocity: -0.05}, want: Fall},
		{name: "exact zero runs", in: Intent{HorizontalPressed: true, Grounded: true}, want: Run},
		{name: "noise blocks run", in: Intent{HorizontalPressed: true, VerticalVelocity: 0.05, Grounded: true}, want: Idle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Select(tc.in); got != tc.want {
				t.Errorf("Select() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   int
	}{
		{name: "platformer", policy: Policy{}, want: 4},
		{name: "platformer with carry", policy: Policy{ItemAffectsClip: true}, want: 8},
		{name: "top-down eight way", policy: Policy{Mode: ModeTopDown}, want: 16},
		{name: "top-down four way", policy: Policy{Mode: ModeTopDown, Directions: FourWay}, want: 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := len(NewSelector(tc.policy).Candidates()); got != tc.want {
				t.Errorf("len(Candidates()) = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		name                  string
		up, down, left, right bool
		prev                  Direction
		mode                  DirectionMode
		want                  Direction
	}{
		{name: "nothing keeps previous", prev: West, want: West},
		{name: "up", up: true, want: North},
		{name: "down", down: true, want: South},
		{name: "left", left: true, want: West},
		{name: "right", right: true, want: East},
		{name: "up left", up: true, left: true, want: NorthWest},
		{name: "up right", up: true, right: true, want: NorthEast},
		{name: "down left", down: true, left: true, want: SouthWest},
		{name: "down right", down: true, right: true, want: SouthEast},
		{name: "left and right cancel", left: true, right: true, prev: South, want: South},
		{name: "cancelled axis leaves the other", up: true, left: true, right: true, want: North},
		{name: "all four keep previous", up: true, down: true, left: true, right: true, prev: East, want: East},
		{name: "four way keeps horizontal", up: true, right: true, mode: FourWay, want: East},
		{name: "four way vertical only", down: true, mode: FourWay, want: South},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveDirection(tc.up, tc.down, tc.left, tc.right, tc.prev, tc.mode)
			if got != tc.want {
				t.Errorf("ResolveDirection() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModePlatformer, "platformer": ModePlatformer, "topdown": ModeTopDown, "top-down": ModeTopDown} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v, expected %v", in, got, err, want)
		}
	}
	if _, err := ParseMode("isometric"); err == nil {
		t.Error("ParseMode(isometric) expected an error")
	}
}
