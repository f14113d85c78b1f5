package animation

import "testing"

func TestClipIDString(t *testing.T) {
	tests := []struct {
		id   ClipID
		want string
	}{
		{Idle, "idle"},
		{Run.Carrying(), "run_carry"},
		{Walk(NorthEast), "walk_north_east"},
		{IdleFacing(South).Carrying(), "idle_south_carry"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.id.String(); got != tc.want {
				t.Errorf("String() = %q, expected %q", got, tc.want)
			}
			back, err := ParseClipID(tc.want)
			if err != nil {
				t.Fatalf("ParseClipID(%q) error = %v", tc.want, err)
			}
			if back != tc.id {
				t.Errorf("ParseClipID(%q) = %+v, expected %+v", tc.want, back, tc.id)
			}
		})
	}
}

func TestParseClipIDErrors(t *testing.T) {
	for _, s := range []string{"", "swim", "walk_up", "idle_carry_carry"} {
		if _, err := ParseClipID(s); err == nil {
			t.Errorf("ParseClipID(%q) expected an error", s)
		}
	}
}

func TestParseClipIDIsCaseInsensitive(t *testing.T) {
	got, err := ParseClipID(" Walk_South_West ")
	if err != nil {
		t.Fatalf("ParseClipID() error = %v", err)
	}
	if got != Walk(SouthWest) {
		t.Errorf("ParseClipID() = %v, expected walk_south_west", got)
	}
}
