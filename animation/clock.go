package animation

import "math"

// timeEpsilon absorbs float error when elapsed time lands on a frame boundary.
const timeEpsilon = 1e-9

// State is the per-actor animation state.
type State struct {
	Current  ClipID
	Elapsed  float64 // seconds accumulated since the displayed frame began
	Frame    int     // local index, always < FrameCount of Current
	Mirrored bool
}

// NewState returns a state playing id from its first frame.
func NewState(id ClipID) State {
	return State{Current: id}
}

// Switch starts id from its first frame. Switching to the clip already playing keeps its phase.
func (s *State) Switch(id ClipID) bool {
	if s.Current == id {
		return false
	}
	s.Current = id
	s.Frame = 0
	s.Elapsed = 0
	return true
}

// RenderIndex is the sheet index to draw for the current frame.
func (s *State) RenderIndex(clip Clip) int {
	return clip.StartingIndex + s.Frame
}

// Advance moves the state's frame forward by dt seconds of clip playback.
// Several frames may be skipped in one call; leftover time is kept for the next call.
func Advance(s *State, clip Clip, dt float64) {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = 0
	}
	if clip.Static() || clip.FrameCount <= 0 {
		return
	}

	s.Elapsed += dt
	if s.Elapsed < 0 {
		s.Elapsed = 0
	}

	frames := math.Floor(s.Elapsed / clip.FrameDuration)
	residual := s.Elapsed - frames*clip.FrameDuration
	if residual >= clip.FrameDuration-timeEpsilon {
		frames++
		residual -= clip.FrameDuration
	}
	if residual < timeEpsilon {
		residual = 0
	}

	count := float64(clip.FrameCount)
	step := int(math.Mod(frames, count))
	s.Frame = (s.Frame%clip.FrameCount + step) % clip.FrameCount
	if s.Frame < 0 {
		s.Frame += clip.FrameCount
	}
	s.Elapsed = residual
}
