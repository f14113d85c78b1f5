package animation

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Frame is what the renderer needs after a tick.
type Frame struct {
	ID       ClipID
	Clip     Clip
	Index    int // StartingIndex + local frame
	Mirrored bool
	Changed  bool // the clip switched this tick
	Valid    bool // false when neither the target nor the current clip is registered
}

// Animator runs select, switch and advance for one actor per tick. It only reads shared
// state, so one Animator can serve every actor.
type Animator struct {
	registry *Registry
	selector *Selector
	logger   *log.Logger

	warned sync.Map // ClipID -> struct{}
}

// NewAnimator wires a registry and selector. A nil logger uses the charmbracelet default.
func NewAnimator(r *Registry, s *Selector, logger *log.Logger) *Animator {
	if logger == nil {
		logger = log.Default()
	}
	return &Animator{registry: r, selector: s, logger: logger}
}

func (a *Animator) Registry() *Registry { return a.registry }
func (a *Animator) Selector() *Selector { return a.selector }

// Tick updates state for dt seconds. The mirror flag follows the key edges independently of
// the clip choice.
func (a *Animator) Tick(state *State, in Intent, keys Keys, dt float64) Frame {
	state.Mirrored = UpdateMirror(state.Mirrored, keys)
	return a.Play(state, a.selector.Select(in), dt)
}

// Play advances a state whose clip is chosen by the caller rather than the selector.
func (a *Animator) Play(state *State, id ClipID, dt float64) Frame {
	changed := false
	if id != state.Current {
		if _, ok := a.registry.Lookup(id); ok {
			changed = state.Switch(id)
		} else {
			a.warnMissing(id)
		}
	}

	clip, ok := a.registry.Lookup(state.Current)
	if !ok {
		a.warnMissing(state.Current)
		return Frame{ID: state.Current, Mirrored: state.Mirrored}
	}
	Advance(state, clip, dt)
	return Frame{
		ID:       state.Current,
		Clip:     clip,
		Index:    state.RenderIndex(clip),
		Mirrored: state.Mirrored,
		Changed:  changed,
		Valid:    true,
	}
}

func (a *Animator) warnMissing(id ClipID) {
	if _, seen := a.warned.LoadOrStore(id, struct{}{}); seen {
		return
	}
	a.logger.Warn("clip not registered, keeping previous clip", "clip", id.String())
}
