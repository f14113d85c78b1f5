package animation

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidClip is returned when a clip definition can never be played.
var ErrInvalidClip = errors.New("invalid clip")

// Registry is the read-only clip table built once at startup.
type Registry struct {
	clips map[ClipID]Clip
}

// NewRegistry validates defs and copies them into a new Registry.
func NewRegistry(defs map[ClipID]Clip) (*Registry, error) {
	clips := make(map[ClipID]Clip, len(defs))
	for id, clip := range defs {
		if clip.FrameCount <= 0 {
			return nil, fmt.Errorf("%w %s: frame count %d", ErrInvalidClip, id, clip.FrameCount)
		}
		if clip.FrameDuration < 0 {
			return nil, fmt.Errorf("%w %s: frame duration %v", ErrInvalidClip, id, clip.FrameDuration)
		}
		if clip.StartingIndex < 0 {
			return nil, fmt.Errorf("%w %s: starting index %d", ErrInvalidClip, id, clip.StartingIndex)
		}
		clips[id] = clip
	}
	return &Registry{clips: clips}, nil
}

// MustNewRegistry is NewRegistry for startup code, where a bad clip table is fatal.
func MustNewRegistry(defs map[ClipID]Clip) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the clip registered for id.
func (r *Registry) Lookup(id ClipID) (Clip, bool) {
	if r == nil {
		return Clip{}, false
	}
	clip, ok := r.clips[id]
	return clip, ok
}

// Len returns the number of registered clips.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.clips)
}

// IDs returns the registered ids sorted by their string form.
func (r *Registry) IDs() []ClipID {
	if r == nil {
		return nil
	}
	ids := make([]ClipID, 0, len(r.clips))
	for id := range r.clips {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

// Missing returns the ids from want that have no registered clip.
func (r *Registry) Missing(want ...ClipID) []ClipID {
	var missing []ClipID
	for _, id := range want {
		if _, ok := r.Lookup(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
