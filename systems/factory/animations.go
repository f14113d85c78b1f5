package factory

import (
	"fmt"
	"strings"

	"github.com/automoto/popcorn-guy/animation"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/charmbracelet/log"
)

// BuildRegistry turns a clip table into a registry. Names that do not parse, or two names that
// parse to the same clip, are errors.
func BuildRegistry(table cfg.ClipTable) (*animation.Registry, error) {
	defs := make(map[animation.ClipID]animation.Clip, len(table))
	seen := make(map[animation.ClipID]string, len(table))
	for name, def := range table {
		id, err := animation.ParseClipID(name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("clips %q and %q both name %s", prev, name, id)
		}
		seen[id] = name
		defs[id] = animation.Clip{
			FrameCount:    def.Frames,
			FrameDuration: def.Duration,
			StartingIndex: def.Start,
			Asset:         def.Sheet,
		}
	}
	return animation.NewRegistry(defs)
}

// PolicyFor reads the selector policy for mode out of the animation settings.
func PolicyFor(mode animation.Mode) animation.Policy {
	dirs := animation.EightWay
	if cfg.Animation.FourWay {
		dirs = animation.FourWay
	}
	return animation.Policy{
		Mode:            mode,
		VelocityEpsilon: cfg.Animation.VelocityEpsilon,
		TrackGrounded:   cfg.Animation.TrackGrounded,
		ItemAffectsClip: cfg.Animation.ItemAffectsClip,
		Directions:      dirs,
	}
}

// NewAnimator builds the animator every actor of mode shares. Clips the selector can ask for
// but the table lacks are reported once here; at runtime they keep the previous clip.
func NewAnimator(mode animation.Mode, logger *log.Logger) (*animation.Animator, error) {
	if logger == nil {
		logger = log.Default()
	}
	registry, err := BuildRegistry(cfg.Clips)
	if err != nil {
		return nil, err
	}
	selector := animation.NewSelector(PolicyFor(mode))

	if missing := registry.Missing(selector.Candidates()...); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, id := range missing {
			names[i] = id.String()
		}
		logger.Warn("clip table is incomplete", "mode", mode.String(), "missing", strings.Join(names, ","))
	}
	return animation.NewAnimator(registry, selector, logger), nil
}
