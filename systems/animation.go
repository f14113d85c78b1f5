package systems

import (
	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// SheetLoader resolves a clip's asset path to a sheet. Loading the same path twice must return
// the same handle.
type SheetLoader func(path string) (*ebiten.Image, error)

var animatedActors = donburi.NewQuery(filter.Contains(
	components.Animation,
	components.Physics,
	components.PlayerInput,
	components.Player,
))

// NewAnimationSystem returns the system that picks, switches and advances every actor's clip.
// It must run after collisions so velocity and grounding are this tick's.
func NewAnimationSystem(animator *animation.Animator, load SheetLoader) ecs.System {
	return func(e *ecs.ECS) {
		dt := TickSeconds()
		animatedActors.Each(e.World, func(entry *donburi.Entry) {
			anim := components.Animation.Get(entry)
			intent, keys := buildIntent(entry)

			prev := anim.State
			frame := animator.Tick(&anim.State, intent, keys, dt)
			if frame.Valid && (frame.Changed || anim.Sheet == nil) {
				if !bindSheet(anim, frame.Clip.Asset, load) && anim.Sheet != nil {
					// Stay on the clip the bound sheet belongs to. The switch is retried
					// next tick since the selector picks the new clip again.
					mirrored := anim.State.Mirrored
					anim.State = prev
					anim.State.Mirrored = mirrored
					frame = animator.Play(&anim.State, prev.Current, dt)
				}
			}
			anim.Frame = frame
		})
	}
}

// bindSheet rebinds only when the loader hands back a different handle, so clips sharing a
// sheet keep its frame cache. It reports whether path is now the bound sheet.
func bindSheet(anim *components.AnimationData, path string, load SheetLoader) bool {
	img, err := load(path)
	if err != nil {
		log.Warn("sheet unavailable, keeping previous clip", "sheet", path, "err", err)
		return false
	}
	if anim.Bind(path, img) {
		log.Debug("bound sheet", "sheet", path, "binds", anim.Binds)
	}
	return true
}

// buildIntent reads one tick of input and physics into the selector's terms.
func buildIntent(entry *donburi.Entry) (animation.Intent, animation.Keys) {
	input := components.PlayerInput.Get(entry)
	physics := components.Physics.Get(entry)
	player := components.Player.Get(entry)

	left := input.Action(cfg.ActionMoveLeft)
	right := input.Action(cfg.ActionMoveRight)
	up := input.Action(cfg.ActionMoveUp)
	down := input.Action(cfg.ActionMoveDown)

	holding := false
	if entry.HasComponent(components.Inventory) {
		holding = components.Inventory.Get(entry).Held != nil
	}

	intent := animation.Intent{
		HorizontalPressed: left.Pressed || right.Pressed,
		VerticalPressed:   up.Pressed || down.Pressed,
		VerticalVelocity:  -physics.SpeedY,
		Grounded:          physics.OnGround != nil,
		HoldingItem:       holding,
		Facing:            player.Facing,
	}
	keys := animation.Keys{
		LeftHeld:     left.Pressed,
		RightHeld:    right.Pressed,
		LeftPressed:  left.JustPressed,
		RightPressed: right.JustPressed,
		LeftReleased: left.JustReleased,
	}
	return intent, keys
}
