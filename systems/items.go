package systems

import (
	"math"

	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateItems handles pickup and drop for every player and floats the items on the ground.
// It runs after collisions so reach is tested against this tick's positions.
func UpdateItems(e *ecs.ECS) {
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		components.Item.Get(entry).InReach = false
	})

	tags.Player.Each(e.World, func(playerEntry *donburi.Entry) {
		inv := components.Inventory.Get(playerEntry)
		input := components.PlayerInput.Get(playerEntry)
		obj := components.Object.Get(playerEntry).Object

		if inv.Held != nil {
			if input.Action(cfg.ActionDrop).JustPressed {
				dropItem(e, inv, obj)
			}
			return
		}

		near := nearestItem(obj)
		if near == nil {
			return
		}
		components.Item.Get(near).InReach = true
		if input.Action(cfg.ActionPickup).JustPressed {
			pickUpItem(e, inv, near)
		}
	})

	dt := float32(TickSeconds())
	tags.Item.Each(e.World, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		if item.Held {
			return
		}
		advanceBob(item, components.Tween.Get(entry), dt)
	})
}

// nearestItem returns the item overlapping the player whose center is closest to the player's.
func nearestItem(player *resolv.Object) *donburi.Entry {
	check := player.Check(0, 0, tags.ResolvItem)
	if check == nil {
		return nil
	}

	cx, cy := player.X+player.W/2, player.Y+player.H/2
	var best *donburi.Entry
	bestDist := math.Inf(1)
	for _, o := range check.ObjectsByTags(tags.ResolvItem) {
		// Sharing a cell is not touching
		if !overlaps(player.X, player.W, o.X, o.W) || !overlaps(player.Y, player.H, o.Y, o.H) {
			continue
		}
		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		if d := math.Hypot(o.X+o.W/2-cx, o.Y+o.H/2-cy); d < bestDist {
			best, bestDist = entry, d
		}
	}
	return best
}

func pickUpItem(e *ecs.ECS, inv *components.InventoryData, entry *donburi.Entry) {
	item := components.Item.Get(entry)
	obj := components.Object.Get(entry).Object
	if obj.Space != nil {
		obj.Space.Remove(obj)
	}

	item.Held = true
	item.InReach = false
	item.BobDelta = 0
	components.Sprite.Get(entry).Hidden = true
	inv.Held = entry

	PlaySFX(e, cfg.SoundPickup)
	log.Debug("picked up item", "item", item.Kind)
}

// dropItem puts the held item down centered under the player's feet.
func dropItem(e *ecs.ECS, inv *components.InventoryData, player *resolv.Object) {
	entry := inv.Held
	inv.Held = nil
	if entry == nil || !entry.Valid() {
		return
	}

	item := components.Item.Get(entry)
	obj := components.Object.Get(entry).Object
	obj.X = player.X + player.W/2 - obj.W/2
	obj.Y = player.Y + player.H - obj.H
	if spaceEntry, ok := components.Space.First(e.World); ok && obj.Space == nil {
		components.Space.Get(spaceEntry).Add(obj)
	} else {
		obj.Update()
	}

	item.Held = false
	item.RestY = obj.Y
	item.BobDelta = 0
	components.Sprite.Get(entry).Hidden = false
	resetBob(components.Tween.Get(entry))

	PlaySFX(e, cfg.SoundDrop)
	log.Debug("dropped item", "item", item.Kind, "x", obj.X, "y", obj.Y)
}

// advanceBob moves an item along its current tween leg and flips legs when one finishes.
func advanceBob(item *components.ItemData, tw *components.TweenData, dt float32) {
	current := tw.Current()
	if current == nil {
		return
	}
	v, done := current.Update(dt)
	item.BobDelta = float64(v)
	if done {
		current.Reset()
		tw.Rising = !tw.Rising
	}
}

func resetBob(tw *components.TweenData) {
	if tw.Up != nil {
		tw.Up.Reset()
	}
	if tw.Down != nil {
		tw.Down.Reset()
	}
	tw.Rising = true
}
