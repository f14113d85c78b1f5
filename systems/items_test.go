package systems

import (
	"math"
	"slices"
	"testing"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/assets"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/automoto/popcorn-guy/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newItem(t *testing.T, e *ecs.ECS, x, y float64, kind string) *donburi.Entry {
	t.Helper()
	item, err := factory.CreateItem(e, assets.ItemSpawn{X: x, Y: y, Kind: kind}, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	return item
}

func TestItemReach(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		inReach bool
	}{
		{"overlapping", 96, 84, true},
		{"shares a cell only", 110, 60, false},
		{"far away", 200, 84, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestWorld()
			player := newPlayer(e, 100, 100, animation.ModePlatformer)
			item := newItem(t, e, tc.x, tc.y, "soda")

			press(player)
			UpdateItems(e)

			if got := components.Item.Get(item).InReach; got != tc.inReach {
				t.Errorf("InReach = %v, want %v", got, tc.inReach)
			}
		})
	}
}

func TestPickUpAndDrop(t *testing.T) {
	e := newTestWorld()
	player := newPlayer(e, 100, 100, animation.ModePlatformer)
	soda := newItem(t, e, 96, 84, "soda")
	iceCream := newItem(t, e, 200, 84, "ice_cream")
	inv := components.Inventory.Get(player)

	press(player, cfg.ActionPickup)
	UpdateItems(e)

	if inv.Held != soda {
		t.Fatal("soda was not picked up")
	}
	item := components.Item.Get(soda)
	if !item.Held || item.InReach {
		t.Errorf("held item = %+v", item)
	}
	if !components.Sprite.Get(soda).Hidden {
		t.Error("held item is still drawn")
	}
	if components.Object.Get(soda).Space != nil {
		t.Error("held item is still in the collision space")
	}
	if !slices.Contains(GetOrCreateAudio(e).PendingSFX, cfg.SoundPickup) {
		t.Error("pickup sound was not queued")
	}

	// The single slot is full, so the other item stays put.
	playerObj := components.Object.Get(player)
	playerObj.X = 195
	playerObj.Update()
	press(player)
	press(player, cfg.ActionPickup)
	UpdateItems(e)
	if inv.Held != soda || components.Item.Get(iceCream).Held {
		t.Error("picked up a second item")
	}

	press(player)
	press(player, cfg.ActionDrop)
	UpdateItems(e)

	if inv.Held != nil || item.Held {
		t.Fatal("item was not dropped")
	}
	obj := components.Object.Get(soda)
	wantX := playerObj.X + playerObj.W/2 - obj.W/2
	wantY := playerObj.Y + playerObj.H - obj.H
	if obj.X != wantX || obj.Y != wantY {
		t.Errorf("dropped at (%v, %v), want (%v, %v)", obj.X, obj.Y, wantX, wantY)
	}
	if obj.Space == nil {
		t.Error("dropped item was not returned to the space")
	}
	if item.RestY != obj.Y || components.Sprite.Get(soda).Hidden {
		t.Errorf("dropped item = %+v", item)
	}
	if !slices.Contains(GetOrCreateAudio(e).PendingSFX, cfg.SoundDrop) {
		t.Error("drop sound was not queued")
	}

	// Dropped items can be picked up again.
	press(player)
	press(player, cfg.ActionPickup)
	UpdateItems(e)
	if inv.Held == nil {
		t.Error("could not pick the dropped item back up")
	}
}

func TestPickupNeedsFreshPress(t *testing.T) {
	e := newTestWorld()
	player := newPlayer(e, 100, 100, animation.ModePlatformer)
	newItem(t, e, 200, 84, "soda")
	obj := components.Object.Get(player)

	// Pickup held while walking onto the item does nothing.
	press(player, cfg.ActionPickup)
	UpdateItems(e)
	obj.X = 195
	obj.Update()
	press(player, cfg.ActionPickup)
	UpdateItems(e)

	if components.Inventory.Get(player).Held != nil {
		t.Error("held pickup key grabbed the item")
	}
}

func TestItemBob(t *testing.T) {
	item := &components.ItemData{}
	tw := factory.NewBob()
	height := cfg.Items.BobHeight
	leg := float32(cfg.Items.BobSeconds)

	advanceBob(item, &tw, leg/2)
	if math.Abs(item.BobDelta+height/2) > 1e-4 || !tw.Rising {
		t.Errorf("halfway up: delta %v, rising %v", item.BobDelta, tw.Rising)
	}

	advanceBob(item, &tw, leg)
	if math.Abs(item.BobDelta+height) > 1e-4 || tw.Rising {
		t.Errorf("top: delta %v, rising %v", item.BobDelta, tw.Rising)
	}

	advanceBob(item, &tw, leg)
	if math.Abs(item.BobDelta) > 1e-4 || !tw.Rising {
		t.Errorf("back down: delta %v, rising %v", item.BobDelta, tw.Rising)
	}
}

func TestHeldItemsDoNotBob(t *testing.T) {
	e := newTestWorld()
	player := newPlayer(e, 100, 100, animation.ModePlatformer)
	soda := newItem(t, e, 96, 84, "soda")

	press(player, cfg.ActionPickup)
	UpdateItems(e)
	for i := 0; i < 10; i++ {
		press(player)
		UpdateItems(e)
	}
	if d := components.Item.Get(soda).BobDelta; d != 0 {
		t.Errorf("held item bobbed to %v", d)
	}
}
