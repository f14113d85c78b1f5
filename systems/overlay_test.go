package systems

import (
	"strings"
	"testing"

	"github.com/automoto/popcorn-guy/animation"
	"github.com/automoto/popcorn-guy/components"
	cfg "github.com/automoto/popcorn-guy/config"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeHUD struct {
	name    string
	icon    *ebiten.Image
	updates int
}

func (f *fakeHUD) SetItem(name string, icon *ebiten.Image) { f.name, f.icon = name, icon }
func (f *fakeHUD) Update()                                 { f.updates++ }
func (f *fakeHUD) Draw(*ebiten.Image)                      {}

func TestHUDFollowsInventory(t *testing.T) {
	hud := &fakeHUD{}
	system := NewUpdateHUD(hud)

	e := newTestWorld()
	system(e)
	if hud.name != "" || hud.icon != nil || hud.updates != 1 {
		t.Errorf("without a player: %+v", hud)
	}

	player := newPlayer(e, 100, 100, animation.ModePlatformer)
	cone := newItem(t, e, 96, 84, "ice_cream")
	icon := new(ebiten.Image)
	components.Sprite.Get(cone).Image = icon

	system(e)
	if hud.name != "" {
		t.Errorf("empty hands show %q", hud.name)
	}

	press(player, cfg.ActionPickup)
	UpdateItems(e)
	system(e)
	if hud.name != "Ice Cream" || hud.icon != icon {
		t.Errorf("holding: name %q, icon %p", hud.name, hud.icon)
	}
}

func TestAdvanceCursor(t *testing.T) {
	c := &components.CursorData{
		Clip: animation.Clip{FrameCount: 4, FrameDuration: 0.15},
		Size: 16,
	}

	advanceCursor(c, 12, 34, 0.15*5)
	if c.X != 12 || c.Y != 34 {
		t.Errorf("position = (%d, %d)", c.X, c.Y)
	}
	if c.State.Frame != 1 {
		t.Errorf("frame = %d, expected the clip to loop to 1", c.State.Frame)
	}

	still := &components.CursorData{}
	advanceCursor(still, 1, 2, 1)
	if still.State.Frame != 0 || still.X != 1 {
		t.Errorf("clip-less cursor = %+v", still)
	}
}

func TestActorDebugLines(t *testing.T) {
	e := newTestWorld()
	player := newPlayer(e, 100, 100, animation.ModePlatformer)
	anim := components.Animation.Get(player)
	anim.Frame = animation.Frame{ID: animation.Run.Carrying(), Index: 3, Mirrored: true, Valid: true}
	anim.SheetRef = "images/player/run_carry.png"
	anim.Binds = 2

	out := strings.Join(actorDebugLines(player), "\n")
	for _, want := range []string{"clip run_carry", "frame 3", "mirrored true", "binds 2", "run_carry.png", "mode platformer"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug lines %q lack %q", out, want)
		}
	}
}
